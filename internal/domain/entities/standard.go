package entities

import (
	"strings"
	"time"
)

// Standard is a calibration reference instrument (padrão) of a tenant, with
// the metadata of its current calibration certificate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
type Standard struct {
	ID                string     `json:"id"`
	TenantID          string     `json:"tenant_id"`
	Name              string     `json:"name"`
	Manufacturer      string     `json:"manufacturer,omitempty"`
	Model             string     `json:"model,omitempty"`
	SerialNumber      string     `json:"serial_number,omitempty"`
	CalibrationLab    string     `json:"calibration_lab,omitempty"`
	CertificateNumber string     `json:"certificate_number,omitempty"`
	CalibrationDate   *time.Time `json:"calibration_date,omitempty"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type SnapshotMode string

const (
	SnapshotModeNone       SnapshotMode = ""
	SnapshotModeStructured SnapshotMode = "structured"
	SnapshotModeFreeText   SnapshotMode = "free_text"
)

// StandardSnapshot is the write-once copy of a standard's certificate data
// embedded in an execution. Empty strings and nil dates mean "unknown".
//
// In free-text mode only Description is meaningful.
type StandardSnapshot struct {
	Mode              SnapshotMode `json:"mode"`
	StandardID        string       `json:"standard_id,omitempty"`
	Name              string       `json:"name,omitempty"`
	Manufacturer      string       `json:"manufacturer,omitempty"`
	Model             string       `json:"model,omitempty"`
	SerialNumber      string       `json:"serial_number,omitempty"`
	CalibrationLab    string       `json:"calibration_lab,omitempty"`
	CertificateNumber string       `json:"certificate_number,omitempty"`
	CalibrationDate   *time.Time   `json:"calibration_date,omitempty"`
	ExpiryDate        *time.Time   `json:"expiry_date,omitempty"`
	Description       string       `json:"description,omitempty"`
	CapturedAt        time.Time    `json:"captured_at"`
}

func SnapshotFromStandard(s Standard, capturedAt time.Time) StandardSnapshot {
	return StandardSnapshot{
		Mode:              SnapshotModeStructured,
		StandardID:        s.ID,
		Name:              strings.TrimSpace(s.Name),
		Manufacturer:      strings.TrimSpace(s.Manufacturer),
		Model:             strings.TrimSpace(s.Model),
		SerialNumber:      strings.TrimSpace(s.SerialNumber),
		CalibrationLab:    strings.TrimSpace(s.CalibrationLab),
		CertificateNumber: strings.TrimSpace(s.CertificateNumber),
		CalibrationDate:   cloneTime(s.CalibrationDate),
		ExpiryDate:        cloneTime(s.ExpiryDate),
		CapturedAt:        capturedAt.UTC(),
	}
}

func FreeTextSnapshot(description string, capturedAt time.Time) StandardSnapshot {
	return StandardSnapshot{
		Mode:        SnapshotModeFreeText,
		Description: strings.TrimSpace(description),
		CapturedAt:  capturedAt.UTC(),
	}
}

func (s StandardSnapshot) IsEmpty() bool {
	switch s.Mode {
	case SnapshotModeStructured:
		return false
	case SnapshotModeFreeText:
		return strings.TrimSpace(s.Description) == ""
	default:
		return true
	}
}

// ExpiredAt reports whether the certificate had already expired on the given
// date. Unknown expiry is not considered expired.
func (s StandardSnapshot) ExpiredAt(t time.Time) bool {
	if s.Mode != SnapshotModeStructured || s.ExpiryDate == nil || t.IsZero() {
		return false
	}
	return s.ExpiryDate.Before(t)
}

func (s StandardSnapshot) Clone() StandardSnapshot {
	out := s
	out.CalibrationDate = cloneTime(s.CalibrationDate)
	out.ExpiryDate = cloneTime(s.ExpiryDate)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
