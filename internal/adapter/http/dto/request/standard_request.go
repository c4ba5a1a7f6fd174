package request

import (
	"errors"
	"strings"
	"time"

	"engclin_tse/internal/domain/entities"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type StandardRequest struct {
	Name              string `json:"name" binding:"required"`
	Manufacturer      string `json:"manufacturer"`
	Model             string `json:"model"`
	SerialNumber      string `json:"serial_number"`
	CalibrationLab    string `json:"calibration_lab"`
	CertificateNumber string `json:"certificate_number"`
	CalibrationDate   string `json:"calibration_date"`
	ExpiryDate        string `json:"expiry_date"`
}

func (r StandardRequest) ToEntity(id string) (entities.Standard, error) {
	calibration, err := parseOptionalDate(r.CalibrationDate)
	if err != nil {
		return entities.Standard{}, err
	}
	expiry, err := parseOptionalDate(r.ExpiryDate)
	if err != nil {
		return entities.Standard{}, err
	}
	return entities.Standard{
		ID:                id,
		Name:              strings.TrimSpace(r.Name),
		Manufacturer:      strings.TrimSpace(r.Manufacturer),
		Model:             strings.TrimSpace(r.Model),
		SerialNumber:      strings.TrimSpace(r.SerialNumber),
		CalibrationLab:    strings.TrimSpace(r.CalibrationLab),
		CertificateNumber: strings.TrimSpace(r.CertificateNumber),
		CalibrationDate:   calibration,
		ExpiryDate:        expiry,
	}, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}
