package response

import (
	"time"

	"engclin_tse/internal/domain/entities"
)

type StandardResponse struct {
	ID                string     `json:"id"`
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

func FromStandard(s entities.Standard) StandardResponse {
	return StandardResponse{
		ID:                s.ID,
		Name:              s.Name,
		Manufacturer:      s.Manufacturer,
		Model:             s.Model,
		SerialNumber:      s.SerialNumber,
		CalibrationLab:    s.CalibrationLab,
		CertificateNumber: s.CertificateNumber,
		CalibrationDate:   s.CalibrationDate,
		ExpiryDate:        s.ExpiryDate,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func FromStandards(ss []entities.Standard) []StandardResponse {
	out := make([]StandardResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromStandard(s))
	}
	return out
}
