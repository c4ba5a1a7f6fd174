package request

import (
	"strings"

	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase"
)

type DraftRequest struct {
	ProfileID    string `json:"profile_id"`
	EquipmentID  string `json:"equipment_id"`
	OrderID      string `json:"order_id"`
	TechnicianID string `json:"technician_id"`
	TestDate     string `json:"test_date"`
	Notes        string `json:"notes"`
}

func (r DraftRequest) ToDraft() (usecase.DraftRequest, error) {
	testDate, err := parseOptionalDate(r.TestDate)
	if err != nil {
		return usecase.DraftRequest{}, err
	}
	d := usecase.DraftRequest{
		ProfileID:    strings.TrimSpace(r.ProfileID),
		EquipmentID:  strings.TrimSpace(r.EquipmentID),
		OrderID:      strings.TrimSpace(r.OrderID),
		TechnicianID: strings.TrimSpace(r.TechnicianID),
		Notes:        r.Notes,
	}
	if testDate != nil {
		d.TestDate = *testDate
	}
	return d, nil
}

// TestPointRequest mirrors a point of a draft as returned by the draft
// endpoint. Conformity is null while the point is pending.
type TestPointRequest struct {
	ParameterID   string   `json:"parameter_id"`
	Kind          string   `json:"kind"`
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	Operator      string   `json:"operator"`
	Limit         *float64 `json:"limit"`
	MeasuredValue string   `json:"measured_value"`
	Conformity    *bool    `json:"conformity"`
}

// ExecutionRequest is a draft or saved execution sent back by the client.
type ExecutionRequest struct {
	ID             string             `json:"id"`
	EquipmentID    string             `json:"equipment_id"`
	OrderID        string             `json:"order_id"`
	ProfileID      string             `json:"profile_id"`
	TechnicianID   string             `json:"technician_id"`
	TestDate       string             `json:"test_date"`
	ApplicableNorm string             `json:"applicable_norm"`
	Notes          string             `json:"notes"`
	Points         []TestPointRequest `json:"points"`
}

func (r ExecutionRequest) ToEntity() (entities.TestExecution, error) {
	testDate, err := parseOptionalDate(r.TestDate)
	if err != nil {
		return entities.TestExecution{}, err
	}
	points := make([]entities.TestPoint, 0, len(r.Points))
	for _, p := range r.Points {
		points = append(points, entities.TestPoint{
			ParameterID:   p.ParameterID,
			Kind:          entities.ParameterKindName(strings.ToLower(strings.TrimSpace(p.Kind))),
			Name:          p.Name,
			Unit:          p.Unit,
			Operator:      p.Operator,
			Limit:         p.Limit,
			MeasuredValue: p.MeasuredValue,
			Conformity:    p.Conformity,
		})
	}
	e := entities.TestExecution{
		ID:             r.ID,
		EquipmentID:    r.EquipmentID,
		OrderID:        r.OrderID,
		ProfileID:      r.ProfileID,
		TechnicianID:   r.TechnicianID,
		ApplicableNorm: r.ApplicableNorm,
		Notes:          r.Notes,
		Points:         points,
	}
	if testDate != nil {
		e.TestDate = *testDate
	}
	return e, nil
}

type PointInputRequest struct {
	Index         int     `json:"index"`
	MeasuredValue *string `json:"measured_value"`
	Conforming    *bool   `json:"conforming"`
}

type EvaluateRequest struct {
	Execution ExecutionRequest    `json:"execution"`
	Inputs    []PointInputRequest `json:"inputs"`
}

func (r EvaluateRequest) ToInputs() []usecase.PointInput {
	out := make([]usecase.PointInput, 0, len(r.Inputs))
	for _, in := range r.Inputs {
		out = append(out, usecase.PointInput{
			Index:         in.Index,
			MeasuredValue: in.MeasuredValue,
			Conforming:    in.Conforming,
		})
	}
	return out
}

type TraceabilityRequest struct {
	StandardID string `json:"standard_id"`
	FreeText   string `json:"free_text"`
}

type SaveExecutionRequest struct {
	Execution    ExecutionRequest    `json:"execution"`
	Traceability TraceabilityRequest `json:"traceability"`
}

func (r SaveExecutionRequest) ToSelection() usecase.TraceabilitySelection {
	return usecase.TraceabilitySelection{
		StandardID: strings.TrimSpace(r.Traceability.StandardID),
		FreeText:   strings.TrimSpace(r.Traceability.FreeText),
	}
}
