package response

import (
	"time"

	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase"
)

type TestPointResponse struct {
	Index         int      `json:"index"`
	ParameterID   string   `json:"parameter_id"`
	Kind          string   `json:"kind"`
	Name          string   `json:"name"`
	Unit          string   `json:"unit,omitempty"`
	Operator      string   `json:"operator,omitempty"`
	Limit         *float64 `json:"limit,omitempty"`
	MeasuredValue string   `json:"measured_value"`
	Conformity    *bool    `json:"conformity"`
}

type ExecutionResponse struct {
	ID               string                    `json:"id,omitempty"`
	EquipmentID      string                    `json:"equipment_id"`
	OrderID          string                    `json:"order_id"`
	ProfileID        string                    `json:"profile_id"`
	TechnicianID     string                    `json:"technician_id,omitempty"`
	TestDate         time.Time                 `json:"test_date"`
	ApplicableNorm   string                    `json:"applicable_norm"`
	StandardSnapshot entities.StandardSnapshot `json:"standard_snapshot"`
	Points           []TestPointResponse       `json:"points"`
	OverallResult    string                    `json:"overall_result"`
	PendingPoints    int                       `json:"pending_points"`
	FailedPoints     int                       `json:"failed_points"`
	Notes            string                    `json:"notes,omitempty"`
	CreatedAt        *time.Time                `json:"created_at,omitempty"`
	UpdatedAt        *time.Time                `json:"updated_at,omitempty"`
}

func FromExecution(e entities.TestExecution) ExecutionResponse {
	points := make([]TestPointResponse, 0, len(e.Points))
	for i, p := range e.Points {
		points = append(points, TestPointResponse{
			Index:         i,
			ParameterID:   p.ParameterID,
			Kind:          string(p.Kind),
			Name:          p.Name,
			Unit:          p.Unit,
			Operator:      p.Operator,
			Limit:         p.Limit,
			MeasuredValue: p.MeasuredValue,
			Conformity:    p.Conformity,
		})
	}
	res := ExecutionResponse{
		ID:               e.ID,
		EquipmentID:      e.EquipmentID,
		OrderID:          e.OrderID,
		ProfileID:        e.ProfileID,
		TechnicianID:     e.TechnicianID,
		TestDate:         e.TestDate,
		ApplicableNorm:   e.ApplicableNorm,
		StandardSnapshot: e.StandardSnapshot,
		Points:           points,
		OverallResult:    string(e.OverallResult),
		PendingPoints:    e.PendingPoints(),
		FailedPoints:     e.FailedPoints(),
		Notes:            e.Notes,
	}
	if !e.CreatedAt.IsZero() {
		created, updated := e.CreatedAt, e.UpdatedAt
		res.CreatedAt, res.UpdatedAt = &created, &updated
	}
	return res
}

func FromExecutions(es []entities.TestExecution) []ExecutionResponse {
	out := make([]ExecutionResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromExecution(e))
	}
	return out
}

type PointIssueResponse struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

type EvaluationResponse struct {
	Execution     ExecutionResponse    `json:"execution"`
	Issues        []PointIssueResponse `json:"issues"`
	PendingPoints int                  `json:"pending_points"`
}

func FromEvaluation(r usecase.EvaluationResult) EvaluationResponse {
	issues := make([]PointIssueResponse, 0, len(r.Issues))
	for _, is := range r.Issues {
		issues = append(issues, PointIssueResponse{Index: is.Index, Name: is.Name, Error: is.Err.Error()})
	}
	return EvaluationResponse{
		Execution:     FromExecution(r.Execution),
		Issues:        issues,
		PendingPoints: r.Pending,
	}
}
