package entities

import (
	"strings"
	"time"
)

// OverallResult is the derived verdict of a test execution.
type OverallResult string

const (
	OverallResultApproved OverallResult = "APPROVED"
	OverallResultRejected OverallResult = "REJECTED"
)

// TestExecution is one compliance test run (laudo de TSE) for an equipment
// within a service order.
//
// Storage model (DynamoDB):
//   - PK: id (UUIDv7, time ordered)
//   - GSI1 (order_id-index): order_id
//
// The execution owns deep copies of its points and standard snapshot; it
// never references the profile or the standard record after instantiation.
type TestExecution struct {
	ID               string           `json:"id"`
	TenantID         string           `json:"tenant_id"`
	EquipmentID      string           `json:"equipment_id"`
	OrderID          string           `json:"order_id"`
	ProfileID        string           `json:"profile_id"`
	TechnicianID     string           `json:"technician_id"`
	TestDate         time.Time        `json:"test_date"`
	ApplicableNorm   string           `json:"applicable_norm"`
	StandardSnapshot StandardSnapshot `json:"standard_snapshot"`
	Points           []TestPoint      `json:"points"`
	OverallResult    OverallResult    `json:"overall_result"`
	Notes            string           `json:"notes,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// PointIssue is a recoverable evaluation problem on a single point.
type PointIssue struct {
	Index int
	Name  string
	Err   error
}

// AggregateResult applies the verdict rule: REJECTED when any non-section
// point has explicitly failed, APPROVED otherwise. Pending points do not block
// approval.
func AggregateResult(points []TestPoint) OverallResult {
	for _, p := range points {
		if p.IsFailing() {
			return OverallResultRejected
		}
	}
	return OverallResultApproved
}

// EvaluatePoints re-evaluates every point and returns the new list together
// with the verdict. The input slice is not modified.
func EvaluatePoints(points []TestPoint) ([]TestPoint, OverallResult, []PointIssue) {
	out := make([]TestPoint, len(points))
	var issues []PointIssue
	for i, p := range points {
		evaluated, err := EvaluatePoint(p)
		if err != nil {
			issues = append(issues, PointIssue{Index: i, Name: p.Name, Err: err})
		}
		out[i] = evaluated
	}
	return out, AggregateResult(out), issues
}

// Recompute re-evaluates all points and the overall result in place.
func (e *TestExecution) Recompute() []PointIssue {
	points, result, issues := EvaluatePoints(e.Points)
	e.Points = points
	e.OverallResult = result
	return issues
}

func (e TestExecution) PendingPoints() int {
	n := 0
	for _, p := range e.Points {
		if p.IsPending() {
			n++
		}
	}
	return n
}

func (e TestExecution) FailedPoints() int {
	n := 0
	for _, p := range e.Points {
		if p.IsFailing() {
			n++
		}
	}
	return n
}

func (e TestExecution) IsNew() bool {
	return strings.TrimSpace(e.ID) == ""
}

// Clone returns a copy sharing no mutable state with e.
func (e TestExecution) Clone() TestExecution {
	out := e
	out.StandardSnapshot = e.StandardSnapshot.Clone()
	if e.Points != nil {
		out.Points = make([]TestPoint, len(e.Points))
		for i, p := range e.Points {
			out.Points[i] = p.Clone()
		}
	}
	return out
}
