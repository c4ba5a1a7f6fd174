package response

import (
	"errors"
	"testing"
	"time"

	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase"
)

func TestFromExecution(t *testing.T) {
	yes, no := true, false
	limit := 0.5
	now := time.Now().UTC()
	e := entities.TestExecution{
		ID:            "exec-1",
		OrderID:       "os-1",
		OverallResult: entities.OverallResultRejected,
		Points: []entities.TestPoint{
			{ParameterID: "p1", Kind: entities.KindSection, Name: "Visual", Conformity: &yes},
			{ParameterID: "p2", Kind: entities.KindBoolean, Name: "Cord", Conformity: &no},
			{ParameterID: "p3", Kind: entities.KindMeasurement, Name: "Leakage", Operator: "<=", Limit: &limit},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromExecution(e)
	if res.ID != "exec-1" || res.OverallResult != "REJECTED" {
		t.Fatalf("unexpected header: %+v", res)
	}
	if len(res.Points) != 3 || res.Points[2].Index != 2 {
		t.Fatalf("unexpected points: %+v", res.Points)
	}
	if res.PendingPoints != 1 || res.FailedPoints != 1 {
		t.Fatalf("unexpected counters: pending=%d failed=%d", res.PendingPoints, res.FailedPoints)
	}
	if res.CreatedAt == nil || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromExecution_DraftHasNoTimestamps(t *testing.T) {
	res := FromExecution(entities.TestExecution{ProfileID: "prof-1"})
	if res.CreatedAt != nil || res.UpdatedAt != nil {
		t.Fatalf("expected no timestamps on a draft")
	}
}

func TestFromEvaluation(t *testing.T) {
	res := FromEvaluation(usecase.EvaluationResult{
		Execution: entities.TestExecution{},
		Issues:    []entities.PointIssue{{Index: 1, Name: "Leakage", Err: errors.New("malformed measured value")}},
		Pending:   2,
	})
	if len(res.Issues) != 1 || res.Issues[0].Error != "malformed measured value" {
		t.Fatalf("unexpected issues: %+v", res.Issues)
	}
	if res.PendingPoints != 2 {
		t.Fatalf("unexpected pending: %d", res.PendingPoints)
	}
}

func TestFromProfile(t *testing.T) {
	limit := 0.1
	res := FromProfile(entities.TestProfile{
		ID:   "prof-1",
		Name: "Class I",
		Parameters: []entities.ParameterDef{
			{ID: "a", Kind: entities.KindMeasurement, Name: "Leakage", Operator: "<=", Limit: &limit},
		},
	})
	if res.ID != "prof-1" || len(res.Parameters) != 1 || res.Parameters[0].Kind != "measurement" {
		t.Fatalf("unexpected profile response: %+v", res)
	}
}
