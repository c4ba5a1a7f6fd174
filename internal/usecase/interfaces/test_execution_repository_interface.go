package interfaces

import (
	"context"
	"engclin_tse/internal/domain/entities"
)

// ITestExecutionRepository abstracts persistence of test executions.
//
// Save is a single atomic put: insert when the id is new, overwrite otherwise
// (last write wins, there is no concurrency token).
// ListByOrderID returns every execution of the order ordered by descending id.

type ITestExecutionRepository interface {
	Save(ctx context.Context, e entities.TestExecution) (entities.TestExecution, error)
	GetByID(ctx context.Context, id string) (entities.TestExecution, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.TestExecution, error)
}
