package interfaces

import (
	"context"
	"engclin_tse/internal/domain/entities"
)

// IStandardRepository abstracts the tenant catalog of calibration standards.
// An empty catalog is valid and triggers the free-text traceability fallback.

type IStandardRepository interface {
	Create(ctx context.Context, s entities.Standard) (entities.Standard, error)
	Update(ctx context.Context, s entities.Standard) (entities.Standard, error)
	GetByID(ctx context.Context, id string) (entities.Standard, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Standard, error)
}
