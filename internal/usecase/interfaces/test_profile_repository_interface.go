package interfaces

import (
	"context"
	"engclin_tse/internal/domain/entities"
)

// ITestProfileRepository abstracts persistence of tenant-owned test profiles.
//
// GetByID returns a zero TestProfile (empty ID) when the profile does not exist.

type ITestProfileRepository interface {
	Create(ctx context.Context, p entities.TestProfile) (entities.TestProfile, error)
	Update(ctx context.Context, p entities.TestProfile) (entities.TestProfile, error)
	GetByID(ctx context.Context, id string) (entities.TestProfile, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.TestProfile, error)
}
