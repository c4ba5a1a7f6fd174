package interfaces

import (
	"context"
	"engclin_tse/internal/domain/entities"
)

// IRegistryRepository resolves read-only records owned by the field-service
// application. A missing record is returned as a zero value with a nil error;
// only transport failures are errors. Equipment is looked up by id alone and
// carries its tenant so callers can tell a foreign record from a missing one.

type IRegistryRepository interface {
	ResolveEquipment(ctx context.Context, id string) (entities.Equipment, error)
	ResolveClient(ctx context.Context, tenantID, id string) (entities.Client, error)
	ResolveTechnology(ctx context.Context, id string) (entities.Technology, error)
	ResolveTechnician(ctx context.Context, tenantID, id string) (entities.Technician, error)
	ResolveTenantConfig(ctx context.Context, tenantID string) (entities.TenantConfig, error)
}
