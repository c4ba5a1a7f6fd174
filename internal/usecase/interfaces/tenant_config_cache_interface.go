package interfaces

import "engclin_tse/internal/domain/entities"

// ITenantConfigCache keeps recently resolved company identities per tenant.
type ITenantConfigCache interface {
	Get(tenantID string) (entities.TenantConfig, bool)
	Set(tenantID string, cfg entities.TenantConfig)
	Invalidate(tenantID string)
}
