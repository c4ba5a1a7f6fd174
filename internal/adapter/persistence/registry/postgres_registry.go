package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// PostgresRegistry reads the field-service registry (equipment, clients,
// technologies, technicians and company settings) owned by the main
// application database. Clients, technicians and company settings are
// tenant scoped in SQL; equipment is checked by the caller.
//
// A missing row yields a zero value and no error.
type PostgresRegistry struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ interfaces.IRegistryRepository = (*PostgresRegistry)(nil)

func NewPostgresRegistry(db *sql.DB, logger *zap.Logger) *PostgresRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresRegistry{db: db, logger: logger}
}

const equipmentQuery = `
	SELECT
		id,
		tenant_id,
		COALESCE(client_id, ''),
		COALESCE(technology_id, ''),
		COALESCE(description, ''),
		COALESCE(manufacturer, ''),
		COALESCE(model, ''),
		COALESCE(serial_number, ''),
		COALESCE(asset_tag, ''),
		COALESCE(location, '')
	FROM equipments
	WHERE id = $1
`

// ResolveEquipment is not tenant filtered: the returned TenantID lets the
// caller refuse equipment of another tenant instead of reporting it missing.
func (r *PostgresRegistry) ResolveEquipment(ctx context.Context, id string) (entities.Equipment, error) {
	var e entities.Equipment
	err := r.db.QueryRowContext(ctx, equipmentQuery, id).Scan(
		&e.ID,
		&e.TenantID,
		&e.ClientID,
		&e.TechnologyID,
		&e.Description,
		&e.Manufacturer,
		&e.Model,
		&e.SerialNumber,
		&e.AssetTag,
		&e.Location,
	)
	if err != nil {
		return entities.Equipment{}, r.notFoundOrErr("equipment", id, err)
	}
	return e, nil
}

const clientQuery = `
	SELECT
		id,
		tenant_id,
		name,
		COALESCE(tax_id, ''),
		COALESCE(address, ''),
		COALESCE(city, ''),
		COALESCE(state, '')
	FROM clients
	WHERE id = $1 AND tenant_id = $2
`

func (r *PostgresRegistry) ResolveClient(ctx context.Context, tenantID, id string) (entities.Client, error) {
	var c entities.Client
	err := r.db.QueryRowContext(ctx, clientQuery, id, tenantID).Scan(
		&c.ID,
		&c.TenantID,
		&c.Name,
		&c.TaxID,
		&c.Address,
		&c.City,
		&c.State,
	)
	if err != nil {
		return entities.Client{}, r.notFoundOrErr("client", id, err)
	}
	return c, nil
}

// Technologies are a shared catalog, not tenant data.
const technologyQuery = `
	SELECT
		id,
		name,
		COALESCE(category, ''),
		COALESCE(risk_class, '')
	FROM technologies
	WHERE id = $1
`

func (r *PostgresRegistry) ResolveTechnology(ctx context.Context, id string) (entities.Technology, error) {
	var t entities.Technology
	err := r.db.QueryRowContext(ctx, technologyQuery, id).Scan(
		&t.ID,
		&t.Name,
		&t.Category,
		&t.RiskClass,
	)
	if err != nil {
		return entities.Technology{}, r.notFoundOrErr("technology", id, err)
	}
	return t, nil
}

const technicianQuery = `
	SELECT
		id,
		tenant_id,
		name,
		COALESCE(registration, ''),
		COALESCE(role, ''),
		COALESCE(signature_url, '')
	FROM technicians
	WHERE id = $1 AND tenant_id = $2
`

func (r *PostgresRegistry) ResolveTechnician(ctx context.Context, tenantID, id string) (entities.Technician, error) {
	var t entities.Technician
	err := r.db.QueryRowContext(ctx, technicianQuery, id, tenantID).Scan(
		&t.ID,
		&t.TenantID,
		&t.Name,
		&t.Registration,
		&t.Role,
		&t.SignatureURL,
	)
	if err != nil {
		return entities.Technician{}, r.notFoundOrErr("technician", id, err)
	}
	return t, nil
}

const tenantConfigQuery = `
	SELECT
		tenant_id,
		COALESCE(company_name, ''),
		COALESCE(tax_id, ''),
		COALESCE(address, ''),
		COALESCE(phone, ''),
		COALESCE(email, ''),
		COALESCE(logo_url, '')
	FROM tenant_configs
	WHERE tenant_id = $1
`

func (r *PostgresRegistry) ResolveTenantConfig(ctx context.Context, tenantID string) (entities.TenantConfig, error) {
	var c entities.TenantConfig
	err := r.db.QueryRowContext(ctx, tenantConfigQuery, tenantID).Scan(
		&c.TenantID,
		&c.CompanyName,
		&c.TaxID,
		&c.Address,
		&c.Phone,
		&c.Email,
		&c.LogoURL,
	)
	if err != nil {
		return entities.TenantConfig{}, r.notFoundOrErr("tenant config", tenantID, err)
	}
	return c, nil
}

func (r *PostgresRegistry) notFoundOrErr(kind, id string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug("registry record not found", zap.String("kind", kind), zap.String("id", id))
		return nil
	}
	return fmt.Errorf("failed to query %s: %w", kind, err)
}
