package registry

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresRegistry) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock, NewPostgresRegistry(db, zap.NewNop())
}

func TestResolveEquipment_Success(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "client_id", "technology_id", "description",
		"manufacturer", "model", "serial_number", "asset_tag", "location",
	}).AddRow("eq-1", "tenant-a", "cli-1", "tec-1", "Electrosurgical unit",
		"Acme", "ES-300", "SN-77", "PAT-9", "OR 2")

	mock.ExpectQuery(`FROM equipments\s+WHERE id = \$1\s*$`).
		WithArgs("eq-1").
		WillReturnRows(rows)

	eq, err := repo.ResolveEquipment(context.Background(), "eq-1")

	require.NoError(t, err)
	assert.Equal(t, "eq-1", eq.ID)
	assert.Equal(t, "cli-1", eq.ClientID)
	assert.Equal(t, "tec-1", eq.TechnologyID)
	assert.Equal(t, "SN-77", eq.SerialNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveEquipment_NotFound(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`FROM equipments`).
		WithArgs("eq-x").
		WillReturnError(sql.ErrNoRows)

	eq, err := repo.ResolveEquipment(context.Background(), "eq-x")

	require.NoError(t, err)
	assert.Empty(t, eq.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveEquipment_OtherTenantRowIsReturned(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "client_id", "technology_id", "description",
		"manufacturer", "model", "serial_number", "asset_tag", "location",
	}).AddRow("eq-1", "tenant-b", "cli-9", "tec-1", "Defibrillator", "", "", "", "", "")

	mock.ExpectQuery(`FROM equipments`).
		WithArgs("eq-1").
		WillReturnRows(rows)

	eq, err := repo.ResolveEquipment(context.Background(), "eq-1")

	require.NoError(t, err)
	assert.Equal(t, "eq-1", eq.ID)
	assert.Equal(t, "tenant-b", eq.TenantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveEquipment_QueryError(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`FROM equipments`).
		WithArgs("eq-1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ResolveEquipment(context.Background(), "eq-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveClient_Success(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "name", "tax_id", "address", "city", "state"}).
		AddRow("cli-1", "tenant-a", "Hospital Santa Luzia", "12.345.678/0001-90", "Rua A, 10", "Recife", "PE")

	mock.ExpectQuery(`FROM clients`).
		WithArgs("cli-1", "tenant-a").
		WillReturnRows(rows)

	c, err := repo.ResolveClient(context.Background(), "tenant-a", "cli-1")

	require.NoError(t, err)
	assert.Equal(t, "Hospital Santa Luzia", c.Name)
	assert.Equal(t, "PE", c.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveTechnology_IsNotTenantScoped(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "category", "risk_class"}).
		AddRow("tec-1", "Electrosurgical unit", "Surgery", "III")

	mock.ExpectQuery(`FROM technologies\s+WHERE id = \$1`).
		WithArgs("tec-1").
		WillReturnRows(rows)

	tec, err := repo.ResolveTechnology(context.Background(), "tec-1")

	require.NoError(t, err)
	assert.Equal(t, "III", tec.RiskClass)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveTechnician_Success(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "name", "registration", "role", "signature_url"}).
		AddRow("tech-1", "tenant-a", "Ana Souza", "CREA 1234", "Clinical engineer", "")

	mock.ExpectQuery(`FROM technicians`).
		WithArgs("tech-1", "tenant-a").
		WillReturnRows(rows)

	tech, err := repo.ResolveTechnician(context.Background(), "tenant-a", "tech-1")

	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", tech.Name)
	assert.Empty(t, tech.SignatureURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveTenantConfig(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		_, mock, repo := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"tenant_id", "company_name", "tax_id", "address", "phone", "email", "logo_url"}).
			AddRow("tenant-a", "EngClin Ltda", "00.000.000/0001-00", "Av. B, 1", "+55 81 0000-0000", "contato@engclin.test", "https://cdn.test/logo.png")

		mock.ExpectQuery(`FROM tenant_configs\s+WHERE tenant_id = \$1`).
			WithArgs("tenant-a").
			WillReturnRows(rows)

		cfg, err := repo.ResolveTenantConfig(context.Background(), "tenant-a")

		require.NoError(t, err)
		assert.Equal(t, "EngClin Ltda", cfg.CompanyName)
		assert.Equal(t, "https://cdn.test/logo.png", cfg.LogoURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		_, mock, repo := setupMockDB(t)

		mock.ExpectQuery(`FROM tenant_configs`).
			WithArgs("tenant-z").
			WillReturnRows(sqlmock.NewRows([]string{"tenant_id"}))

		cfg, err := repo.ResolveTenantConfig(context.Background(), "tenant-z")

		require.NoError(t, err)
		assert.Empty(t, cfg.TenantID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
