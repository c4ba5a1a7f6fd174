package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"engclin_tse/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile(id, tenantID string) entities.TestProfile {
	limit := 0.1
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return entities.TestProfile{
		ID:             id,
		TenantID:       tenantID,
		Name:           "Class I Type BF",
		ApplicableNorm: "IEC 62353",
		Classification: "Class I",
		Parameters: []entities.ParameterDef{
			{ID: "p1", Kind: entities.KindSection, Name: "Visual inspection"},
			{ID: "p2", Kind: entities.KindBoolean, Name: "Enclosure intact"},
			{ID: "p3", Kind: entities.KindMeasurement, Name: "Earth leakage", Unit: "mA", Operator: "<=", Limit: &limit},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTestProfileDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("table name from config", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewTestProfileDynamoRepository(fake, " custom_profiles ")
		_, err := repo.Create(ctx, sampleProfile("prof-1", "tenant-a"))
		require.NoError(t, err)
		assert.Equal(t, "custom_profiles", aws.ToString(fake.lastPut.TableName))
	})

	t.Run("blank table name falls back to default", func(t *testing.T) {
		repo := NewTestProfileDynamoRepository(newFakeDynamo(), "  ")
		assert.Equal(t, defaultProfilesTableName, repo.tableName)
	})

	t.Run("create then get round trips parameters in order", func(t *testing.T) {
		repo := NewTestProfileDynamoRepository(newFakeDynamo(), "")
		p := sampleProfile("prof-1", "tenant-a")

		_, err := repo.Create(ctx, p)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, "prof-1")
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("create rejects duplicate id", func(t *testing.T) {
		repo := NewTestProfileDynamoRepository(newFakeDynamo(), "")
		p := sampleProfile("prof-1", "tenant-a")
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)

		_, err = repo.Create(ctx, p)
		assert.Error(t, err)
	})

	t.Run("get missing returns zero value", func(t *testing.T) {
		repo := NewTestProfileDynamoRepository(newFakeDynamo(), "")
		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("update missing returns zero value", func(t *testing.T) {
		repo := NewTestProfileDynamoRepository(newFakeDynamo(), "")
		got, err := repo.Update(ctx, sampleProfile("prof-9", "tenant-a"))
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("update existing overwrites", func(t *testing.T) {
		repo := NewTestProfileDynamoRepository(newFakeDynamo(), "")
		p := sampleProfile("prof-1", "tenant-a")
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)

		p.Name = "Renamed"
		updated, err := repo.Update(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "prof-1", updated.ID)

		got, err := repo.GetByID(ctx, "prof-1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
	})

	t.Run("list filters by tenant across pages", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.pageSize = 1
		repo := NewTestProfileDynamoRepository(fake, "")
		for _, p := range []entities.TestProfile{
			sampleProfile("a", "tenant-a"),
			sampleProfile("b", "tenant-a"),
			sampleProfile("c", "tenant-b"),
		} {
			_, err := repo.Create(ctx, p)
			require.NoError(t, err)
		}

		got, err := repo.ListByTenantID(ctx, "tenant-a")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2, fake.queries)
	})

	t.Run("propagates client errors", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.err = errors.New("throttled")
		repo := NewTestProfileDynamoRepository(fake, "")

		_, err := repo.GetByID(ctx, "x")
		assert.EqualError(t, err, "throttled")
		_, err = repo.ListByTenantID(ctx, "tenant-a")
		assert.EqualError(t, err, "throttled")
	})
}
