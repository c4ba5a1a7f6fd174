package cache

import (
	"testing"
	"time"

	"engclin_tse/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestTenantConfigCache(t *testing.T) {
	t.Run("miss then hit", func(t *testing.T) {
		c := NewTenantConfigCache(4, time.Minute)

		_, ok := c.Get("tenant-a")
		assert.False(t, ok)

		c.Set("tenant-a", entities.TenantConfig{TenantID: "tenant-a", CompanyName: "EngClin"})
		got, ok := c.Get("tenant-a")
		assert.True(t, ok)
		assert.Equal(t, "EngClin", got.CompanyName)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		c := NewTenantConfigCache(1, time.Minute)
		c.Set("tenant-a", entities.TenantConfig{TenantID: "tenant-a"})
		c.Set("tenant-b", entities.TenantConfig{TenantID: "tenant-b"})

		_, ok := c.Get("tenant-a")
		assert.False(t, ok)
		_, ok = c.Get("tenant-b")
		assert.True(t, ok)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		c := NewTenantConfigCache(4, 20*time.Millisecond)
		c.Set("tenant-a", entities.TenantConfig{TenantID: "tenant-a"})

		assert.Eventually(t, func() bool {
			_, ok := c.Get("tenant-a")
			return !ok
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("invalidate", func(t *testing.T) {
		c := NewTenantConfigCache(4, time.Minute)
		c.Set("tenant-a", entities.TenantConfig{TenantID: "tenant-a"})
		c.Invalidate("tenant-a")

		_, ok := c.Get("tenant-a")
		assert.False(t, ok)
	})
}
