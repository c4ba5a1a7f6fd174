package cache

import (
	"time"

	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase/interfaces"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tenantCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tse_tenant_config_cache_hits_total",
		Help: "Tenant company identity lookups served from cache.",
	})
	tenantCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tse_tenant_config_cache_misses_total",
		Help: "Tenant company identity lookups that went to the registry.",
	})
)

// TenantConfigCache keeps company identity records per tenant for a bounded
// time, so certificate bursts do not hit the registry for every document.
// Each instance holds its own in-memory cache.
type TenantConfigCache struct {
	lru *expirable.LRU[string, entities.TenantConfig]
}

var _ interfaces.ITenantConfigCache = (*TenantConfigCache)(nil)

func NewTenantConfigCache(size int, ttl time.Duration) *TenantConfigCache {
	return &TenantConfigCache{lru: expirable.NewLRU[string, entities.TenantConfig](size, nil, ttl)}
}

func (c *TenantConfigCache) Get(tenantID string) (entities.TenantConfig, bool) {
	cfg, ok := c.lru.Get(tenantID)
	if ok {
		tenantCacheHitsTotal.Inc()
		return cfg, true
	}
	tenantCacheMissesTotal.Inc()
	return entities.TenantConfig{}, false
}

func (c *TenantConfigCache) Set(tenantID string, cfg entities.TenantConfig) {
	c.lru.Add(tenantID, cfg)
}

// Invalidate drops a tenant entry so the next lookup reads the registry.
func (c *TenantConfigCache) Invalidate(tenantID string) {
	c.lru.Remove(tenantID)
}
