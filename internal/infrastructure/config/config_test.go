package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"HTTP_PORT", "LOG_LEVEL", "TENANT_CACHE_SIZE", "TENANT_CACHE_TTL", "LOGO_FETCH_TIMEOUT", "REGISTRY_DATABASE_URL"} {
			t.Setenv(k, "")
		}
		cfg := Load()
		if cfg.HTTPPort != "8080" {
			t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
		}
		if cfg.LogLevel != "info" {
			t.Fatalf("expected info level, got %q", cfg.LogLevel)
		}
		if cfg.TenantCacheSize != 256 || cfg.TenantCacheTTL != 5*time.Minute {
			t.Fatalf("unexpected cache defaults: %d %s", cfg.TenantCacheSize, cfg.TenantCacheTTL)
		}
		if cfg.LogoFetchTimeout != 5*time.Second {
			t.Fatalf("unexpected logo timeout: %s", cfg.LogoFetchTimeout)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("TENANT_CACHE_SIZE", "10")
		t.Setenv("TENANT_CACHE_TTL", "30s")
		t.Setenv("REGISTRY_DATABASE_URL", "postgres://u:p@db/registry?sslmode=disable")

		cfg := Load()
		if cfg.HTTPPort != "9090" || cfg.LogLevel != "debug" {
			t.Fatalf("unexpected overrides: %+v", cfg)
		}
		if cfg.TenantCacheSize != 10 || cfg.TenantCacheTTL != 30*time.Second {
			t.Fatalf("unexpected cache overrides: %d %s", cfg.TenantCacheSize, cfg.TenantCacheTTL)
		}
		if cfg.RegistryDatabaseURL == "" {
			t.Fatalf("expected registry url")
		}
	})

	t.Run("invalid numbers fall back", func(t *testing.T) {
		t.Setenv("TENANT_CACHE_SIZE", "-3")
		t.Setenv("LOGO_FETCH_TIMEOUT", "soon")

		cfg := Load()
		if cfg.TenantCacheSize != 256 || cfg.LogoFetchTimeout != 5*time.Second {
			t.Fatalf("expected fallbacks, got %d %s", cfg.TenantCacheSize, cfg.LogoFetchTimeout)
		}
	})
}
