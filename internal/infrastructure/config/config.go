package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const ServiceName = "engclin-tse"

// Config is the process configuration, read from the environment. A .env
// file in the working directory is loaded by main through godotenv/autoload.
type Config struct {
	HTTPPort string

	LogLevel  string
	LogFormat string

	AWSRegion        string
	DynamoDBEndpoint string

	TestProfilesTable   string
	StandardsTable      string
	TestExecutionsTable string

	RegistryDatabaseURL string

	TenantCacheSize  int
	TenantCacheTTL   time.Duration
	LogoFetchTimeout time.Duration
}

func Load() Config {
	return Config{
		HTTPPort:            getenvDefault("HTTP_PORT", "8080"),
		LogLevel:            strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		LogFormat:           strings.ToLower(getenvDefault("LOG_FORMAT", "json")),
		AWSRegion:           getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:    os.Getenv("DYNAMODB_ENDPOINT"),
		TestProfilesTable:   getenvDefault("TEST_PROFILES_TABLE", "test_profiles"),
		StandardsTable:      getenvDefault("STANDARDS_TABLE", "calibration_standards"),
		TestExecutionsTable: getenvDefault("TEST_EXECUTIONS_TABLE", "test_executions"),
		RegistryDatabaseURL: os.Getenv("REGISTRY_DATABASE_URL"),
		TenantCacheSize:     getenvInt("TENANT_CACHE_SIZE", 256),
		TenantCacheTTL:      getenvDuration("TENANT_CACHE_TTL", 5*time.Minute),
		LogoFetchTimeout:    getenvDuration("LOGO_FETCH_TIMEOUT", 5*time.Second),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenvDefault(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getenvDefault(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
