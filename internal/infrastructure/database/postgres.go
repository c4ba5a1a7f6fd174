package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

var ErrRegistryURLMissing = errors.New("REGISTRY_DATABASE_URL is not set")

// OpenRegistry opens the read-only connection pool to the registry database.
func OpenRegistry(ctx context.Context, url string) (*sql.DB, error) {
	if url == "" {
		return nil, ErrRegistryURLMissing
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping registry database: %w", err)
	}
	return db, nil
}
