package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"logistichub-console/internal/platform/db"
	"logistichub-console/internal/ports"
	"os"
	"strings"
)

// New returns the hub cache implementation for dialect.
func New(conn *sql.DB, dialect db.Dialect) ports.HubCache {
	if dialect == db.Postgres {
		return NewSQLHubCache(conn)
	}
	return NewSqliteHubCache(conn)
}

// InitSchema creates the cache tables for dialect if they do not exist.
func InitSchema(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	updatedAt := "TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP"
	if dialect == db.Postgres {
		updatedAt = "TIMESTAMPTZ NOT NULL DEFAULT now()"
	}

	createHubCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS hub_cache (
		name TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		updated_at %s
	);
	`, updatedAt)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_hub_cache_position
	ON hub_cache(position);
	`

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range []string{createHubCacheQuery, createIndexQuery} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type HubSeed struct {
	Name string `json:"name"`
}

// SeedFromJSON loads hub names from a JSON file of {"name": ...} objects into
// c, replacing what it held.
func SeedFromJSON(ctx context.Context, c ports.HubCache, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed hubs: read %q: %w", jsonPath, err)
	}

	var data []HubSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed hubs: parse json: %w", err)
	}

	names := make([]string, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return 0, fmt.Errorf("seed hubs: item at index %d: name cannot be empty", i+1)
		}
		names = append(names, name)
	}

	if err := c.PutAll(ctx, names); err != nil {
		return 0, fmt.Errorf("seed hubs: %w", err)
	}

	return len(names), nil
}
