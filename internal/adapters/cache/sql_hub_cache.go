package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"logistichub-console/internal/platform/obs"
	"strings"
)

// SQLHubCache is a Postgres-backed copy of the backend's hub list.
type SQLHubCache struct {
	DB *sql.DB
}

func NewSQLHubCache(db *sql.DB) *SQLHubCache {
	return &SQLHubCache{DB: db}
}

// GetAll returns the cached hubs in the order the backend listed them.
func (s *SQLHubCache) GetAll(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "hub.cache.GetAll")(&err)

	if s.DB == nil {
		return nil, errors.New("hub cache: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT name
	FROM hub_cache
	ORDER BY position ASC, name ASC;
	`)
	if err != nil {
		return nil, fmt.Errorf("get hub cache: query hub_cache table: %w", err)
	}
	defer rows.Close()

	return scanHubNames(rows)
}

// PutAll replaces the cached list with hubs.
func (s *SQLHubCache) PutAll(ctx context.Context, hubs []string) (err error) {
	defer obs.Time(ctx, "hub.cache.PutAll")(&err)

	if s.DB == nil {
		return errors.New("hub cache: db is nil")
	}

	names := uniqueHubNames(hubs)
	if len(names) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put hub cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM hub_cache WHERE NOT (name = ANY($1::text[]));`, names); err != nil {
		return fmt.Errorf("put hub cache: prune stale hubs: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO hub_cache (name, position, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (name) DO UPDATE
	SET position = EXCLUDED.position,
		updated_at = EXCLUDED.updated_at;
	`)
	if err != nil {
		return fmt.Errorf("put hub cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, name := range names {
		if _, err := stmt.ExecContext(ctx, name, i); err != nil {
			return fmt.Errorf("put hub cache name=%q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put hub cache: commit: %w", err)
	}

	return nil
}

// uniqueHubNames trims names and drops blanks and repeats, keeping first-seen
// order.
func uniqueHubNames(hubs []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(hubs))
	for _, h := range hubs {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}

func scanHubNames(rows *sql.Rows) ([]string, error) {
	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("get hub cache: scan rows: %w", err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get hub cache: row iteration: %w", err)
	}
	return out, nil
}
