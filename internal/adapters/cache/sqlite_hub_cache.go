package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"logistichub-console/internal/platform/obs"
	"strings"
)

// SQLite backed copy of the backend's hub list, used when no Postgres URL is
// configured.
type SqliteHubCache struct {
	DB *sql.DB
}

func NewSqliteHubCache(db *sql.DB) *SqliteHubCache {
	return &SqliteHubCache{DB: db}
}

func (s *SqliteHubCache) GetAll(ctx context.Context) (_ []string, err error) {
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

func (s *SqliteHubCache) PutAll(ctx context.Context, hubs []string) (err error) {
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

	// SQLite cannot bind a slice, so the NOT IN list is built from
	// placeholders only; the names stay parameterized.
	ph := strings.TrimSuffix(strings.Repeat("?,", len(names)), ",")
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM hub_cache WHERE name NOT IN (%s);`, ph), args...); err != nil {
		return fmt.Errorf("put hub cache: prune stale hubs: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO hub_cache (
		name,
		position,
		updated_at
	)
	VALUES (?, ?, CURRENT_TIMESTAMP)
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
