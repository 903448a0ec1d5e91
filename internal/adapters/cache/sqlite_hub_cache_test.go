package cache

import (
	"context"
	"logistichub-console/internal/platform/db"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func newTestCache(t *testing.T) *SqliteHubCache {
	t.Helper()
	ctx := context.Background()

	conn, err := db.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := InitSchema(ctx, conn, db.SQLite); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return NewSqliteHubCache(conn)
}

func TestSqliteHubCachePutAndGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	got, err := c.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty cache returned %v", got)
	}

	if err := c.PutAll(ctx, []string{"North Hub", " South Hub ", "", "North Hub", "East Hub"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err = c.GetAll(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if want := []string{"North Hub", "South Hub", "East Hub"}; !slices.Equal(got, want) {
		t.Fatalf("hubs = %v, want %v", got, want)
	}

	// A later list replaces the earlier one, order included.
	if err := c.PutAll(ctx, []string{"East Hub", "West Hub"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, _ = c.GetAll(ctx)
	if want := []string{"East Hub", "West Hub"}; !slices.Equal(got, want) {
		t.Fatalf("hubs = %v, want %v", got, want)
	}
}

func TestSeedFromJSON(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	path := filepath.Join(t.TempDir(), "hubs.json")
	if err := os.WriteFile(path, []byte(`[{"name":"North Hub"},{"name":"Central Hub"}]`), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	n, err := SeedFromJSON(ctx, c, path)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 2 {
		t.Fatalf("seeded %d, want 2", n)
	}
	got, _ := c.GetAll(ctx)
	if want := []string{"North Hub", "Central Hub"}; !slices.Equal(got, want) {
		t.Fatalf("hubs = %v, want %v", got, want)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`[{"name":"  "}]`), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if _, err := SeedFromJSON(ctx, c, bad); err == nil {
		t.Fatalf("expected error for blank hub name")
	}
}
