package main

import (
	"context"
	"log"
	"logistichub-console/internal/adapters/cache"
	"logistichub-console/internal/config"
	"logistichub-console/internal/platform/db"

	"github.com/joho/godotenv"
)

// dbtool creates the hub cache schema and seeds it with hub names, so the
// console can list hubs before it has reached the backend once.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	conn, dialect, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Printf("Initializing database schema... dialect=%s", dialect)
	if err := cache.InitSchema(ctx, conn, dialect); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding hubs from %s...", cfg.SeedPath)
	n, err := cache.SeedFromJSON(ctx, cache.New(conn, dialect), cfg.SeedPath)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. hubs=%d", n)
}
