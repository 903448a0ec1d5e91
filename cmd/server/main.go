package main

import (
	"context"
	"errors"
	"log"
	"logistichub-console/internal/adapters/backend"
	"logistichub-console/internal/adapters/cache"
	"logistichub-console/internal/api"
	"logistichub-console/internal/config"
	"logistichub-console/internal/platform/db"
	"logistichub-console/internal/ports"
	"logistichub-console/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (backend client, hub cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	be, mode, err := newBackend(cfg)
	if err != nil {
		log.Fatal(err)
	}

	hubCache, closeDB := openHubCache(ctx, cfg)
	defer closeDB()

	hubs := &services.HubDirectory{Backend: be, Cache: hubCache}
	dashboard := &services.DashboardService{Backend: be, Hubs: hubs}
	sessions := services.NewSessionStore(nil)
	refresher := services.NewRefresher(dashboard, sessions, cfg.RefreshInterval)

	router := api.NewRouter(api.Deps{
		Hubs:           hubs,
		Tracking:       &services.TrackingService{Backend: be},
		Deliveries:     &services.DeliveryService{Backend: be},
		Dashboard:      dashboard,
		Updater:        &services.StatusUpdater{Backend: be},
		Sessions:       sessions,
		Refresher:      refresher,
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		Mode:           mode,
	})

	go func() {
		if err := refresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("refresher stopped err=%v", err)
		}
	}()

	log.Printf("Server listening addr=:%s mode=%s", cfg.Port, mode)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Backend calls are bounded by BACKEND_TIMEOUT; leave room for two of them.
		WriteTimeout: 2*cfg.BackendTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed err=%v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func newBackend(cfg config.Config) (ports.LogisticsBackend, string, error) {
	if cfg.DemoMode() {
		log.Println("BACKEND_URL not set, serving demo data")
		return backend.NewDemoBackend(time.Now()), "demo", nil
	}

	c, err := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	if err != nil {
		return nil, "", err
	}
	return c, "live", nil
}

// openHubCache opens the hub cache. The console still runs without one, so
// failures are logged and a nil cache is returned.
func openHubCache(ctx context.Context, cfg config.Config) (ports.HubCache, func()) {
	conn, dialect, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Printf("hub cache disabled err=%v", err)
		return nil, func() {}
	}

	if err := cache.InitSchema(ctx, conn, dialect); err != nil {
		log.Printf("hub cache disabled err=%v", err)
		conn.Close()
		return nil, func() {}
	}

	log.Printf("hub cache ready dialect=%s", dialect)
	return cache.New(conn, dialect), func() { conn.Close() }
}
