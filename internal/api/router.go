package api

import (
	"logistichub-console/internal/api/handlers"
	"logistichub-console/internal/services"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps are the services the HTTP API is built on.
type Deps struct {
	Hubs       *services.HubDirectory
	Tracking   *services.TrackingService
	Deliveries *services.DeliveryService
	Dashboard  *services.DashboardService
	Updater    *services.StatusUpdater
	Sessions   *services.SessionStore
	Refresher  *services.Refresher

	// JWTSecret protects the dashboard routes when non-empty.
	JWTSecret      string
	AllowedOrigins []string
	Mode           string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           300,
	}))
	r.Use(forwardBearer)

	health := &handlers.HealthHandler{Mode: d.Mode}
	hubs := &handlers.HubHandler{Directory: d.Hubs}
	tracking := &handlers.TrackingHandler{Service: d.Tracking}
	deliveries := &handlers.DeliveryHandler{Service: d.Deliveries}
	dashboard := &handlers.DashboardHandler{
		Dashboard:   d.Dashboard,
		Updater:     d.Updater,
		Sessions:    d.Sessions,
		Refresher:   d.Refresher,
		AllowOrigin: originAllowed(origins),
	}

	r.Get("/health", health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/hubs", hubs.List)
		r.Get("/track/{trackingID}", tracking.Get)
		r.Post("/deliveries", deliveries.Create)

		r.Route("/dashboard", func(r chi.Router) {
			if d.JWTSecret != "" {
				r.Use(requireOperator(d.JWTSecret))
			}
			r.Get("/consignments", dashboard.Consignments)
			r.Post("/consignments/{consignmentID}/actions", dashboard.Act)
			r.Get("/notice", dashboard.Notice)
			r.Delete("/session", dashboard.ResetSession)
		})
	})

	r.Group(func(r chi.Router) {
		if d.JWTSecret != "" {
			r.Use(requireOperator(d.JWTSecret))
		}
		r.Get("/ws/dashboard", dashboard.Live)
	})

	return r
}

func originAllowed(origins []string) func(string) bool {
	if slices.Contains(origins, "*") {
		return nil
	}
	return func(origin string) bool {
		return slices.ContainsFunc(origins, func(o string) bool {
			return strings.EqualFold(o, origin)
		})
	}
}
