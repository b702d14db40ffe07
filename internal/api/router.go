package api

import (
	"delivery-eda-service/internal/api/handlers"
	"delivery-eda-service/internal/ports"
	"delivery-eda-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Preparer       *services.DatasetPreparer
	Store          ports.SessionStore
	Renderer       ports.ChartRenderer
	MaxUploadBytes int64
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestIDContext)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	if len(deps.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	dashboard := &handlers.DashboardHandler{
		Preparer:       deps.Preparer,
		Store:          deps.Store,
		MaxUploadBytes: deps.MaxUploadBytes,
	}
	charts := &handlers.ChartHandler{Preparer: deps.Preparer, Store: deps.Store, Renderer: deps.Renderer}
	summary := &handlers.SummaryHandler{Preparer: deps.Preparer, Store: deps.Store}
	health := &handlers.HealthHandler{Store: deps.Store}

	r.Get("/", dashboard.Index)
	r.Post("/upload", dashboard.Upload)
	r.Post("/reset", dashboard.Reset)
	r.Get("/charts/{kind}.svg", charts.Chart)
	r.Get("/api/summary", summary.Summary)
	r.Get("/health", health.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
