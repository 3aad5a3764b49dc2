package router

import (
	"net/http"

	_ "pet-nutrition-guide/docs"
	"pet-nutrition-guide/internal/domain/healthcheck"
	"pet-nutrition-guide/internal/domain/nutrition"
	"pet-nutrition-guide/internal/domain/profile"
	"pet-nutrition-guide/internal/domain/scan"
	"pet-nutrition-guide/internal/middleware"
	"pet-nutrition-guide/internal/platform/logger"
	"pet-nutrition-guide/internal/platform/metrics"
	"pet-nutrition-guide/internal/services"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter monta middlewares, /health, /metrics, swagger y las rutas de cada módulo.
func NewRouter(opts services.Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.EchoRequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(opts.Metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(opts.Gatherer))
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := services.Build(opts)

	// Rutas por módulo
	profile.RegisterRoutes(r, svc.Profiles)
	nutrition.RegisterRoutes(r, svc.Recommender, svc.Hazards, svc.Catalog, svc.Profiles)
	healthcheck.RegisterRoutes(r, svc.Checklist)
	scan.RegisterRoutes(r, svc.Scans, svc.Profiles)

	return r
}
