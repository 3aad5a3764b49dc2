// Package services arma los servicios de dominio que comparten la API HTTP y el servidor MCP.
package services

import (
	mem "pet-nutrition-guide/internal/adapters/storage/memory"
	"pet-nutrition-guide/internal/domain/catalog"
	"pet-nutrition-guide/internal/domain/healthcheck"
	"pet-nutrition-guide/internal/domain/nutrition"
	"pet-nutrition-guide/internal/domain/profile"
	"pet-nutrition-guide/internal/domain/scan"
	"pet-nutrition-guide/internal/platform/logger"
	"pet-nutrition-guide/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	Logger logger.Logger // nil => descarta logs

	// Métricas: Metrics instrumenta; Gatherer expone /metrics. Ambos opcionales.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Catalog *catalog.Catalog // nil => catálogo por defecto

	// Opcionales: si no vienen, in-memory.
	ProfileRepo   profile.Repository
	ChecklistRepo healthcheck.Repository

	// Provider nil => los escaneos fallan con ErrProviderUnavailable.
	Provider   scan.Provider
	Validation profile.ValidateOptions
}

type Services struct {
	Catalog     *catalog.Catalog
	Profiles    *profile.Service
	Recommender *nutrition.Recommender
	Hazards     *nutrition.HazardResolver
	Checklist   *healthcheck.Service
	Scans       *scan.Service
}

func Build(opts Options) Services {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	profileRepo := opts.ProfileRepo
	if profileRepo == nil {
		profileRepo = mem.NewProfileRepo()
	}
	checklistRepo := opts.ChecklistRepo
	if checklistRepo == nil {
		checklistRepo = mem.NewChecklistRepo()
	}

	profilesSvc := profile.NewService(profileRepo, opts.Validation)

	var obs scan.Observer
	if opts.Metrics != nil {
		obs = opts.Metrics
	}

	return Services{
		Catalog:     cat,
		Profiles:    profilesSvc,
		Recommender: nutrition.NewRecommender(cat),
		Hazards:     nutrition.NewHazardResolver(cat),
		Checklist:   healthcheck.NewService(checklistRepo, profilesSvc),
		Scans: scan.NewService(
			scan.NewContract(cat, opts.Validation),
			opts.Provider,
			log.With(map[string]any{"component": "scan"}),
			obs,
		),
	}
}
