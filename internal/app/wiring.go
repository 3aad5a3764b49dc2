package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"pet-nutrition-guide/internal/adapters/analysis/cache"
	"pet-nutrition-guide/internal/adapters/analysis/gemini"
	"pet-nutrition-guide/internal/adapters/analysis/remote"
	mem "pet-nutrition-guide/internal/adapters/storage/memory"
	"pet-nutrition-guide/internal/adapters/storage/postgres"
	"pet-nutrition-guide/internal/adapters/storage/sqlite"
	"pet-nutrition-guide/internal/domain/catalog"
	"pet-nutrition-guide/internal/domain/healthcheck"
	"pet-nutrition-guide/internal/domain/profile"
	"pet-nutrition-guide/internal/domain/scan"
	"pet-nutrition-guide/internal/platform/logger"
	"pet-nutrition-guide/internal/platform/metrics"
	"pet-nutrition-guide/internal/services"
)

type repositories struct {
	profiles  profile.Repository
	checklist healthcheck.Repository
	close     func() error
}

func openStorage(ctx context.Context, cfg StorageConfig) (repositories, error) {
	switch cfg.Driver {
	case "", StorageMemory:
		return repositories{
			profiles:  mem.NewProfileRepo(),
			checklist: mem.NewChecklistRepo(),
			close:     func() error { return nil },
		}, nil

	case StoragePostgres:
		db, err := postgres.Open(cfg.DSN)
		if err != nil {
			return repositories{}, fmt.Errorf("open postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("migrate postgres: %w", err)
		}
		return sqlRepositories(db, postgres.NewProfileRepo(db), postgres.NewChecklistRepo(db)), nil

	case StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return repositories{}, fmt.Errorf("open sqlite: %w", err)
		}
		return sqlRepositories(db, sqlite.NewProfileRepo(db), sqlite.NewChecklistRepo(db)), nil

	default:
		return repositories{}, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func sqlRepositories(db *sql.DB, p profile.Repository, c healthcheck.Repository) repositories {
	return repositories{profiles: p, checklist: c, close: db.Close}
}

// newProvider devuelve nil si no hay proveedor configurado (POST /scans => 503).
func newProvider(ctx context.Context, cfg AnalysisConfig, rec cache.Recorder) (scan.Provider, error) {
	var p scan.Provider

	switch cfg.Provider {
	case "", ProviderNone:
		return nil, nil

	case ProviderGemini:
		g, err := gemini.New(ctx, gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err != nil {
			return nil, err
		}
		p = g

	case ProviderRemote:
		r, err := remote.New(remote.Config{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey, Model: cfg.Model, Timeout: cfg.Timeout})
		if err != nil {
			return nil, err
		}
		p = r

	default:
		return nil, fmt.Errorf("unknown analysis provider %q", cfg.Provider)
	}

	if cfg.Timeout > 0 {
		p = withTimeout(p, cfg.Timeout)
	}
	if cfg.CacheSize > 0 {
		c, err := cache.New(p, cfg.CacheSize, rec)
		if err != nil {
			return nil, fmt.Errorf("analysis cache: %w", err)
		}
		p = c
	}
	return p, nil
}

func withTimeout(next scan.Provider, d time.Duration) scan.Provider {
	return scan.ProviderFunc(func(ctx context.Context, req scan.AnalysisRequest) ([]byte, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next.Analyze(ctx, req)
	})
}

func loadCatalog(cfg CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Path)
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// components es todo lo que Run y RunMCP comparten.
type components struct {
	options services.Options
	close   func() error
}

func build(ctx context.Context, cfg *Config, log logger.Logger) (*components, error) {
	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	reg := newRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	provider, err := newProvider(ctx, cfg.Analysis, m)
	if err != nil {
		return nil, fmt.Errorf("init analysis provider: %w", err)
	}

	repos, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	opts := services.Options{
		Logger:        log,
		Metrics:       m,
		Gatherer:      reg,
		Catalog:       cat,
		ProfileRepo:   repos.profiles,
		ChecklistRepo: repos.checklist,
		Provider:      provider,
		Validation:    profile.ValidateOptions{StrictGrade: cfg.Profile.StrictGrade},
	}

	return &components{options: opts, close: repos.close}, nil
}
