// Package app arma la aplicación a partir de la configuración y la ejecuta
// como servidor HTTP o como servidor MCP sobre stdio.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"pet-nutrition-guide/internal/mcpserver"
	"pet-nutrition-guide/internal/platform/logger"
	"pet-nutrition-guide/internal/router"
	"pet-nutrition-guide/internal/services"
)

type Option func(*application)

type application struct {
	config *Config
	logger logger.Logger
}

func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithLogger reemplaza el logger construido desde la configuración.
func WithLogger(l logger.Logger) Option {
	return func(a *application) {
		a.logger = l
	}
}

func newApplication(opts []Option, output string) (*application, error) {
	a := &application{}
	for _, opt := range opts {
		opt(a)
	}
	if a.config == nil {
		return nil, errors.New("config is required")
	}
	if a.logger == nil {
		lo := a.config.App.LoggerOptions()
		lo.Output = output
		l, err := logger.New(lo)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		a.logger = l
	}
	return a, nil
}

// Run levanta el servidor HTTP y espera SIGINT/SIGTERM o la cancelación de ctx.
func Run(ctx context.Context, opts ...Option) error {
	a, err := newApplication(opts, "stdout")
	if err != nil {
		return err
	}
	cfg := a.config
	log := a.logger
	defer syncLogger(log)

	log.Info("configuration loaded", map[string]any{
		"http_address":      cfg.App.HTTP.Address(),
		"storage_driver":    cfg.Storage.Driver,
		"analysis_provider": cfg.Analysis.Provider,
		"catalog_path":      cfg.Catalog.Path,
		"strict_grade":      cfg.Profile.StrictGrade,
	})

	c, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.close(); err != nil {
			log.Warn("storage close failed", map[string]any{"error": err.Error()})
		}
	}()

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           router.NewRouter(c.options),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		// el escaneo espera al proveedor de análisis
		WriteTimeout: cfg.Analysis.Timeout + 30*time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", map[string]any{"address": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			log.Info("received shutdown signal", map[string]any{"signal": sig.String()})
		case <-gCtx.Done():
			log.Info("context cancelled, initiating shutdown", nil)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.HTTP.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("http server shutdown error", map[string]any{"error": err.Error()})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("application error", map[string]any{"error": err.Error()})
		return err
	}

	log.Info("server stopped", nil)
	return nil
}

// RunMCP sirve las tools MCP sobre stdin/stdout. Los logs van a stderr.
func RunMCP(ctx context.Context, opts ...Option) error {
	a, err := newApplication(opts, "stderr")
	if err != nil {
		return err
	}
	defer syncLogger(a.logger)

	c, err := build(ctx, a.config, a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = c.close() }()

	a.logger.Info("starting mcp server on stdio", map[string]any{"version": mcpserver.Version})
	return mcpserver.New(services.Build(c.options)).ServeStdio()
}

// ExportCatalog escribe en w el catálogo activo (default o catalog.path) en el formato que acepta catalog.path.
func ExportCatalog(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cat); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

func syncLogger(l logger.Logger) {
	if s, ok := l.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
