package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"pet-nutrition-guide/internal/app"
)

// @title Pet Nutrition Guide API
// @version 1.0
// @description Recomendaciones nutricionales, alimentos a evitar, checklist semanal y escaneo de ingredientes para pomeranias.
// @BasePath /

func loadConfig(cmd *cli.Command) (*app.Config, error) {
	cfg := app.NewDefaultConfig()
	if err := app.Load(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := app.Run(ctx, app.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := app.RunMCP(ctx, app.WithConfig(cfg)); err != nil {
		return fmt.Errorf("mcp run error: %w", err)
	}
	return nil
}

func exportCatalog(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return app.ExportCatalog(os.Stdout, cfg)
}

func main() {
	cmd := &cli.Command{
		Name:   "pet-nutrition-guide",
		Usage:  "Guía de nutrición y escaneo de ingredientes para pomeranias",
		Action: serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Levanta la API HTTP (default)",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "Expone las tools MCP sobre stdio",
				Action: serveMCP,
			},
			{
				Name:   "catalog",
				Usage:  "Imprime el catálogo activo en YAML",
				Action: exportCatalog,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "application error: %v\n", err)
		os.Exit(1)
	}
}
