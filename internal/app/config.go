package app

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"pet-nutrition-guide/internal/adapters/analysis/cache"
	"pet-nutrition-guide/internal/adapters/analysis/gemini"
	"pet-nutrition-guide/internal/platform/logger"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Analysis providers.
const (
	ProviderNone   = "none"
	ProviderGemini = "gemini"
	ProviderRemote = "remote"
)

type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Storage  StorageConfig     `yaml:"storage"`
	Analysis AnalysisConfig    `yaml:"analysis"`
	Catalog  CatalogConfig     `yaml:"catalog"`
	Profile  ProfileConfig     `yaml:"profile"`
}

func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	return nil
}

type ApplicationConfig struct {
	Name      string     `yaml:"name"`
	LogLevel  string     `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
	HTTP      HTTPConfig `yaml:"http"`
}

func (c *ApplicationConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In("", "debug", "info", "warn", "warning", "error")),
		validation.Field(&c.LogFormat, validation.In("", "text", "json")),
	); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

// LoggerOptions traduce la sección app a opciones del logger.
func (c *ApplicationConfig) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.Name,
	}
}

type HTTPConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *HTTPConfig) Validate() error {
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Duration(0))),
	)
}

// StorageConfig elige dónde vive el perfil y el checklist.
// Para sqlite, DSN es el path del archivo.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

func (c *StorageConfig) Validate() error {
	if c.Driver == "" {
		c.Driver = StorageMemory
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(StorageMemory, StoragePostgres, StorageSQLite)),
		validation.Field(&c.DSN, validation.When(c.Driver != StorageMemory, validation.Required)),
	)
}

// AnalysisConfig configura el proveedor de análisis de imágenes.
// CacheSize 0 desactiva el cache de respuestas.
type AnalysisConfig struct {
	Provider  string        `yaml:"provider"`
	Model     string        `yaml:"model"`
	APIKey    string        `yaml:"api_key"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	CacheSize int           `yaml:"cache_size"`
}

func (c *AnalysisConfig) Validate() error {
	if c.Provider == "" {
		c.Provider = ProviderNone
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Provider, validation.Required, validation.In(ProviderNone, ProviderGemini, ProviderRemote)),
		validation.Field(&c.APIKey, validation.When(c.Provider == ProviderGemini, validation.Required)),
		validation.Field(&c.BaseURL, validation.When(c.Provider == ProviderRemote, validation.Required)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&c.CacheSize, validation.Min(0)),
	)
}

// CatalogConfig: Path vacío usa el catálogo por defecto.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

type ProfileConfig struct {
	StrictGrade bool `yaml:"strict_grade"`
}

func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			Name:      "pet-nutrition-guide",
			LogLevel:  "info",
			LogFormat: "text",
			HTTP: HTTPConfig{
				Port:            8080,
				ShutdownTimeout: 10 * time.Second,
			},
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Analysis: AnalysisConfig{
			Provider:  ProviderNone,
			Model:     gemini.DefaultModel,
			Timeout:   60 * time.Second,
			CacheSize: cache.DefaultSize,
		},
	}
}

type Validator interface {
	Validate() error
}

// Load lee YAML con expansión de ${ENV} sobre target (que ya trae defaults).
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if v, ok := any(target).(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}
	return nil
}
