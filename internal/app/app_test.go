package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet-nutrition-guide/internal/adapters/analysis/cache"
	"pet-nutrition-guide/internal/adapters/analysis/remote"
	"pet-nutrition-guide/internal/domain/catalog"
	"pet-nutrition-guide/internal/domain/profile"
	"pet-nutrition-guide/internal/domain/scan"
	"pet-nutrition-guide/internal/platform/logger"
	"pet-nutrition-guide/internal/router"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ":8080", cfg.App.HTTP.Address())
	require.Equal(t, StorageMemory, cfg.Storage.Driver)
	require.Equal(t, ProviderNone, cfg.Analysis.Provider)
}

func TestConfig_ValidationRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"bad port", func(c *Config) { c.App.HTTP.Port = 0 }, "app"},
		{"bad log format", func(c *Config) { c.App.LogFormat = "xml" }, "app"},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "mongo" }, "storage"},
		{"postgres without dsn", func(c *Config) { c.Storage.Driver = StoragePostgres }, "storage"},
		{"sqlite without dsn", func(c *Config) { c.Storage.Driver = StorageSQLite }, "storage"},
		{"unknown provider", func(c *Config) { c.Analysis.Provider = "openai" }, "analysis"},
		{"gemini without key", func(c *Config) { c.Analysis.Provider = ProviderGemini }, "analysis"},
		{"remote without url", func(c *Config) { c.Analysis.Provider = ProviderRemote }, "analysis"},
		{"negative cache", func(c *Config) { c.Analysis.CacheSize = -1 }, "analysis"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.True(t, strings.HasPrefix(err.Error(), tc.errSub), err.Error())
		})
	}
}

func TestConfig_EmptyDriverAndProviderDefault(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Storage.Driver = ""
	cfg.Analysis.Provider = ""
	cfg.App.HTTP.ShutdownTimeout = 0
	require.NoError(t, cfg.Validate())
	require.Equal(t, StorageMemory, cfg.Storage.Driver)
	require.Equal(t, ProviderNone, cfg.Analysis.Provider)
	require.Equal(t, 10*time.Second, cfg.App.HTTP.ShutdownTimeout)
}

func TestLoad_ExpandsEnvAndKeepsDefaults(t *testing.T) {
	t.Setenv("PET_TEST_API_KEY", "secret-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  http:
    port: 9090
analysis:
  provider: gemini
  api_key: ${PET_TEST_API_KEY}
  timeout: 15s
profile:
  strict_grade: true
`), 0o600))

	cfg := NewDefaultConfig()
	require.NoError(t, Load(path, cfg))

	require.Equal(t, 9090, cfg.App.HTTP.Port)
	require.Equal(t, "secret-key", cfg.Analysis.APIKey)
	require.Equal(t, 15*time.Second, cfg.Analysis.Timeout)
	require.True(t, cfg.Profile.StrictGrade)
	// defaults intactos
	require.Equal(t, "pet-nutrition-guide", cfg.App.Name)
	require.Equal(t, cache.DefaultSize, cfg.Analysis.CacheSize)
}

func TestLoad_Errors(t *testing.T) {
	cfg := NewDefaultConfig()
	require.Error(t, Load(filepath.Join(t.TempDir(), "missing.yaml"), cfg))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: sqlite\n"), 0o600))
	err := Load(path, NewDefaultConfig())
	require.Error(t, err)
	require.Contains(t, err.Error(), "config validation failed")
}

func TestNewProvider_None(t *testing.T) {
	p, err := newProvider(context.Background(), AnalysisConfig{Provider: ProviderNone}, nil)
	require.NoError(t, err)
	require.Nil(t, p)
}

type countingRecorder struct{ hits, misses int }

func (r *countingRecorder) CacheHit()  { r.hits++ }
func (r *countingRecorder) CacheMiss() { r.misses++ }

func TestNewProvider_RemoteWithCache(t *testing.T) {
	var calls int
	var seenPath, seenAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		seenPath, seenAuth = r.URL.Path, r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"output": `{"summary":"ok","ingredients":[{"name":"Rice","category":"Green","reason":"소화"}]}`,
		})
	}))
	defer srv.Close()

	rec := &countingRecorder{}
	p, err := newProvider(context.Background(), AnalysisConfig{
		Provider:  ProviderRemote,
		BaseURL:   srv.URL,
		APIKey:    "k",
		Timeout:   5 * time.Second,
		CacheSize: 4,
	}, rec)
	require.NoError(t, err)
	require.IsType(t, &cache.Provider{}, p)

	req := scan.AnalysisRequest{Image: []byte{1}, MIMEType: "image/png", Prompt: "p", Schema: scan.ResponseSchema()}
	for range 2 {
		out, err := p.Analyze(context.Background(), req)
		require.NoError(t, err)
		_, err = scan.ParseResponse(out)
		require.NoError(t, err)
	}
	require.Equal(t, 1, calls)
	require.Equal(t, remote.AnalyzePath, seenPath)
	require.Equal(t, "Bearer k", seenAuth)
	require.Equal(t, 1, rec.hits)
	require.Equal(t, 1, rec.misses)
}

func TestWithTimeout_BoundsProviderCall(t *testing.T) {
	slow := scan.ProviderFunc(func(ctx context.Context, _ scan.AnalysisRequest) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	_, err := withTimeout(slow, 10*time.Millisecond).Analyze(context.Background(), scan.AnalysisRequest{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOpenStorage_SQLite(t *testing.T) {
	repos, err := openStorage(context.Background(), StorageConfig{
		Driver: StorageSQLite,
		DSN:    filepath.Join(t.TempDir(), "pets.db"),
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, repos.close()) }()

	_, err = repos.profiles.Get(context.Background())
	require.ErrorIs(t, err, profile.ErrNotFound)
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := openStorage(context.Background(), StorageConfig{Driver: "mongo"})
	require.Error(t, err)
}

func TestBuild_ServesRoutesAndMetrics(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Profile.StrictGrade = true

	c, err := build(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer func() { _ = c.close() }()
	require.True(t, c.options.Validation.StrictGrade)

	ts := httptest.NewServer(router.NewRouter(c.options))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	// grado sin luxación => 400 con strict_grade
	body := `{"name":"Coco","gender":"male","activity_level":"low","neuter_status":"intact","health_conditions":{"patellar_luxation_grade":2}}`
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/profile", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestBuild_BadCatalogPath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := build(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "load catalog")
}

func TestExportCatalog_ParsesBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCatalog(&buf, NewDefaultConfig()))

	// la salida sirve como catalog.path
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	back, err := catalog.Load(path)
	require.NoError(t, err)

	def := catalog.Default()
	require.Equal(t, def.Guide(), back.Guide())
	require.Equal(t, def.Poisons(), back.Poisons())
	require.Equal(t, def.Cautions(), back.Cautions())

	cfg := NewDefaultConfig()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.yaml")
	require.Error(t, ExportCatalog(&buf, cfg))
}

func TestRun_RequiresConfig(t *testing.T) {
	require.Error(t, Run(context.Background()))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	cfg := NewDefaultConfig()
	cfg.App.HTTP.Port = port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, WithConfig(cfg), WithLogger(logger.Nop())) }()

	require.Eventually(t, func() bool {
		res, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/health")
		if err != nil {
			return false
		}
		_ = res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
