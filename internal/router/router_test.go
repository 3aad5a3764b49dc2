package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"pet-nutrition-guide/internal/domain/scan"
	"pet-nutrition-guide/internal/platform/metrics"
	"pet-nutrition-guide/internal/router"
	"pet-nutrition-guide/internal/services"
)

var pngStub = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestHTTP_EndToEnd_ProfileViewsAndScan(t *testing.T) {
	var seenPrompt string
	provider := scan.ProviderFunc(func(_ context.Context, req scan.AnalysisRequest) ([]byte, error) {
		seenPrompt = req.Prompt
		return []byte(`{"summary":"기관지에 부담이 적은 제품입니다.","ingredients":[
			{"name":"Duck","category":"Green","reason":"단일 단백질"},
			{"name":"Corn","category":"Yellow","reason":"알러지 유발 가능"}
		]}`), nil
	})

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		t.Fatalf("metrics.New: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(services.Options{Provider: provider, Metrics: m, Gatherer: reg}))
	defer ts.Close()

	// 1) Sin onboarding no hay perfil
	{
		st, _ := doReq(t, ts.URL, "GET", "/profile", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 before onboarding, got %d", st)
		}
	}

	// 2) Onboarding
	{
		st, body := doReq(t, ts.URL, "PUT", "/profile", map[string]any{
			"name":           "Coco",
			"age":            4,
			"weight":         2.8,
			"gender":         "female",
			"activity_level": "medium",
			"neuter_status":  "neutered",
			"health_conditions": map[string]any{
				"tracheal_collapse": true,
			},
			"known_allergies": []string{"Chicken"},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 save profile, got %d body=%s", st, string(body))
		}
	}

	// 3) Luz verde: solo respiratorio, 4 ítems
	{
		st, body := doReq(t, ts.URL, "GET", "/profile/recommendations", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 recommendations, got %d body=%s", st, string(body))
		}
		var resp struct {
			Recommendations []struct {
				Concern string   `json:"concern"`
				Items   []string `json:"items"`
			} `json:"recommendations"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Recommendations) != 1 || resp.Recommendations[0].Concern != "respiratory" || len(resp.Recommendations[0].Items) != 4 {
			t.Fatalf("unexpected recommendations: %s", string(body))
		}
	}

	// 4) Luz roja: incluye la sección de alergias
	{
		st, body := doReq(t, ts.URL, "GET", "/profile/hazards", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 hazards, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), "알고 있는 알러지 유발 식품") || !strings.Contains(string(body), "Chicken") {
			t.Fatalf("expected allergen section, got %s", string(body))
		}
	}

	// 5) Escaneo
	{
		st, body := doScan(t, ts.URL, pngStub)
		if st != http.StatusOK {
			t.Fatalf("expected 200 scan, got %d body=%s", st, string(body))
		}
		var resp struct {
			State       string `json:"state"`
			Ingredients []struct {
				Name     string `json:"name"`
				Category string `json:"category"`
			} `json:"ingredients"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.State != "succeeded" || len(resp.Ingredients) != 2 || resp.Ingredients[1].Category != "Yellow" {
			t.Fatalf("unexpected scan response: %s", string(body))
		}
		if !strings.Contains(seenPrompt, "기관지 협착증") || !strings.Contains(seenPrompt, "Chicken") {
			t.Fatalf("prompt should carry the profile digest")
		}
	}

	// 6) Checklist semanal: solo la pregunta de tos
	{
		if st, _ := doReq(t, ts.URL, "GET", "/healthcheck/current", nil); st != http.StatusNotFound {
			t.Fatalf("expected 404 current before submit, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/healthcheck", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 checklist, got %d body=%s", st, string(body))
		}
		var resp struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
			Submitted bool `json:"submitted"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Items) != 1 || resp.Items[0].ID != "coughing" || resp.Submitted {
			t.Fatalf("unexpected checklist: %s", string(body))
		}

		st, body = doReq(t, ts.URL, "POST", "/healthcheck", map[string]any{
			"answers": map[string]bool{"coughing": true},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 submit, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/healthcheck", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"submitted":true`) {
			t.Fatalf("expected submitted checklist, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/healthcheck/current", nil)
		var cur struct {
			ID      string          `json:"id"`
			Answers map[string]bool `json:"answers"`
		}
		_ = json.Unmarshal(body, &cur)
		if st != http.StatusOK || cur.ID == "" || !cur.Answers["coughing"] {
			t.Fatalf("unexpected current submission %d body=%s", st, string(body))
		}
	}

	// 7) Métricas expuestas
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `pet_nutrition_scans_total{outcome="succeeded"} 1`) {
			t.Fatalf("expected scan metric, got %d", st)
		}
	}
}

func TestHTTP_ScanWithoutProvider_Returns503(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(services.Options{}))
	defer ts.Close()

	saveMinimalProfile(t, ts.URL)

	st, _ := doScan(t, ts.URL, pngStub)
	if st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without provider, got %d", st)
	}
}

func TestHTTP_SaveProfile_RejectsInvalid(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(services.Options{}))
	defer ts.Close()

	// grado fuera de rango => 400
	st, _ := doReq(t, ts.URL, "PUT", "/profile", map[string]any{
		"name":              "Coco",
		"gender":            "female",
		"activity_level":    "low",
		"neuter_status":     "intact",
		"health_conditions": map[string]any{"patellar_luxation": true, "patellar_luxation_grade": 7},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid grade, got %d", st)
	}

	// campo desconocido => 400
	st, _ = doReq(t, ts.URL, "PUT", "/profile", map[string]any{"name": "Coco", "breed": "pom"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", st)
	}
}

func TestHTTP_HealthAndCatalog(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(services.Options{}))
	defer ts.Close()

	if st, body := doReq(t, ts.URL, "GET", "/health", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health %d %s", st, string(body))
	}

	st, body := doReq(t, ts.URL, "GET", "/catalog", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 catalog, got %d", st)
	}
	var resp struct {
		Guide []struct {
			Concern string `json:"concern"`
		} `json:"guide"`
	}
	_ = json.Unmarshal(body, &resp)
	if len(resp.Guide) != 5 || resp.Guide[0].Concern != "joints" {
		t.Fatalf("unexpected catalog %s", string(body))
	}

	// sin /metrics si no hay gatherer
	if st, _ := doReq(t, ts.URL, "GET", "/metrics", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 metrics without gatherer, got %d", st)
	}
}

func TestSwaggerDoc_MatchesRegisteredRoutes(t *testing.T) {
	h := router.NewRouter(services.Options{})
	routes, ok := h.(chi.Routes)
	if !ok {
		t.Fatalf("router does not expose its routes")
	}

	ts := httptest.NewServer(h)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 doc.json, got %d", st)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("doc.json is not valid json: %v", err)
	}

	documented := make([]string, 0)
	for path, ops := range doc.Paths {
		for method := range ops {
			documented = append(documented, strings.ToUpper(method)+" "+path)
		}
	}

	// /health, /metrics y /swagger no son parte de la API documentada
	registered := make([]string, 0)
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		switch route {
		case "/health", "/metrics", "/swagger/*":
			return nil
		}
		registered = append(registered, method+" "+route)
		return nil
	})
	if err != nil {
		t.Fatalf("walk routes: %v", err)
	}

	slices.Sort(documented)
	slices.Sort(registered)
	if !slices.Equal(documented, registered) {
		t.Fatalf("swagger paths out of sync with router\ndocumented: %v\nregistered: %v", documented, registered)
	}
}

func saveMinimalProfile(t *testing.T, baseURL string) {
	t.Helper()

	st, body := doReq(t, baseURL, "PUT", "/profile", map[string]any{
		"name":           "Coco",
		"gender":         "male",
		"activity_level": "high",
		"neuter_status":  "intact",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 save profile, got %d body=%s", st, string(body))
	}
}

func doScan(t *testing.T, baseURL string, image []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "label.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write(image)
	_ = mw.Close()

	req, err := http.NewRequest("POST", baseURL+"/scans", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
