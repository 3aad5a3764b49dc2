package remote

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-nutrition-guide/internal/domain/scan"
	"pet-nutrition-guide/internal/platform/httpclient"
)

// AnalyzePath es el endpoint del servicio de análisis genérico.
const AnalyzePath = "/v1/analyze"

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Provider habla con cualquier servicio HTTP que acepte imagen + prompt + JSON Schema
// y devuelva el texto generado en "output".
type Provider struct {
	http   *httpclient.Client
	apiKey string
	model  string
}

type analyzeRequest struct {
	Model       string         `json:"model,omitempty"`
	Prompt      string         `json:"prompt"`
	ImageBase64 string         `json:"image_base64"`
	MIMEType    string         `json:"mime_type"`
	Schema      map[string]any `json:"response_schema"`
}

type analyzeResponse struct {
	Output string `json:"output"`
}

func New(cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("remote analysis: base url is required")
	}
	c, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Provider{http: c, apiKey: cfg.APIKey, model: cfg.Model}, nil
}

func (p *Provider) Analyze(ctx context.Context, req scan.AnalysisRequest) ([]byte, error) {
	headers := map[string]string{}
	if p.apiKey != "" {
		headers["Authorization"] = "Bearer " + p.apiKey
	}

	in := analyzeRequest{
		Model:       p.model,
		Prompt:      req.Prompt,
		ImageBase64: base64.StdEncoding.EncodeToString(req.Image),
		MIMEType:    req.MIMEType,
		Schema:      req.Schema.JSONSchema(),
	}

	var out analyzeResponse
	if err := p.http.DoJSON(ctx, http.MethodPost, AnalyzePath, headers, in, &out); err != nil {
		return nil, fmt.Errorf("remote analysis: %w", err)
	}
	// Output vacío lo clasifica el contrato (respuesta malformada).
	return []byte(out.Output), nil
}
