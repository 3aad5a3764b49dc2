package scan

import "context"

// Provider es el servicio externo de visión/lenguaje que lee el rótulo y clasifica.
// Devuelve el texto crudo de la respuesta; ParseResponse decide si es válido.
type Provider interface {
	Analyze(ctx context.Context, req AnalysisRequest) ([]byte, error)
}

// ProviderFunc adapta una función a Provider (útil en tests y wiring).
type ProviderFunc func(ctx context.Context, req AnalysisRequest) ([]byte, error)

func (f ProviderFunc) Analyze(ctx context.Context, req AnalysisRequest) ([]byte, error) {
	return f(ctx, req)
}
