package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"pet-nutrition-guide/internal/domain/scan"
)

const DefaultSize = 64

// Recorder recibe hits/misses (métricas). Opcional.
type Recorder interface {
	CacheHit()
	CacheMiss()
}

// Provider decora otro scan.Provider y recuerda respuestas válidas por
// (prompt, mime, imagen). Mismo rótulo + mismo perfil => misma respuesta sin llamar afuera.
type Provider struct {
	next  scan.Provider
	cache *lru.Cache[string, []byte]
	rec   Recorder
}

// New envuelve next. size <= 0 usa DefaultSize.
func New(next scan.Provider, size int, rec Recorder) (*Provider, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Provider{next: next, cache: c, rec: rec}, nil
}

func (p *Provider) Analyze(ctx context.Context, req scan.AnalysisRequest) ([]byte, error) {
	key := Key(req)
	if raw, ok := p.cache.Get(key); ok {
		p.hit()
		return append([]byte(nil), raw...), nil
	}
	p.miss()

	raw, err := p.next.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	// solo se guardan respuestas que pasan el contrato; las inválidas se reintentan afuera
	if _, perr := scan.ParseResponse(raw); perr == nil {
		p.cache.Add(key, append([]byte(nil), raw...))
	}
	return raw, nil
}

func (p *Provider) Len() int {
	return p.cache.Len()
}

func (p *Provider) hit() {
	if p.rec != nil {
		p.rec.CacheHit()
	}
}

func (p *Provider) miss() {
	if p.rec != nil {
		p.rec.CacheMiss()
	}
}

// Key es el hash del request completo. El prompt ya incluye el perfil y el catálogo.
func Key(req scan.AnalysisRequest) string {
	h := sha256.New()
	h.Write([]byte(req.MIMEType))
	h.Write([]byte{0})
	h.Write([]byte(req.Prompt))
	h.Write([]byte{0})
	h.Write(req.Image)
	return hex.EncodeToString(h.Sum(nil))
}
