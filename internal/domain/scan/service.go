package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pet-nutrition-guide/internal/domain/profile"
	"pet-nutrition-guide/internal/platform/logger"
)

// Observer recibe el resultado de cada intento (métricas).
// outcome es "succeeded" o el FailureKind del error.
type Observer interface {
	ObserveScan(outcome string, d time.Duration)
}

const outcomeSucceeded = "succeeded"

type Service struct {
	contract *Contract
	provider Provider
	coord    *Coordinator
	log      logger.Logger
	obs      Observer
	now      func() time.Time
}

// NewService: provider puede ser nil (los escaneos fallan con ErrProviderUnavailable).
func NewService(contract *Contract, provider Provider, log logger.Logger, obs Observer) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		contract: contract,
		provider: provider,
		coord:    NewCoordinator(),
		log:      log,
		obs:      obs,
		now:      time.Now,
	}
}

// Scan ejecuta un intento completo para la clave key (una acción lógica de escaneo).
// Siempre devuelve el Attempt en estado terminal; err es el mismo que Attempt.Err.
func (s *Service) Scan(ctx context.Context, key string, p profile.Profile, image []byte, mimeType string) (*Attempt, error) {
	a := NewAttempt(uuid.NewString(), s.now())
	log := s.log.With(map[string]any{"attempt_id": a.ID, "scan_key": key})

	req, err := s.contract.BuildRequest(p, image, mimeType)
	if err != nil {
		return s.fail(log, a, err)
	}
	if s.provider == nil {
		return s.fail(log, a, ErrProviderUnavailable)
	}

	_ = a.MarkRequested(s.now())
	log.Debug("scan requested", map[string]any{"mime_type": req.MIMEType, "image_bytes": len(req.Image)})

	sctx, done := s.coord.Begin(ctx, key)
	defer done()

	raw, err := s.provider.Analyze(sctx, req)
	if Superseded(sctx) {
		// la respuesta tardía de un intento reemplazado nunca se muestra
		return s.fail(log, a, ErrSuperseded)
	}
	if err != nil {
		return s.fail(log, a, fmt.Errorf("%w: %w", ErrProvider, err))
	}

	res, err := ParseResponse(raw)
	if err != nil {
		return s.fail(log, a, err)
	}

	_ = a.Succeed(res, s.now())
	s.observe(a)
	log.Info("scan succeeded", map[string]any{
		"ingredients": len(res.Ingredients),
		"duration_ms": a.Duration().Milliseconds(),
	})
	return a, nil
}

func (s *Service) fail(log logger.Logger, a *Attempt, err error) (*Attempt, error) {
	_ = a.Fail(err, s.now())
	s.observe(a)

	fields := map[string]any{"failure": string(a.Failure), "err": err.Error()}
	switch a.Failure {
	case FailureValidation, FailureSuperseded:
		log.Info("scan not completed", fields)
	default:
		log.Warn("scan failed", fields)
	}
	return a, err
}

func (s *Service) observe(a *Attempt) {
	if s.obs == nil {
		return
	}
	outcome := string(a.Failure)
	if a.State == StateSucceeded {
		outcome = outcomeSucceeded
	}
	s.obs.ObserveScan(outcome, a.Duration())
}
