package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	opts ValidateOptions
	now  func() time.Time
}

func NewService(repo Repository, opts ValidateOptions) *Service {
	return &Service{
		repo: repo,
		opts: opts,
		now:  time.Now,
	}
}

func (s *Service) Get(ctx context.Context) (Record, error) {
	return s.repo.Get(ctx)
}

// Save reemplaza el perfil completo. Conserva ID y CreatedAt si ya existía.
func (s *Service) Save(ctx context.Context, p Profile) (Record, error) {
	p = p.Clone()
	p.Name = strings.TrimSpace(p.Name)
	p.CurrentFood = strings.TrimSpace(p.CurrentFood)

	allergies := make([]string, 0, len(p.KnownAllergies))
	for _, a := range p.KnownAllergies {
		if a = strings.TrimSpace(a); a != "" {
			allergies = append(allergies, a)
		}
	}
	p.KnownAllergies = allergies

	if err := Validate(p, s.opts); err != nil {
		return Record{}, err
	}

	now := s.now()
	rec := Record{
		ID:        uuid.NewString(),
		Profile:   p,
		CreatedAt: now,
		UpdatedAt: now,
	}

	current, err := s.repo.Get(ctx)
	switch {
	case err == nil:
		rec.ID = current.ID
		rec.CreatedAt = current.CreatedAt
	case errors.Is(err, ErrNotFound):
		// primer guardado (onboarding)
	default:
		return Record{}, err
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
