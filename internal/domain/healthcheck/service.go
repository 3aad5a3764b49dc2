package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-nutrition-guide/internal/domain/profile"
)

type ProfileSource interface {
	Get(ctx context.Context) (profile.Record, error)
}

type Service struct {
	repo     Repository
	profiles ProfileSource
	now      func() time.Time
}

func NewService(repo Repository, profiles ProfileSource) *Service {
	return &Service{repo: repo, profiles: profiles, now: time.Now}
}

// Checklist arma la vista de la semana actual.
func (s *Service) Checklist(ctx context.Context) (Checklist, error) {
	rec, err := s.profiles.Get(ctx)
	if err != nil {
		return Checklist{}, err
	}

	week := WeekID(s.now())
	out := Checklist{Week: week, Items: RelevantItems(rec.Profile)}

	sub, err := s.repo.Get(ctx, rec.Profile.Name, week)
	switch {
	case err == nil:
		out.Submission = &sub
	case errors.Is(err, ErrNotFound):
	default:
		return Checklist{}, err
	}
	return out, nil
}

// Current devuelve la submission de esta semana o ErrNotFound.
func (s *Service) Current(ctx context.Context) (Submission, error) {
	rec, err := s.profiles.Get(ctx)
	if err != nil {
		return Submission{}, err
	}
	return s.repo.Get(ctx, rec.Profile.Name, WeekID(s.now()))
}

// Submit guarda las respuestas de la semana. Reenviar reemplaza las anteriores.
func (s *Service) Submit(ctx context.Context, answers map[ItemID]bool) (Submission, error) {
	if len(answers) == 0 {
		return Submission{}, fmt.Errorf("%w: answers are required", ErrInvalidInput)
	}
	unknown := make([]string, 0)
	for id := range answers {
		if !knownItem(id) {
			unknown = append(unknown, string(id))
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return Submission{}, fmt.Errorf("%w: unknown checklist items: %s", ErrInvalidInput, strings.Join(unknown, ", "))
	}

	rec, err := s.profiles.Get(ctx)
	if err != nil {
		return Submission{}, err
	}

	now := s.now()
	week := WeekID(now)
	sub := Submission{
		ProfileName: rec.Profile.Name,
		Week:        week,
		Answers:     make(map[ItemID]bool, len(answers)),
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	for k, v := range answers {
		sub.Answers[k] = v
	}

	prev, err := s.repo.Get(ctx, sub.ProfileName, week)
	switch {
	case err == nil:
		sub.ID = prev.ID
		sub.CreatedAt = prev.CreatedAt
	case errors.Is(err, ErrNotFound):
		sub.ID = uuid.NewString()
	default:
		return Submission{}, err
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}
