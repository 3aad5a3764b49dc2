package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-nutrition-guide/internal/domain/healthcheck"
)

type checklistKey struct {
	profileName string
	week        string
}

type checklistRepo struct {
	mu    sync.RWMutex
	byKey map[checklistKey]healthcheck.Submission
}

func NewChecklistRepo() healthcheck.Repository {
	return &checklistRepo{
		byKey: make(map[checklistKey]healthcheck.Submission),
	}
}

func (r *checklistRepo) Get(ctx context.Context, profileName, week string) (healthcheck.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byKey[checklistKey{profileName, week}]
	if !ok {
		return healthcheck.Submission{}, healthcheck.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *checklistRepo) Save(ctx context.Context, s healthcheck.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("submission id required")
	}
	r.byKey[checklistKey{s.ProfileName, s.Week}] = s.Clone()
	return nil
}
