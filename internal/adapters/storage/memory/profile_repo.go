package memory

import (
	"context"
	"sync"

	"pet-nutrition-guide/internal/domain/profile"
)

// profileRepo guarda el único perfil de la app (last-write-wins).
type profileRepo struct {
	mu  sync.RWMutex
	rec *profile.Record
}

func NewProfileRepo() profile.Repository {
	return &profileRepo{}
}

func (r *profileRepo) Get(ctx context.Context) (profile.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.rec == nil {
		return profile.Record{}, profile.ErrNotFound
	}
	out := *r.rec
	out.Profile = r.rec.Profile.Clone()
	return out, nil
}

func (r *profileRepo) Save(ctx context.Context, rec profile.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := rec
	cp.Profile = rec.Profile.Clone()
	r.rec = &cp
	return nil
}
