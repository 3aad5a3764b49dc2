package memory

import (
	"context"
	"errors"
	"testing"

	"pet-nutrition-guide/internal/domain/healthcheck"
	"pet-nutrition-guide/internal/domain/profile"
)

func TestProfileRepo_GetBeforeSave(t *testing.T) {
	r := NewProfileRepo()
	if _, err := r.Get(context.Background()); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileRepo_StoresCopies(t *testing.T) {
	r := NewProfileRepo()
	rec := profile.Record{ID: "r1", Profile: profile.Profile{Name: "Coco", KnownAllergies: []string{"Chicken"}}}
	if err := r.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec.Profile.KnownAllergies[0] = "mutated"

	got, err := r.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Profile.KnownAllergies[0] != "Chicken" {
		t.Fatalf("repo aliased caller slice")
	}
}

func TestChecklistRepo_KeyedByNameAndWeek(t *testing.T) {
	r := NewChecklistRepo()
	ctx := context.Background()

	s := healthcheck.Submission{ID: "s1", ProfileName: "Coco", Week: "2026-W10", Answers: map[healthcheck.ItemID]bool{healthcheck.ItemCoughing: true}}
	if err := r.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := r.Get(ctx, "Coco", "2026-W11"); !errors.Is(err, healthcheck.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another week, got %v", err)
	}
	if _, err := r.Get(ctx, "Bori", "2026-W10"); !errors.Is(err, healthcheck.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another profile, got %v", err)
	}

	got, err := r.Get(ctx, "Coco", "2026-W10")
	if err != nil || !got.Answers[healthcheck.ItemCoughing] {
		t.Fatalf("unexpected get: %+v %v", got, err)
	}

	if err := r.Save(ctx, healthcheck.Submission{ProfileName: "Coco", Week: "2026-W12"}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}
