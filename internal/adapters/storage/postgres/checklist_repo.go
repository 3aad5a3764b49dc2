package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"pet-nutrition-guide/internal/domain/healthcheck"
)

type ChecklistRepo struct {
	db *sql.DB
}

func NewChecklistRepo(db *sql.DB) *ChecklistRepo {
	return &ChecklistRepo{db: db}
}

func (r *ChecklistRepo) Get(ctx context.Context, profileName, week string) (healthcheck.Submission, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, profile_name, week, answers, created_at, updated_at
		FROM healthcheck_submissions
		WHERE profile_name = $1 AND week = $2
	`, profileName, week)

	var s healthcheck.Submission
	var answers string
	if err := row.Scan(&s.ID, &s.ProfileName, &s.Week, &answers, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return healthcheck.Submission{}, healthcheck.ErrNotFound
		}
		return healthcheck.Submission{}, err
	}
	if err := json.Unmarshal([]byte(answers), &s.Answers); err != nil {
		return healthcheck.Submission{}, err
	}
	return s, nil
}

// Save reemplaza la submission de (profile_name, week).
func (r *ChecklistRepo) Save(ctx context.Context, s healthcheck.Submission) error {
	answers, err := json.Marshal(s.Answers)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO healthcheck_submissions (id, profile_name, week, answers, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (profile_name, week) DO UPDATE SET
			answers = EXCLUDED.answers,
			updated_at = EXCLUDED.updated_at
	`, s.ID, s.ProfileName, s.Week, string(answers), s.CreatedAt, s.UpdatedAt)
	return err
}
