package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

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
		WHERE profile_name = ? AND week = ?
	`, profileName, week)

	var (
		s                    healthcheck.Submission
		answers              string
		createdAt, updatedAt string
	)
	if err := row.Scan(&s.ID, &s.ProfileName, &s.Week, &answers, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return healthcheck.Submission{}, healthcheck.ErrNotFound
		}
		return healthcheck.Submission{}, fmt.Errorf("sqlite: scan submission: %w", err)
	}

	var err error
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return healthcheck.Submission{}, err
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return healthcheck.Submission{}, err
	}
	if err := json.Unmarshal([]byte(answers), &s.Answers); err != nil {
		return healthcheck.Submission{}, fmt.Errorf("sqlite: decode answers: %w", err)
	}
	return s, nil
}

func (r *ChecklistRepo) Save(ctx context.Context, s healthcheck.Submission) error {
	answers, err := json.Marshal(s.Answers)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO healthcheck_submissions (id, profile_name, week, answers, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (profile_name, week) DO UPDATE SET
			answers = excluded.answers,
			updated_at = excluded.updated_at
	`, s.ID, s.ProfileName, s.Week, string(answers), formatTime(s.CreatedAt), formatTime(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("sqlite: save submission: %w", err)
	}
	return nil
}
