package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pet-nutrition-guide/internal/domain/profile"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context) (profile.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, age, weight,
			gender, activity_level, neuter_status, current_food, photo,
			patellar_luxation, patellar_luxation_grade, tracheal_collapse,
			alopecia_x, heart_disease, dental_issues,
			known_allergies, created_at, updated_at
		FROM pet_profiles
		ORDER BY updated_at DESC
		LIMIT 1
	`)

	var (
		rec                  profile.Record
		p                    = &rec.Profile
		hc                   = &rec.Profile.HealthConditions
		allergies            string
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&rec.ID, &p.Name, &p.Age, &p.Weight,
		&p.Gender, &p.ActivityLevel, &p.NeuterStatus, &p.CurrentFood, &p.Photo,
		&hc.PatellarLuxation, &hc.PatellarLuxationGrade, &hc.TrachealCollapse,
		&hc.AlopeciaX, &hc.HeartDisease, &hc.DentalIssues,
		&allergies, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.Record{}, profile.ErrNotFound
		}
		return profile.Record{}, fmt.Errorf("sqlite: scan profile: %w", err)
	}

	var err error
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return profile.Record{}, fmt.Errorf("sqlite: parse created_at: %w", err)
	}
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return profile.Record{}, fmt.Errorf("sqlite: parse updated_at: %w", err)
	}
	if err := json.Unmarshal([]byte(allergies), &p.KnownAllergies); err != nil {
		return profile.Record{}, fmt.Errorf("sqlite: decode allergies: %w", err)
	}
	if len(p.KnownAllergies) == 0 {
		p.KnownAllergies = nil
	}
	return rec, nil
}

func (r *ProfileRepo) Save(ctx context.Context, rec profile.Record) error {
	allergies, err := json.Marshal(rec.Profile.KnownAllergies)
	if err != nil {
		return err
	}
	if rec.Profile.KnownAllergies == nil {
		allergies = []byte("[]")
	}

	p := rec.Profile
	hc := p.HealthConditions
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pet_profiles (
			id, name, age, weight,
			gender, activity_level, neuter_status, current_food, photo,
			patellar_luxation, patellar_luxation_grade, tracheal_collapse,
			alopecia_x, heart_disease, dental_issues,
			known_allergies, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			weight = excluded.weight,
			gender = excluded.gender,
			activity_level = excluded.activity_level,
			neuter_status = excluded.neuter_status,
			current_food = excluded.current_food,
			photo = excluded.photo,
			patellar_luxation = excluded.patellar_luxation,
			patellar_luxation_grade = excluded.patellar_luxation_grade,
			tracheal_collapse = excluded.tracheal_collapse,
			alopecia_x = excluded.alopecia_x,
			heart_disease = excluded.heart_disease,
			dental_issues = excluded.dental_issues,
			known_allergies = excluded.known_allergies,
			updated_at = excluded.updated_at
	`,
		rec.ID, p.Name, p.Age, p.Weight,
		string(p.Gender), string(p.ActivityLevel), string(p.NeuterStatus), p.CurrentFood, p.Photo,
		hc.PatellarLuxation, hc.PatellarLuxationGrade, hc.TrachealCollapse,
		hc.AlopeciaX, hc.HeartDisease, hc.DentalIssues,
		string(allergies), formatTime(rec.CreatedAt), formatTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save profile: %w", err)
	}
	return nil
}
