package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"pet-nutrition-guide/internal/domain/profile"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get devuelve el perfil más reciente. En la práctica hay una sola fila.
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
		rec       profile.Record
		p         = &rec.Profile
		hc        = &rec.Profile.HealthConditions
		allergies string
	)
	if err := row.Scan(
		&rec.ID, &p.Name, &p.Age, &p.Weight,
		&p.Gender, &p.ActivityLevel, &p.NeuterStatus, &p.CurrentFood, &p.Photo,
		&hc.PatellarLuxation, &hc.PatellarLuxationGrade, &hc.TrachealCollapse,
		&hc.AlopeciaX, &hc.HeartDisease, &hc.DentalIssues,
		&allergies, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.Record{}, profile.ErrNotFound
		}
		return profile.Record{}, err
	}

	if err := json.Unmarshal([]byte(allergies), &p.KnownAllergies); err != nil {
		return profile.Record{}, err
	}
	return rec, nil
}

// Save hace upsert por id (el servicio conserva el id del registro existente).
func (r *ProfileRepo) Save(ctx context.Context, rec profile.Record) error {
	allergies, err := json.Marshal(nonNil(rec.Profile.KnownAllergies))
	if err != nil {
		return err
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
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			weight = EXCLUDED.weight,
			gender = EXCLUDED.gender,
			activity_level = EXCLUDED.activity_level,
			neuter_status = EXCLUDED.neuter_status,
			current_food = EXCLUDED.current_food,
			photo = EXCLUDED.photo,
			patellar_luxation = EXCLUDED.patellar_luxation,
			patellar_luxation_grade = EXCLUDED.patellar_luxation_grade,
			tracheal_collapse = EXCLUDED.tracheal_collapse,
			alopecia_x = EXCLUDED.alopecia_x,
			heart_disease = EXCLUDED.heart_disease,
			dental_issues = EXCLUDED.dental_issues,
			known_allergies = EXCLUDED.known_allergies,
			updated_at = EXCLUDED.updated_at
	`,
		rec.ID, p.Name, p.Age, p.Weight,
		string(p.Gender), string(p.ActivityLevel), string(p.NeuterStatus), p.CurrentFood, p.Photo,
		hc.PatellarLuxation, hc.PatellarLuxationGrade, hc.TrachealCollapse,
		hc.AlopeciaX, hc.HeartDisease, hc.DentalIssues,
		string(allergies), rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
