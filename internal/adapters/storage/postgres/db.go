package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para una sola instancia (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS pet_profiles (
	id                      TEXT PRIMARY KEY,
	name                    TEXT NOT NULL,
	age                     DOUBLE PRECISION NOT NULL,
	weight                  DOUBLE PRECISION NOT NULL,
	gender                  TEXT NOT NULL,
	activity_level          TEXT NOT NULL,
	neuter_status           TEXT NOT NULL,
	current_food            TEXT NOT NULL DEFAULT '',
	photo                   BYTEA,
	patellar_luxation       BOOLEAN NOT NULL DEFAULT FALSE,
	patellar_luxation_grade INTEGER NOT NULL DEFAULT 0,
	tracheal_collapse       BOOLEAN NOT NULL DEFAULT FALSE,
	alopecia_x              BOOLEAN NOT NULL DEFAULT FALSE,
	heart_disease           BOOLEAN NOT NULL DEFAULT FALSE,
	dental_issues           BOOLEAN NOT NULL DEFAULT FALSE,
	known_allergies         TEXT NOT NULL DEFAULT '[]',
	created_at              TIMESTAMPTZ NOT NULL,
	updated_at              TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS healthcheck_submissions (
	id           TEXT PRIMARY KEY,
	profile_name TEXT NOT NULL,
	week         TEXT NOT NULL,
	answers      TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL,
	UNIQUE (profile_name, week)
);
`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres: create schema: %w", err)
	}
	return nil
}
