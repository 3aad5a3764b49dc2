package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Open abre (o crea) la base SQLite y aplica el schema.
// path puede ser ":memory:" para tests.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// un solo writer; con :memory: además cada conexión sería otra base
	db.SetMaxOpenConns(1)

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS pet_profiles (
		id                      TEXT PRIMARY KEY,
		name                    TEXT NOT NULL,
		age                     REAL NOT NULL,
		weight                  REAL NOT NULL,
		gender                  TEXT NOT NULL,
		activity_level          TEXT NOT NULL,
		neuter_status           TEXT NOT NULL,
		current_food            TEXT NOT NULL DEFAULT '',
		photo                   BLOB,
		patellar_luxation       INTEGER NOT NULL DEFAULT 0,
		patellar_luxation_grade INTEGER NOT NULL DEFAULT 0,
		tracheal_collapse       INTEGER NOT NULL DEFAULT 0,
		alopecia_x              INTEGER NOT NULL DEFAULT 0,
		heart_disease           INTEGER NOT NULL DEFAULT 0,
		dental_issues           INTEGER NOT NULL DEFAULT 0,
		known_allergies         TEXT NOT NULL DEFAULT '[]',
		created_at              TEXT NOT NULL,
		updated_at              TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS healthcheck_submissions (
		id           TEXT PRIMARY KEY,
		profile_name TEXT NOT NULL,
		week         TEXT NOT NULL,
		answers      TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		UNIQUE (profile_name, week)
	);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: create schema: %w", err)
	}
	return nil
}

// Los timestamps se guardan como texto RFC3339 en UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
