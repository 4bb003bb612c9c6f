package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/kalpavruksha/eduhub-admin/pkg/config"
)

// NewPostgres returns a configured PostgreSQL client.
func NewPostgres(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS resources (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	subject_code TEXT NOT NULL DEFAULT '',
	header       TEXT NOT NULL DEFAULT '',
	university   TEXT NOT NULL,
	scheme       TEXT NOT NULL DEFAULT '',
	college      TEXT NOT NULL DEFAULT '',
	branch       TEXT NOT NULL DEFAULT '',
	semester     TEXT NOT NULL DEFAULT '',
	type         TEXT NOT NULL,
	file_url     TEXT NOT NULL,
	uploaded_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS resources_uploaded_at_idx ON resources (uploaded_at DESC);
CREATE TABLE IF NOT EXISTS classes (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	status     TEXT NOT NULL,
	schedule   TEXT NOT NULL,
	time       TEXT NOT NULL,
	university TEXT NOT NULL,
	college    TEXT NOT NULL DEFAULT '',
	branch     TEXT NOT NULL,
	semester   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS classes_created_at_idx ON classes (created_at DESC);
`

// EnsureSchema creates the resources and classes tables when they are missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
