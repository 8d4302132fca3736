package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnection opens the SQLite database, enables foreign keys and applies the schema.
func NewConnection(cfg *config.Config) (*sqlx.DB, func(), error) {
	if cfg.Database.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Database.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create database dir: %w", err)
			}
		}
	}

	db, err := Open(cfg.DatabaseDSN())
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, func() {
		_ = db.Close()
	}, nil
}

// Open connects to dsn with a single shared connection so every statement and transaction
// is serialized.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}
	return db, nil
}
