package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
)

func TestMigrateCreatesSchema(t *testing.T) {
	db, err := Open(":memory:?_foreign_keys=on&_loc=auto")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	applied, err := Migrate(ctx, db)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if applied != 1 {
		t.Fatalf("expected one migration applied, got %d", applied)
	}
	// second run must be a no-op
	applied, err = Migrate(ctx, db)
	if err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	if applied != 0 {
		t.Fatalf("expected no pending migrations, got %d", applied)
	}

	for _, table := range []string{"vocabularies", "word_pos_meanings", "study_records", "wrong_words"} {
		var name string
		if err := db.GetContext(ctx, &name, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table); err != nil {
			t.Fatalf("%s table missing: %v", table, err)
		}
	}

	var fk int
	if err := db.GetContext(ctx, &fk, "PRAGMA foreign_keys"); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("expected foreign keys enabled")
	}
}

func TestNewConnectionCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vocabulary.db")
	db, cleanup, err := NewConnection(&config.Config{Database: config.DatabaseConfig{Path: path}})
	if err != nil {
		t.Fatalf("new connection: %v", err)
	}
	defer cleanup()

	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM vocabularies"); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d", count)
	}
}
