package repository

import (
	"context"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// ListWordQuery selects word entries inside one vocabulary.
type ListWordQuery struct {
	VocabularyID int64
	// Types restricts the result to the given word types; nil means every type.
	Types []entity.WordType
	// Keyword matches case-insensitively against the word or any meaning.
	Keyword string
}

// WordRepository defines data access for word senses. Entries are grouped per word.
type WordRepository interface {
	InsertSenses(ctx context.Context, entry *entity.WordEntry) error
	Exists(ctx context.Context, vocabularyID int64, word string) (bool, error)
	GetEntry(ctx context.Context, vocabularyID int64, word string) (*entity.WordEntry, error)
	ListEntries(ctx context.Context, query ListWordQuery) ([]entity.WordEntry, error)
	DeleteSenses(ctx context.Context, vocabularyID int64, word string) (int64, error)
}
