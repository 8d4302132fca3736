package repository

import (
	"context"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// StatsQuery filters aggregated study views.
type StatsQuery struct {
	// VocabularyID restricts the view to one vocabulary when non-nil.
	VocabularyID *int64
	Limit
}

// StudyRecordRepository defines data access for the append-only study log.
type StudyRecordRepository interface {
	Record(ctx context.Context, event *entity.StudyEvent) error
	DeleteByWord(ctx context.Context, vocabularyID int64, word string) error
	// Reassign re-points the history of a word, used by rename and move.
	Reassign(ctx context.Context, fromVocabularyID int64, oldWord string, toVocabularyID int64, newWord string) error
	Daily(ctx context.Context, query StatsQuery) ([]entity.StatRow, error)
	Weekly(ctx context.Context, query StatsQuery) ([]entity.StatRow, error)
	DetailedByMode(ctx context.Context, query StatsQuery) ([]entity.StatRow, error)
}

// WrongWordRepository defines data access for the wrong-word ledger.
type WrongWordRepository interface {
	// Upsert creates the entry with count 1 or increments it and overwrites the meaning.
	Upsert(ctx context.Context, vocabularyID int64, word, meaning string) (*entity.WrongWord, error)
	Get(ctx context.Context, vocabularyID int64, word string) (*entity.WrongWord, error)
	List(ctx context.Context, vocabularyID *int64) ([]*entity.WrongWord, error)
	DeleteByWord(ctx context.Context, vocabularyID int64, word string) error
	Reassign(ctx context.Context, fromVocabularyID int64, oldWord string, toVocabularyID int64, newWord string) error
	RemoveWord(ctx context.Context, word string) (int64, error)
	Clear(ctx context.Context) (int64, error)
}
