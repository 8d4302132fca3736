package repository

import (
	"context"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// VocabularyRepository defines data access for vocabularies.
type VocabularyRepository interface {
	Create(ctx context.Context, name string) (*entity.Vocabulary, error)
	GetByID(ctx context.Context, id int64) (*entity.Vocabulary, error)
	GetByName(ctx context.Context, name string) (*entity.Vocabulary, error)
	List(ctx context.Context) ([]*entity.Vocabulary, error)
	Delete(ctx context.Context, id int64) error
}
