package repository

import (
	"context"
	"strings"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

type vocabularyRepository struct {
	s *Store
}

// NewVocabularyRepository constructs a sqlx-backed vocabulary repository.
func NewVocabularyRepository(s *Store) repository.VocabularyRepository {
	return &vocabularyRepository{s: s}
}

const selectVocabulary = `SELECT v.id, v.name,
	(SELECT COUNT(DISTINCT w.word) FROM word_pos_meanings w WHERE w.vocabulary_id = v.id) AS word_count
	FROM vocabularies v`

func (r *vocabularyRepository) Create(ctx context.Context, name string) (*entity.Vocabulary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := r.s.exec(ctx, `INSERT INTO vocabularies (name) VALUES (?)`, name)
	if err != nil {
		return nil, mapError("create vocabulary", err, entity.ErrDuplicateName, nil)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, entity.NewStorageError("create vocabulary", err)
	}
	return &entity.Vocabulary{ID: id, Name: name}, nil
}

func (r *vocabularyRepository) GetByID(ctx context.Context, id int64) (*entity.Vocabulary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var v entity.Vocabulary
	if err := r.s.get(ctx, &v, selectVocabulary+` WHERE v.id = ?`, id); err != nil {
		return nil, mapError("get vocabulary", err, nil, entity.ErrVocabularyNotFound)
	}
	return &v, nil
}

func (r *vocabularyRepository) GetByName(ctx context.Context, name string) (*entity.Vocabulary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var v entity.Vocabulary
	if err := r.s.get(ctx, &v, selectVocabulary+` WHERE v.name = ?`, strings.TrimSpace(name)); err != nil {
		return nil, mapError("get vocabulary", err, nil, entity.ErrVocabularyNotFound)
	}
	return &v, nil
}

func (r *vocabularyRepository) List(ctx context.Context) ([]*entity.Vocabulary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*entity.Vocabulary
	if err := r.s.sel(ctx, &out, selectVocabulary+` ORDER BY v.id`); err != nil {
		return nil, mapError("list vocabularies", err, nil, nil)
	}
	return out, nil
}

func (r *vocabularyRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := r.s.exec(ctx, `DELETE FROM vocabularies WHERE id = ?`, id); err != nil {
		return mapError("delete vocabulary", err, nil, nil)
	}
	return nil
}
