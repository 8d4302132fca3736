package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

type wrongWordRepository struct {
	s     *Store
	clock func() time.Time
}

// NewWrongWordRepository constructs a sqlx-backed wrong-word ledger.
func NewWrongWordRepository(s *Store) repository.WrongWordRepository {
	return &wrongWordRepository{s: s, clock: time.Now}
}

func selectWrongWords() sq.SelectBuilder {
	return sq.Select("ww.id", "ww.vocabulary_id", "v.name AS vocabulary_name", "ww.word", "ww.meaning",
		"ww.first_wrong_time", "ww.wrong_count").
		From("wrong_words ww").
		Join("vocabularies v ON v.id = ww.vocabulary_id")
}

func (r *wrongWordRepository) Upsert(ctx context.Context, vocabularyID int64, word, meaning string) (*entity.WrongWord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, err := r.s.exec(ctx,
		`INSERT INTO wrong_words (vocabulary_id, word, meaning, first_wrong_time, wrong_count) VALUES (?, ?, ?, ?, 1)
		ON CONFLICT(vocabulary_id, word) DO UPDATE SET meaning = excluded.meaning, wrong_count = wrong_words.wrong_count + 1`,
		vocabularyID, word, meaning, formatTimestamp(r.clock()))
	if err != nil {
		return nil, mapError("upsert wrong word", err, nil, nil)
	}
	return r.Get(ctx, vocabularyID, word)
}

func (r *wrongWordRepository) Get(ctx context.Context, vocabularyID int64, word string) (*entity.WrongWord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stmt, args, err := selectWrongWords().Where(sq.Eq{"ww.vocabulary_id": vocabularyID, "ww.word": word}).ToSql()
	if err != nil {
		return nil, entity.NewStorageError("get wrong word", err)
	}
	var ww entity.WrongWord
	if err := r.s.get(ctx, &ww, stmt, args...); err != nil {
		return nil, mapError("get wrong word", err, nil, entity.ErrWordNotFound)
	}
	return &ww, nil
}

func (r *wrongWordRepository) List(ctx context.Context, vocabularyID *int64) ([]*entity.WrongWord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	builder := selectWrongWords().OrderBy("ww.wrong_count DESC", "ww.first_wrong_time DESC", "ww.id")
	if vocabularyID != nil {
		builder = builder.Where(sq.Eq{"ww.vocabulary_id": *vocabularyID})
	}
	stmt, args, err := builder.ToSql()
	if err != nil {
		return nil, entity.NewStorageError("list wrong words", err)
	}

	var out []*entity.WrongWord
	if err := r.s.sel(ctx, &out, stmt, args...); err != nil {
		return nil, mapError("list wrong words", err, nil, nil)
	}
	return out, nil
}

func (r *wrongWordRepository) DeleteByWord(ctx context.Context, vocabularyID int64, word string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := r.s.exec(ctx, `DELETE FROM wrong_words WHERE vocabulary_id = ? AND word = ?`, vocabularyID, word); err != nil {
		return mapError("delete wrong word", err, nil, nil)
	}
	return nil
}

// Reassign moves the ledger entry; an entry already held by the target is replaced.
func (r *wrongWordRepository) Reassign(ctx context.Context, fromVocabularyID int64, oldWord string, toVocabularyID int64, newWord string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fromVocabularyID == toVocabularyID && oldWord == newWord {
		return nil
	}
	_, err := r.s.exec(ctx, `UPDATE OR REPLACE wrong_words SET vocabulary_id = ?, word = ? WHERE vocabulary_id = ? AND word = ?`,
		toVocabularyID, newWord, fromVocabularyID, oldWord)
	if err != nil {
		return mapError("reassign wrong word", err, nil, nil)
	}
	return nil
}

// RemoveWord deletes the word from the ledger of every vocabulary.
func (r *wrongWordRepository) RemoveWord(ctx context.Context, word string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := r.s.exec(ctx, `DELETE FROM wrong_words WHERE word = ?`, word)
	if err != nil {
		return 0, mapError("remove wrong word", err, nil, nil)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *wrongWordRepository) Clear(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := r.s.exec(ctx, `DELETE FROM wrong_words`)
	if err != nil {
		return 0, mapError("clear wrong words", err, nil, nil)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
