package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/samber/lo"
)

type wordRepository struct {
	s *Store
}

// NewWordRepository constructs a sqlx-backed word repository.
func NewWordRepository(s *Store) repository.WordRepository {
	return &wordRepository{s: s}
}

type senseRow struct {
	ID           int64  `db:"id"`
	Word         string `db:"word"`
	POS          string `db:"pos"`
	Meaning      string `db:"meaning"`
	Type         string `db:"type"`
	VocabularyID int64  `db:"vocabulary_id"`
}

// InsertSenses writes one row per sense. Callers wrap it in a transaction for atomicity.
func (r *wordRepository) InsertSenses(ctx context.Context, entry *entity.WordEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	wordType := entry.Type
	if !wordType.Valid() {
		wordType = entity.WordTypeWord
	}
	for _, sense := range entry.Senses {
		_, err := r.s.exec(ctx,
			`INSERT INTO word_pos_meanings (word, pos, meaning, type, vocabulary_id) VALUES (?, ?, ?, ?, ?)`,
			entry.Word, sense.POS, sense.Meaning, string(wordType), entry.VocabularyID)
		if err != nil {
			return mapError("insert sense", err, nil, nil)
		}
	}
	return nil
}

func (r *wordRepository) Exists(ctx context.Context, vocabularyID int64, word string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var exists bool
	err := r.s.get(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM word_pos_meanings WHERE vocabulary_id = ? AND word = ?)`, vocabularyID, word)
	if err != nil {
		return false, mapError("check word", err, nil, nil)
	}
	return exists, nil
}

func (r *wordRepository) GetEntry(ctx context.Context, vocabularyID int64, word string) (*entity.WordEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []senseRow
	err := r.s.sel(ctx, &rows,
		`SELECT id, word, pos, meaning, type, vocabulary_id FROM word_pos_meanings
		WHERE vocabulary_id = ? AND word = ? ORDER BY id`, vocabularyID, word)
	if err != nil {
		return nil, mapError("get word", err, nil, nil)
	}
	entries := groupSenses(rows)
	if len(entries) == 0 {
		return nil, entity.ErrWordNotFound
	}
	return &entries[0], nil
}

func (r *wordRepository) ListEntries(ctx context.Context, query repository.ListWordQuery) ([]entity.WordEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	builder := sq.Select("id", "word", "pos", "meaning", "type", "vocabulary_id").
		From("word_pos_meanings").
		Where(sq.Eq{"vocabulary_id": query.VocabularyID}).
		OrderBy("id")
	if types := normalizeWordTypes(query.Types); len(types) > 0 {
		builder = builder.Where(sq.Eq{"type": types})
	}
	if keyword := strings.TrimSpace(query.Keyword); keyword != "" {
		builder = builder.Where(`word IN (SELECT word FROM word_pos_meanings
			WHERE vocabulary_id = ? AND (instr(lower(word), lower(?)) > 0 OR instr(lower(meaning), lower(?)) > 0))`,
			query.VocabularyID, keyword, keyword)
	}

	stmt, args, err := builder.ToSql()
	if err != nil {
		return nil, entity.NewStorageError("list words", err)
	}
	var rows []senseRow
	if err := r.s.sel(ctx, &rows, stmt, args...); err != nil {
		return nil, mapError("list words", err, nil, nil)
	}
	return groupSenses(rows), nil
}

func (r *wordRepository) DeleteSenses(ctx context.Context, vocabularyID int64, word string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := r.s.exec(ctx, `DELETE FROM word_pos_meanings WHERE vocabulary_id = ? AND word = ?`, vocabularyID, word)
	if err != nil {
		return 0, mapError("delete senses", err, nil, nil)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, entity.NewStorageError("delete senses", err)
	}
	return n, nil
}

// groupSenses folds sense rows into entries, keeping the order in which each word first appears.
func groupSenses(rows []senseRow) []entity.WordEntry {
	grouped := lo.GroupBy(rows, func(row senseRow) string { return row.Word })
	words := lo.Uniq(lo.Map(rows, func(row senseRow, _ int) string { return row.Word }))
	return lo.Map(words, func(word string, _ int) entity.WordEntry {
		senses := grouped[word]
		return entity.WordEntry{
			VocabularyID: senses[0].VocabularyID,
			Word:         word,
			Type:         entity.WordType(senses[0].Type),
			Senses: lo.Map(senses, func(row senseRow, _ int) entity.Sense {
				return entity.Sense{POS: row.POS, Meaning: row.Meaning}
			}),
		}
	})
}
