package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

type studyRecordRepository struct {
	s *Store
}

// NewStudyRecordRepository constructs a sqlx-backed study log repository.
func NewStudyRecordRepository(s *Store) repository.StudyRecordRepository {
	return &studyRecordRepository{s: s}
}

func (r *studyRecordRepository) Record(ctx context.Context, event *entity.StudyEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := r.s.exec(ctx,
		`INSERT INTO study_records (vocabulary_id, word, is_correct, study_mode, timestamp) VALUES (?, ?, ?, ?, ?)`,
		event.VocabularyID, event.Word, event.IsCorrect, string(event.Mode), formatTimestamp(event.Timestamp))
	if err != nil {
		return mapError("record study event", err, nil, nil)
	}
	if id, err := res.LastInsertId(); err == nil {
		event.ID = id
	}
	return nil
}

func (r *studyRecordRepository) DeleteByWord(ctx context.Context, vocabularyID int64, word string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := r.s.exec(ctx, `DELETE FROM study_records WHERE vocabulary_id = ? AND word = ?`, vocabularyID, word); err != nil {
		return mapError("delete study records", err, nil, nil)
	}
	return nil
}

func (r *studyRecordRepository) Reassign(ctx context.Context, fromVocabularyID int64, oldWord string, toVocabularyID int64, newWord string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := r.s.exec(ctx, `UPDATE study_records SET vocabulary_id = ?, word = ? WHERE vocabulary_id = ? AND word = ?`,
		toVocabularyID, newWord, fromVocabularyID, oldWord)
	if err != nil {
		return mapError("reassign study records", err, nil, nil)
	}
	return nil
}

func (r *studyRecordRepository) Daily(ctx context.Context, query repository.StatsQuery) ([]entity.StatRow, error) {
	return r.aggregate(ctx, "daily stats", "date(timestamp)", false, query)
}

func (r *studyRecordRepository) Weekly(ctx context.Context, query repository.StatsQuery) ([]entity.StatRow, error) {
	return r.aggregate(ctx, "weekly stats", "strftime('%Y-W%W', timestamp)", false, query)
}

func (r *studyRecordRepository) DetailedByMode(ctx context.Context, query repository.StatsQuery) ([]entity.StatRow, error) {
	return r.aggregate(ctx, "detailed stats", "date(timestamp)", true, query)
}

func (r *studyRecordRepository) aggregate(ctx context.Context, op, period string, byMode bool, query repository.StatsQuery) ([]entity.StatRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cols := []string{
		period + " AS period",
		"COUNT(*) AS total",
		"COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS correct",
	}
	group := []string{"period"}
	order := []string{"period DESC"}
	if byMode {
		cols = append(cols, "study_mode")
		group = append(group, "study_mode")
		order = append(order, "study_mode")
	}

	builder := sq.Select(cols...).From("study_records").GroupBy(group...).OrderBy(order...)
	if query.VocabularyID != nil {
		builder = builder.Where(sq.Eq{"vocabulary_id": *query.VocabularyID})
	}
	if query.Limit.Limit > 0 {
		builder = builder.Limit(uint64(query.Limit.Limit))
	}
	stmt, args, err := builder.ToSql()
	if err != nil {
		return nil, entity.NewStorageError(op, err)
	}

	var rows []entity.StatRow
	if err := r.s.sel(ctx, &rows, stmt, args...); err != nil {
		return nil, mapError(op, err, nil, nil)
	}
	for i := range rows {
		rows[i].Accuracy = entity.Accuracy(rows[i].Correct, rows[i].Total)
	}
	return rows, nil
}
