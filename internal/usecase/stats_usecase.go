package usecase

import (
	"context"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

// DefaultWeeklyLimit caps the weekly view to the most recent periods.
const DefaultWeeklyLimit = 8

// StatsUsecase exposes aggregated views over the study log.
type StatsUsecase interface {
	DailyStats(ctx context.Context, vocabularyID *int64) ([]entity.StatRow, error)
	WeeklyStats(ctx context.Context, vocabularyID *int64, limit int) ([]entity.StatRow, error)
	DetailedStatsByMode(ctx context.Context, vocabularyID *int64) ([]entity.StatRow, error)
}

// NewStatsUsecase wires the study log repository.
func NewStatsUsecase(records repository.StudyRecordRepository) StatsUsecase {
	return &statsUsecase{records: records}
}

type statsUsecase struct {
	records repository.StudyRecordRepository
}

func (u *statsUsecase) DailyStats(ctx context.Context, vocabularyID *int64) ([]entity.StatRow, error) {
	return u.records.Daily(ctx, repository.StatsQuery{VocabularyID: vocabularyID})
}

// WeeklyStats returns at most limit year-week periods, newest first. A non-positive limit
// falls back to DefaultWeeklyLimit.
func (u *statsUsecase) WeeklyStats(ctx context.Context, vocabularyID *int64, limit int) ([]entity.StatRow, error) {
	if limit <= 0 {
		limit = DefaultWeeklyLimit
	}
	return u.records.Weekly(ctx, repository.StatsQuery{VocabularyID: vocabularyID, Limit: repository.Limit{Limit: limit}})
}

func (u *statsUsecase) DetailedStatsByMode(ctx context.Context, vocabularyID *int64) ([]entity.StatRow, error) {
	return u.records.DetailedByMode(ctx, repository.StatsQuery{VocabularyID: vocabularyID})
}
