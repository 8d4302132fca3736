package app

import (
	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/eslsoft/vocdrill/internal/usecase/export"
	"github.com/eslsoft/vocdrill/internal/usecase/quiz"
	"github.com/sirupsen/logrus"
)

func provideEngine(
	cfg *config.Config,
	tx repository.TxManager,
	words repository.WordRepository,
	records repository.StudyRecordRepository,
	wrongWords repository.WrongWordRepository,
	logger logrus.FieldLogger,
) *quiz.Engine {
	return quiz.NewEngine(tx, words, records, wrongWords, logger, quiz.WithChoiceOptions(cfg.Study.ChoiceOptions))
}

func provideExporter(vocabularies repository.VocabularyRepository, words repository.WordRepository) *export.Service {
	return export.NewService(vocabularies, words)
}
