package app

import (
	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/eslsoft/vocdrill/internal/usecase"
	"github.com/eslsoft/vocdrill/internal/usecase/export"
	"github.com/eslsoft/vocdrill/internal/usecase/quiz"
	"github.com/sirupsen/logrus"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config       *config.Config
	Logger       *logrus.Logger
	Vocabularies usecase.VocabularyUsecase
	Words        usecase.WordUsecase
	Stats        usecase.StatsUsecase
	WrongWords   usecase.WrongWordUsecase
	Exporter     *export.Service
	Engine       *quiz.Engine
	Runner       *quiz.Runner
}
