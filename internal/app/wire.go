//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdrill/internal/adapter/repository"
	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/eslsoft/vocdrill/internal/infrastructure/database"
	"github.com/eslsoft/vocdrill/internal/infrastructure/logging"
	repo "github.com/eslsoft/vocdrill/internal/repository"
	"github.com/eslsoft/vocdrill/internal/usecase"
	"github.com/eslsoft/vocdrill/internal/usecase/quiz"
)

var configSet = wire.NewSet(
	config.Load,
)

var loggingSet = wire.NewSet(
	logging.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
)

var databaseSet = wire.NewSet(
	database.NewConnection,
	repository.NewStore,
	repository.NewTxManager,
	wire.Bind(new(repo.TxManager), new(*repository.TxManager)),
)

var repositorySet = wire.NewSet(
	repository.NewVocabularyRepository,
	repository.NewWordRepository,
	repository.NewStudyRecordRepository,
	repository.NewWrongWordRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewVocabularyUsecase,
	usecase.NewWordUsecase,
	usecase.NewStatsUsecase,
	usecase.NewWrongWordUsecase,
	provideExporter,
	provideEngine,
	quiz.NewRunner,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		loggingSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
