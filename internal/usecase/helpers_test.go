package usecase

import (
	"context"
	"io"
	"testing"

	sqlrepo "github.com/eslsoft/vocdrill/internal/adapter/repository"
	"github.com/eslsoft/vocdrill/internal/infrastructure/database"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/sirupsen/logrus"
)

type testDeps struct {
	tx           repository.TxManager
	vocabularies repository.VocabularyRepository
	words        repository.WordRepository
	records      repository.StudyRecordRepository
	wrongWords   repository.WrongWordRepository
	logger       logrus.FieldLogger
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	db, err := database.Open(":memory:?_foreign_keys=on&_loc=auto")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := sqlrepo.NewStore(db, nil, logger)
	return &testDeps{
		tx:           sqlrepo.NewTxManager(store),
		vocabularies: sqlrepo.NewVocabularyRepository(store),
		words:        sqlrepo.NewWordRepository(store),
		records:      sqlrepo.NewStudyRecordRepository(store),
		wrongWords:   sqlrepo.NewWrongWordRepository(store),
		logger:       logger,
	}
}

func (d *testDeps) vocabularyUsecase() VocabularyUsecase {
	return NewVocabularyUsecase(d.vocabularies, d.logger)
}

func (d *testDeps) wordUsecase() WordUsecase {
	return NewWordUsecase(d.tx, d.vocabularies, d.words, d.records, d.wrongWords, d.logger)
}

func mustCreateVocabulary(t *testing.T, uc VocabularyUsecase, name string) int64 {
	t.Helper()
	v, err := uc.CreateVocabulary(context.Background(), name)
	if err != nil {
		t.Fatalf("create vocabulary %q: %v", name, err)
	}
	return v.ID
}
