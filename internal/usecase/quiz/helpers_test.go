package quiz

import (
	"context"
	"io"
	"math/rand"
	"testing"

	sqlrepo "github.com/eslsoft/vocdrill/internal/adapter/repository"
	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/infrastructure/database"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/sirupsen/logrus"
)

type fixture struct {
	engine       *Engine
	tx           repository.TxManager
	vocabularies repository.VocabularyRepository
	words        repository.WordRepository
	records      repository.StudyRecordRepository
	wrongWords   repository.WrongWordRepository
	logger       logrus.FieldLogger
}

func newFixture(t *testing.T, opts ...Option) *fixture {
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
	f := &fixture{
		tx:           sqlrepo.NewTxManager(store),
		vocabularies: sqlrepo.NewVocabularyRepository(store),
		words:        sqlrepo.NewWordRepository(store),
		records:      sqlrepo.NewStudyRecordRepository(store),
		wrongWords:   sqlrepo.NewWrongWordRepository(store),
		logger:       logger,
	}
	opts = append([]Option{WithRand(rand.New(rand.NewSource(7)))}, opts...)
	f.engine = NewEngine(f.tx, f.words, f.records, f.wrongWords, logger, opts...)
	return f
}

func (f *fixture) vocabulary(t *testing.T, name string) int64 {
	t.Helper()
	v, err := f.vocabularies.Create(context.Background(), name)
	if err != nil {
		t.Fatalf("create vocabulary: %v", err)
	}
	return v.ID
}

func (f *fixture) word(t *testing.T, vocabularyID int64, word string, wordType entity.WordType, senses ...entity.Sense) {
	t.Helper()
	err := f.words.InsertSenses(context.Background(), &entity.WordEntry{
		VocabularyID: vocabularyID,
		Word:         word,
		Type:         wordType,
		Senses:       senses,
	})
	if err != nil {
		t.Fatalf("insert %s: %v", word, err)
	}
}

func (f *fixture) eventCount(t *testing.T, vocabularyID int64) (total, correct int64) {
	t.Helper()
	rows, err := f.records.Daily(context.Background(), repository.StatsQuery{VocabularyID: &vocabularyID})
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	for _, r := range rows {
		total += r.Total
		correct += r.Correct
	}
	return total, correct
}

var bothTypes = []entity.WordType{entity.WordTypeWord, entity.WordTypePhrase}
