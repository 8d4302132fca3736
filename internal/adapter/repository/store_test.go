package repository

import (
	"context"
	"testing"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/infrastructure/database"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(":memory:?_foreign_keys=on&_loc=auto")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = database.Migrate(context.Background(), db)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return NewStore(db, nil, logger)
}

func seedVocabulary(t *testing.T, s *Store, name string) *entity.Vocabulary {
	t.Helper()
	v, err := NewVocabularyRepository(s).Create(context.Background(), name)
	require.NoError(t, err)
	return v
}

func seedWord(t *testing.T, s *Store, vocabularyID int64, word string, wordType entity.WordType, senses ...entity.Sense) {
	t.Helper()
	err := NewWordRepository(s).InsertSenses(context.Background(), &entity.WordEntry{
		VocabularyID: vocabularyID,
		Word:         word,
		Type:         wordType,
		Senses:       senses,
	})
	require.NoError(t, err)
}
