package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyRepositoryCRUD(t *testing.T) {
	s := newTestStore(t)
	repo := NewVocabularyRepository(s)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Demo")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = repo.Create(ctx, "Demo")
	assert.ErrorIs(t, err, entity.ErrDuplicateName)

	seedWord(t, s, created.ID, "cat", entity.WordTypeWord,
		entity.Sense{POS: "n.", Meaning: "猫"}, entity.Sense{POS: "v.", Meaning: "鞭打"})
	seedWord(t, s, created.ID, "dog", entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: "狗"})

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo", got.Name)
	assert.EqualValues(t, 2, got.WordCount)

	byName, err := repo.GetByName(ctx, " Demo ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, entity.ErrVocabularyNotFound))
}

func TestVocabularyDeleteCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	v := seedVocabulary(t, s, "Demo")
	seedWord(t, s, v.ID, "cat", entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: "猫"})
	require.NoError(t, NewStudyRecordRepository(s).Record(ctx, &entity.StudyEvent{
		VocabularyID: v.ID, Word: "cat", Mode: entity.StudyModeSpell,
	}))
	_, err := NewWrongWordRepository(s).Upsert(ctx, v.ID, "cat", "猫")
	require.NoError(t, err)

	require.NoError(t, NewVocabularyRepository(s).Delete(ctx, v.ID))

	for _, table := range []string{"word_pos_meanings", "study_records", "wrong_words"} {
		var n int
		require.NoError(t, s.db.Get(&n, "SELECT COUNT(*) FROM "+table+" WHERE vocabulary_id = ?", v.ID))
		assert.Zero(t, n, table)
	}
}

func TestMapErrorWrapsUnexpected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.db.Close())

	_, err := NewVocabularyRepository(s).List(ctx)
	var se *entity.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list vocabularies", se.Op)
}
