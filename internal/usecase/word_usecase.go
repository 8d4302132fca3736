package usecase

import (
	"context"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/sirupsen/logrus"
)

// WordUsecase encapsulates business logic for words and their senses.
type WordUsecase interface {
	AddWord(ctx context.Context, vocabularyID int64, word string, senses []entity.Sense, wordType entity.WordType) (*entity.WordEntry, error)
	UpdateWord(ctx context.Context, vocabularyID int64, oldWord, newWord string, senses []entity.Sense, wordType entity.WordType) (*entity.WordEntry, error)
	DeleteWord(ctx context.Context, vocabularyID int64, word string) error
	MoveWord(ctx context.Context, word string, fromVocabularyID, toVocabularyID int64) error
	CopyWord(ctx context.Context, word string, fromVocabularyID, toVocabularyID int64) error
	GetWord(ctx context.Context, vocabularyID int64, word string) (*entity.WordEntry, error)
	ListWords(ctx context.Context, vocabularyID int64) ([]entity.NumberedEntry, error)
	SearchWords(ctx context.Context, vocabularyID int64, query string) ([]entity.NumberedEntry, error)
}

// NewWordUsecase wires the repositories with default behaviour.
func NewWordUsecase(
	tx repository.TxManager,
	vocabularies repository.VocabularyRepository,
	words repository.WordRepository,
	records repository.StudyRecordRepository,
	wrongWords repository.WrongWordRepository,
	logger logrus.FieldLogger,
) WordUsecase {
	return &wordUsecase{
		tx:           tx,
		vocabularies: vocabularies,
		words:        words,
		records:      records,
		wrongWords:   wrongWords,
		logger:       logger,
	}
}

type wordUsecase struct {
	tx           repository.TxManager
	vocabularies repository.VocabularyRepository
	words        repository.WordRepository
	records      repository.StudyRecordRepository
	wrongWords   repository.WrongWordRepository
	logger       logrus.FieldLogger
}

func (u *wordUsecase) AddWord(ctx context.Context, vocabularyID int64, word string, senses []entity.Sense, wordType entity.WordType) (*entity.WordEntry, error) {
	entry, err := buildEntry(vocabularyID, word, senses, wordType)
	if err != nil {
		return nil, err
	}

	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := u.vocabularies.GetByID(ctx, vocabularyID); err != nil {
			return err
		}
		exists, err := u.words.Exists(ctx, vocabularyID, entry.Word)
		if err != nil {
			return err
		}
		if exists {
			return entity.ErrDuplicateWord
		}
		return u.words.InsertSenses(ctx, entry)
	})
	if err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{"vocabulary_id": vocabularyID, "word": entry.Word}).Warn("add word rejected")
		return nil, err
	}
	u.logger.WithFields(logrus.Fields{"vocabulary_id": vocabularyID, "word": entry.Word, "senses": len(entry.Senses)}).Debug("word added")
	return entry, nil
}

// UpdateWord replaces every sense of oldWord. A rename carries the word's study history
// and wrong-word entry along; renaming onto another existing word is rejected.
func (u *wordUsecase) UpdateWord(ctx context.Context, vocabularyID int64, oldWord, newWord string, senses []entity.Sense, wordType entity.WordType) (*entity.WordEntry, error) {
	oldWord = entity.NormalizeName(oldWord)
	entry, err := buildEntry(vocabularyID, newWord, senses, wordType)
	if err != nil {
		return nil, err
	}

	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := u.words.GetEntry(ctx, vocabularyID, oldWord); err != nil {
			return err
		}
		if entry.Word != oldWord {
			exists, err := u.words.Exists(ctx, vocabularyID, entry.Word)
			if err != nil {
				return err
			}
			if exists {
				return entity.ErrDuplicateWord
			}
		}
		if _, err := u.words.DeleteSenses(ctx, vocabularyID, oldWord); err != nil {
			return err
		}
		if err := u.words.InsertSenses(ctx, entry); err != nil {
			return err
		}
		if entry.Word == oldWord {
			return nil
		}
		if err := u.records.Reassign(ctx, vocabularyID, oldWord, vocabularyID, entry.Word); err != nil {
			return err
		}
		return u.wrongWords.Reassign(ctx, vocabularyID, oldWord, vocabularyID, entry.Word)
	})
	if err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{"vocabulary_id": vocabularyID, "word": oldWord}).Warn("update word rejected")
		return nil, err
	}
	u.logger.WithFields(logrus.Fields{"vocabulary_id": vocabularyID, "old_word": oldWord, "word": entry.Word}).Debug("word updated")
	return entry, nil
}

// DeleteWord removes the senses, study events and wrong-word entry of word together.
func (u *wordUsecase) DeleteWord(ctx context.Context, vocabularyID int64, word string) error {
	word = entity.NormalizeName(word)
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := u.words.DeleteSenses(ctx, vocabularyID, word)
		if err != nil {
			return err
		}
		if n == 0 {
			return entity.ErrWordNotFound
		}
		if err := u.records.DeleteByWord(ctx, vocabularyID, word); err != nil {
			return err
		}
		return u.wrongWords.DeleteByWord(ctx, vocabularyID, word)
	})
	if err != nil {
		return err
	}
	u.logger.WithFields(logrus.Fields{"vocabulary_id": vocabularyID, "word": word}).Debug("word deleted")
	return nil
}

// MoveWord copies the senses into the target and removes the word from the source in one
// transaction. The source's study events and wrong-word entry are deleted, not carried over.
func (u *wordUsecase) MoveWord(ctx context.Context, word string, fromVocabularyID, toVocabularyID int64) error {
	word = entity.NormalizeName(word)
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := u.transfer(ctx, word, fromVocabularyID, toVocabularyID); err != nil {
			return err
		}
		if _, err := u.words.DeleteSenses(ctx, fromVocabularyID, word); err != nil {
			return err
		}
		if err := u.records.DeleteByWord(ctx, fromVocabularyID, word); err != nil {
			return err
		}
		return u.wrongWords.DeleteByWord(ctx, fromVocabularyID, word)
	})
	if err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{"word": word, "from": fromVocabularyID, "to": toVocabularyID}).Warn("move word rejected")
		return err
	}
	u.logger.WithFields(logrus.Fields{"word": word, "from": fromVocabularyID, "to": toVocabularyID}).Info("word moved")
	return nil
}

// CopyWord duplicates the senses into the target and leaves the source untouched.
func (u *wordUsecase) CopyWord(ctx context.Context, word string, fromVocabularyID, toVocabularyID int64) error {
	word = entity.NormalizeName(word)
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		return u.transfer(ctx, word, fromVocabularyID, toVocabularyID)
	})
	if err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{"word": word, "from": fromVocabularyID, "to": toVocabularyID}).Warn("copy word rejected")
		return err
	}
	u.logger.WithFields(logrus.Fields{"word": word, "from": fromVocabularyID, "to": toVocabularyID}).Info("word copied")
	return nil
}

// transfer inserts the source senses of word into the target vocabulary.
func (u *wordUsecase) transfer(ctx context.Context, word string, fromVocabularyID, toVocabularyID int64) error {
	if word == "" || fromVocabularyID == toVocabularyID {
		return entity.ErrInvalidInput
	}
	if _, err := u.vocabularies.GetByID(ctx, toVocabularyID); err != nil {
		return err
	}
	exists, err := u.words.Exists(ctx, toVocabularyID, word)
	if err != nil {
		return err
	}
	if exists {
		return entity.ErrAlreadyExists
	}
	entry, err := u.words.GetEntry(ctx, fromVocabularyID, word)
	if err != nil {
		return err
	}
	moved := *entry
	moved.VocabularyID = toVocabularyID
	return u.words.InsertSenses(ctx, &moved)
}

func (u *wordUsecase) GetWord(ctx context.Context, vocabularyID int64, word string) (*entity.WordEntry, error) {
	return u.words.GetEntry(ctx, vocabularyID, entity.NormalizeName(word))
}

func (u *wordUsecase) ListWords(ctx context.Context, vocabularyID int64) ([]entity.NumberedEntry, error) {
	return u.SearchWords(ctx, vocabularyID, "")
}

// SearchWords matches query case-insensitively against words and meanings. Results are
// grouped per word and numbered from 1.
func (u *wordUsecase) SearchWords(ctx context.Context, vocabularyID int64, query string) ([]entity.NumberedEntry, error) {
	entries, err := u.words.ListEntries(ctx, repository.ListWordQuery{
		VocabularyID: vocabularyID,
		Keyword:      query,
	})
	if err != nil {
		return nil, err
	}
	return entity.NumberEntries(entries), nil
}

func buildEntry(vocabularyID int64, word string, senses []entity.Sense, wordType entity.WordType) (*entity.WordEntry, error) {
	word = entity.NormalizeName(word)
	if word == "" {
		return nil, entity.ErrInvalidInput
	}
	senses = entity.NormalizeSenses(senses)
	if len(senses) == 0 {
		return nil, entity.ErrInvalidInput
	}
	if wordType == "" {
		wordType = entity.WordTypeWord
	}
	if !wordType.Valid() {
		return nil, entity.ErrInvalidInput
	}
	return &entity.WordEntry{
		VocabularyID: vocabularyID,
		Word:         word,
		Type:         wordType,
		Senses:       senses,
	}, nil
}
