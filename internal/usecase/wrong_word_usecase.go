package usecase

import (
	"context"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/sirupsen/logrus"
)

// WrongWordUsecase manages the wrong-word ledger.
type WrongWordUsecase interface {
	ListWrongWords(ctx context.Context, vocabularyID *int64) ([]*entity.WrongWord, error)
	// RemoveWrongWord drops word from the ledger of every vocabulary.
	RemoveWrongWord(ctx context.Context, word string) error
	ClearAllWrongWords(ctx context.Context) (int64, error)
}

// NewWrongWordUsecase wires the ledger repository.
func NewWrongWordUsecase(repo repository.WrongWordRepository, logger logrus.FieldLogger) WrongWordUsecase {
	return &wrongWordUsecase{repo: repo, logger: logger}
}

type wrongWordUsecase struct {
	repo   repository.WrongWordRepository
	logger logrus.FieldLogger
}

func (u *wrongWordUsecase) ListWrongWords(ctx context.Context, vocabularyID *int64) ([]*entity.WrongWord, error) {
	return u.repo.List(ctx, vocabularyID)
}

func (u *wrongWordUsecase) RemoveWrongWord(ctx context.Context, word string) error {
	word = entity.NormalizeName(word)
	if word == "" {
		return entity.ErrInvalidInput
	}
	n, err := u.repo.RemoveWord(ctx, word)
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrWordNotFound
	}
	u.logger.WithFields(logrus.Fields{"word": word, "rows": n}).Info("wrong word removed")
	return nil
}

func (u *wrongWordUsecase) ClearAllWrongWords(ctx context.Context) (int64, error) {
	n, err := u.repo.Clear(ctx)
	if err != nil {
		return 0, err
	}
	u.logger.WithField("rows", n).Info("wrong words cleared")
	return n, nil
}
