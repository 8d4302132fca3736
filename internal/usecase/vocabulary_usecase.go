package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/sirupsen/logrus"
)

// VocabularyUsecase manages named vocabularies.
type VocabularyUsecase interface {
	CreateVocabulary(ctx context.Context, name string) (*entity.Vocabulary, error)
	GetVocabulary(ctx context.Context, id int64) (*entity.Vocabulary, error)
	// ResolveVocabulary accepts either a numeric id or an exact name.
	ResolveVocabulary(ctx context.Context, ref string) (*entity.Vocabulary, error)
	ListVocabularies(ctx context.Context) ([]*entity.Vocabulary, error)
	DeleteVocabulary(ctx context.Context, id int64) error
}

// NewVocabularyUsecase wires the repository with default behaviour.
func NewVocabularyUsecase(repo repository.VocabularyRepository, logger logrus.FieldLogger) VocabularyUsecase {
	return &vocabularyUsecase{repo: repo, logger: logger}
}

type vocabularyUsecase struct {
	repo   repository.VocabularyRepository
	logger logrus.FieldLogger
}

func (u *vocabularyUsecase) CreateVocabulary(ctx context.Context, name string) (*entity.Vocabulary, error) {
	name = entity.NormalizeName(name)
	if name == "" {
		return nil, entity.ErrInvalidInput
	}
	v, err := u.repo.Create(ctx, name)
	if err != nil {
		u.logger.WithError(err).WithField("name", name).Warn("create vocabulary rejected")
		return nil, err
	}
	u.logger.WithFields(logrus.Fields{"vocabulary_id": v.ID, "name": v.Name}).Info("vocabulary created")
	return v, nil
}

func (u *vocabularyUsecase) GetVocabulary(ctx context.Context, id int64) (*entity.Vocabulary, error) {
	if id <= 0 {
		return nil, entity.ErrVocabularyNotFound
	}
	return u.repo.GetByID(ctx, id)
}

func (u *vocabularyUsecase) ResolveVocabulary(ctx context.Context, ref string) (*entity.Vocabulary, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, entity.ErrInvalidInput
	}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if v, err := u.repo.GetByID(ctx, id); err == nil {
			return v, nil
		}
	}
	return u.repo.GetByName(ctx, ref)
}

func (u *vocabularyUsecase) ListVocabularies(ctx context.Context) ([]*entity.Vocabulary, error) {
	return u.repo.List(ctx)
}

// DeleteVocabulary removes the vocabulary; its senses, study events and wrong-word rows
// cascade. Deleting an unknown id is a no-op.
func (u *vocabularyUsecase) DeleteVocabulary(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.WithField("vocabulary_id", id).Info("vocabulary deleted")
	return nil
}
