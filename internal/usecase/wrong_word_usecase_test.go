package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eslsoft/vocdrill/internal/entity"
)

func TestWrongWordUsecase(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewWrongWordUsecase(deps.wrongWords, deps.logger)
	ctx := context.Background()
	a := mustCreateVocabulary(t, deps.vocabularyUsecase(), "A")
	b := mustCreateVocabulary(t, deps.vocabularyUsecase(), "B")

	for _, vid := range []int64{a, b} {
		if _, err := deps.wrongWords.Upsert(ctx, vid, "cat", "猫"); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	if _, err := deps.wrongWords.Upsert(ctx, a, "dog", "狗"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := uc.RemoveWrongWord(ctx, " "); !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if err := uc.RemoveWrongWord(ctx, "cat"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := uc.RemoveWrongWord(ctx, "cat"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	list, err := uc.ListWrongWords(ctx, nil)
	if err != nil || len(list) != 1 || list[0].Word != "dog" {
		t.Fatalf("unexpected list: %v %+v", err, list)
	}

	n, err := uc.ClearAllWrongWords(ctx)
	if err != nil || n != 1 {
		t.Fatalf("clear: %v %d", err, n)
	}
}
