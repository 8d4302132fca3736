package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

func TestRecognizeDemoScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	demo := f.vocabulary(t, "Demo")
	f.word(t, demo, "cat", entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: "猫"})

	s := NewSession()
	if err := f.engine.Start(ctx, s, Config{VocabularyID: demo, Mode: entity.StudyModeRecognize, Types: []entity.WordType{entity.WordTypeWord}}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State != StateRunning || s.TotalCount != 1 || s.CurrentIndex != 0 {
		t.Fatalf("unexpected session: %+v", s)
	}
	if s.Current.Prompt() != "cat" || s.Current.Display != "n. 猫" {
		t.Fatalf("unexpected question: %+v", s.Current)
	}

	res, err := f.engine.Submit(ctx, s, Answer{Known: true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct || !res.Complete || res.Next != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Summary != (Summary{TotalCount: 1, CorrectCount: 1, Accuracy: 100}) {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
	if s.State != StateComplete {
		t.Fatalf("expected complete, got %s", s.State)
	}

	total, correct := f.eventCount(t, demo)
	if total != 1 || correct != 1 {
		t.Fatalf("expected one correct event, got %d/%d", correct, total)
	}
	wrong, err := f.wrongWords.List(ctx, &demo)
	if err != nil || len(wrong) != 0 {
		t.Fatalf("expected no wrong words: %v %d", err, len(wrong))
	}

	// restart from Complete and answer unknown
	if err := f.engine.Start(ctx, s, Config{VocabularyID: demo, Mode: entity.StudyModeRecognize, Types: bothTypes}); err != nil {
		t.Fatalf("restart: %v", err)
	}
	res, err = f.engine.Submit(ctx, s, Answer{Known: false})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct || res.Summary.Accuracy != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	ww, err := f.wrongWords.Get(ctx, demo, "cat")
	if err != nil {
		t.Fatalf("get wrong word: %v", err)
	}
	if ww.WrongCount != 1 || ww.Meaning != "猫" {
		t.Fatalf("unexpected wrong word: %+v", ww)
	}
}

func TestSpellMode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.vocabulary(t, "Fruit")
	f.word(t, id, "apple", entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: "苹果"})

	s := NewSession()
	cfg := Config{VocabularyID: id, Mode: entity.StudyModeSpell, Types: bothTypes}
	if err := f.engine.Start(ctx, s, cfg); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Current.Prompt() != "苹果" || s.Current.Expected() != "apple" {
		t.Fatalf("spell prompt must show the meaning: %+v", s.Current)
	}
	res, err := f.engine.Submit(ctx, s, Answer{Text: "Apple"})
	if err != nil || !res.Correct {
		t.Fatalf("expected correct spelling: %v %+v", err, res)
	}

	if err := f.engine.Start(ctx, s, cfg); err != nil {
		t.Fatalf("start: %v", err)
	}
	res, err = f.engine.Submit(ctx, s, Answer{Text: "Appl"})
	if err != nil || res.Correct {
		t.Fatalf("expected incorrect spelling: %v %+v", err, res)
	}
	if _, err := f.wrongWords.Get(ctx, id, "apple"); err != nil {
		t.Fatalf("expected wrong word entry: %v", err)
	}
}

func TestWrongWordCountAndLatestMeaning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.vocabulary(t, "Demo")
	f.word(t, id, "cat", entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: "猫"})
	cfg := Config{VocabularyID: id, Mode: entity.StudyModeRecognize, Types: bothTypes}

	s := NewSession()
	if err := f.engine.Start(ctx, s, cfg); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.engine.Submit(ctx, s, Answer{}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := f.words.DeleteSenses(ctx, id, "cat"); err != nil {
		t.Fatalf("delete senses: %v", err)
	}
	f.word(t, id, "cat", entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: "猫咪"})

	if err := f.engine.Start(ctx, s, cfg); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.engine.Submit(ctx, s, Answer{}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	ww, err := f.wrongWords.Get(ctx, id, "cat")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ww.WrongCount != 2 || ww.Meaning != "猫咪" {
		t.Fatalf("expected count 2 with latest meaning, got %+v", ww)
	}
}

func TestSessionTotalsAndProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.vocabulary(t, "Demo")
	f.word(t, id, "cat", entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: "猫"})
	f.word(t, id, "dog", entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: "狗"})
	f.word(t, id, "look after", entity.WordTypePhrase, entity.Sense{Meaning: "照顾"})

	var progress []Progress
	f.engine.OnProgress(func(p Progress) { progress = append(progress, p) })

	s := NewSession()
	if err := f.engine.Start(ctx, s, Config{VocabularyID: id, Mode: entity.StudyModeRecognize, Types: bothTypes}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.TotalCount != 3 {
		t.Fatalf("expected total 3, got %d", s.TotalCount)
	}

	answers := []bool{true, false, true}
	for i, known := range answers {
		res, err := f.engine.Submit(ctx, s, Answer{Known: known})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if last := i == len(answers)-1; res.Complete != last {
			t.Fatalf("answer %d: complete=%v", i, res.Complete)
		}
	}
	if s.CurrentIndex != 3 || s.CorrectCount != 2 || s.State != StateComplete {
		t.Fatalf("unexpected session: %+v", s)
	}
	if got := s.Summary().Accuracy; got != 66.67 {
		t.Fatalf("unexpected accuracy %v", got)
	}
	if _, err := f.engine.Submit(ctx, s, Answer{Known: true}); !errors.Is(err, entity.ErrSessionNotRunning) {
		t.Fatalf("expected session not running, got %v", err)
	}

	want := []Progress{{0, 3}, {1, 3}, {2, 3}, {3, 3}}
	if len(progress) != len(want) {
		t.Fatalf("expected %d progress events, got %v", len(want), progress)
	}
	for i := range want {
		if progress[i] != want[i] {
			t.Fatalf("progress[%d] = %+v, want %+v", i, progress[i], want[i])
		}
	}

	total, correct := f.eventCount(t, id)
	if total != 3 || correct != 2 {
		t.Fatalf("expected 3 events with 2 correct, got %d/%d", total, correct)
	}
}

func TestStartEmptyPool(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.vocabulary(t, "Empty")
	s := NewSession()

	if err := f.engine.Start(ctx, s, Config{VocabularyID: id, Mode: entity.StudyModeChoice, Types: bothTypes}); !errors.Is(err, entity.ErrEmptyPool) {
		t.Fatalf("expected empty pool, got %v", err)
	}
	if s.State != StateIdle {
		t.Fatalf("session must stay idle, got %s", s.State)
	}

	f.word(t, id, "cat", entity.WordTypeWord, entity.Sense{Meaning: "猫"})
	if err := f.engine.Start(ctx, s, Config{VocabularyID: id, Mode: entity.StudyModeChoice, Types: []entity.WordType{entity.WordTypePhrase}}); !errors.Is(err, entity.ErrEmptyPool) {
		t.Fatalf("expected empty pool for phrase filter, got %v", err)
	}
	if err := f.engine.Start(ctx, s, Config{VocabularyID: id, Mode: entity.StudyModeChoice}); !errors.Is(err, entity.ErrEmptyPool) {
		t.Fatalf("expected empty pool for empty filter, got %v", err)
	}
	if err := f.engine.Start(ctx, s, Config{Mode: entity.StudyModeChoice, Types: bothTypes}); !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if err := f.engine.Start(ctx, s, Config{VocabularyID: id, Mode: "listen", Types: bothTypes}); !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown mode, got %v", err)
	}
}

func TestTypeFilterUsesOr(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.vocabulary(t, "Mixed")
	f.word(t, id, "cat", entity.WordTypeWord, entity.Sense{Meaning: "猫"})
	f.word(t, id, "look after", entity.WordTypePhrase, entity.Sense{Meaning: "照顾"})

	s := NewSession()
	if err := f.engine.Start(ctx, s, Config{VocabularyID: id, Mode: entity.StudyModeRecognize, Types: []entity.WordType{entity.WordTypePhrase}}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.TotalCount != 1 || s.Current.Word != "look after" {
		t.Fatalf("unexpected phrase pool: %+v", s)
	}
	if err := f.engine.Start(ctx, s, Config{VocabularyID: id, Mode: entity.StudyModeRecognize, Types: bothTypes}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.TotalCount != 2 {
		t.Fatalf("expected both types, got %d", s.TotalCount)
	}
}

func TestChoiceMode(t *testing.T) {
	f := newFixture(t, WithChoiceOptions(4))
	ctx := context.Background()
	id := f.vocabulary(t, "Animals")
	for _, w := range []struct{ word, meaning string }{
		{"cat", "猫"}, {"dog", "狗"}, {"bird", "鸟"}, {"fish", "鱼"}, {"cow", "牛"},
	} {
		f.word(t, id, w.word, entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: w.meaning})
	}

	s := NewSession()
	if err := f.engine.Start(ctx, s, Config{VocabularyID: id, Mode: entity.StudyModeChoice, Types: bothTypes}); err != nil {
		t.Fatalf("start: %v", err)
	}
	q := *s.Current
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %v", q.Options)
	}
	found := false
	for _, o := range q.Options {
		if o == q.Meaning {
			found = true
		}
	}
	if !found {
		t.Fatalf("correct meaning %q not offered: %v", q.Meaning, q.Options)
	}

	res, err := f.engine.Submit(ctx, s, Answer{Text: q.Meaning})
	if err != nil || !res.Correct {
		t.Fatalf("expected correct choice: %v %+v", err, res)
	}
	if res.Next == nil || len(res.Next.Options) != 4 {
		t.Fatalf("expected next choice question: %+v", res.Next)
	}

	wrongPick := ""
	for _, o := range res.Next.Options {
		if o != res.Next.Meaning {
			wrongPick = o
			break
		}
	}
	res, err = f.engine.Submit(ctx, s, Answer{Text: wrongPick})
	if err != nil || res.Correct {
		t.Fatalf("expected incorrect choice: %v %+v", err, res)
	}
}

type failingRecords struct {
	repository.StudyRecordRepository
}

func (failingRecords) Record(context.Context, *entity.StudyEvent) error {
	return &entity.StorageError{Op: "record study event", Err: errors.New("disk I/O error")}
}

func TestSubmitFailureKeepsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.vocabulary(t, "Demo")
	f.word(t, id, "cat", entity.WordTypeWord, entity.Sense{Meaning: "猫"})

	engine := NewEngine(f.tx, f.words, failingRecords{f.records}, f.wrongWords, f.logger)
	s := NewSession()
	if err := engine.Start(ctx, s, Config{VocabularyID: id, Mode: entity.StudyModeRecognize, Types: bothTypes}); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err := engine.Submit(ctx, s, Answer{Known: false})
	var se *entity.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if s.CurrentIndex != 0 || s.State != StateRunning {
		t.Fatalf("session must be unchanged: %+v", s)
	}
	if _, err := f.wrongWords.Get(ctx, id, "cat"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("wrong word must not be written, got %v", err)
	}
}

func TestSubmitUsesClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.vocabulary(t, "Demo")
	f.word(t, id, "cat", entity.WordTypeWord, entity.Sense{Meaning: "猫"})
	f.engine.clock = func() time.Time { return time.Date(2023, 12, 31, 23, 0, 0, 0, time.Local) }

	s := NewSession()
	if err := f.engine.Start(ctx, s, Config{VocabularyID: id, Mode: entity.StudyModeRecognize, Types: bothTypes}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.engine.Submit(ctx, s, Answer{Known: true}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	rows, err := f.records.Daily(ctx, repository.StatsQuery{VocabularyID: &id})
	if err != nil || len(rows) != 1 || rows[0].Period != "2023-12-31" {
		t.Fatalf("unexpected daily rows: %v %+v", err, rows)
	}
}

func TestOnProgressUnsubscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.vocabulary(t, "Demo")
	f.word(t, id, "cat", entity.WordTypeWord, entity.Sense{POS: "n.", Meaning: "猫"})

	var first, second int
	unsubscribe := f.engine.OnProgress(func(Progress) { first++ })
	f.engine.OnProgress(func(Progress) { second++ })

	cfg := Config{VocabularyID: id, Mode: entity.StudyModeRecognize, Types: bothTypes}
	if err := f.engine.Start(ctx, NewSession(), cfg); err != nil {
		t.Fatalf("start: %v", err)
	}
	unsubscribe()
	unsubscribe()
	if err := f.engine.Start(ctx, NewSession(), cfg); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("unexpected notifications: first=%d second=%d", first, second)
	}
}
