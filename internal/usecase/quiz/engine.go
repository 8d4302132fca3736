package quiz

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// DefaultChoiceOptions is the number of options shown in choice mode.
const DefaultChoiceOptions = 4

// Config selects the pool of a study run.
type Config struct {
	VocabularyID int64
	Mode         entity.StudyMode
	// Types is combined with OR; an empty filter selects nothing.
	Types []entity.WordType
}

// Engine drives study sessions: it draws questions, checks answers and records results.
type Engine struct {
	tx            repository.TxManager
	words         repository.WordRepository
	records       repository.StudyRecordRepository
	wrongWords    repository.WrongWordRepository
	logger        logrus.FieldLogger
	rng           *rand.Rand
	clock         func() time.Time
	choiceOptions int

	obsMu     sync.Mutex
	observers []progressObserver
	nextObsID uint64
}

type progressObserver struct {
	id uint64
	fn func(Progress)
}

type Option func(*Engine)

// WithRand replaces the random source, mainly for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithChoiceOptions sets how many options a choice question shows.
func WithChoiceOptions(n int) Option {
	return func(e *Engine) {
		if n >= 2 {
			e.choiceOptions = n
		}
	}
}

// NewEngine wires the repositories used by study sessions.
func NewEngine(
	tx repository.TxManager,
	words repository.WordRepository,
	records repository.StudyRecordRepository,
	wrongWords repository.WrongWordRepository,
	logger logrus.FieldLogger,
	opts ...Option,
) *Engine {
	e := &Engine{
		tx:            tx,
		words:         words,
		records:       records,
		wrongWords:    wrongWords,
		logger:        logger,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:         time.Now,
		choiceOptions: DefaultChoiceOptions,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnProgress registers fn to be called after a run starts and after every answer. The
// returned func removes it again.
func (e *Engine) OnProgress(fn func(Progress)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	e.obsMu.Lock()
	defer e.obsMu.Unlock()
	e.nextObsID++
	id := e.nextObsID
	e.observers = append(e.observers, progressObserver{id: id, fn: fn})
	return func() {
		e.obsMu.Lock()
		defer e.obsMu.Unlock()
		e.observers = lo.Reject(e.observers, func(o progressObserver, _ int) bool { return o.id == id })
	}
}

func (e *Engine) emit(s *Session) {
	p := s.Progress()
	e.obsMu.Lock()
	observers := append([]progressObserver(nil), e.observers...)
	e.obsMu.Unlock()
	for _, o := range observers {
		o.fn(p)
	}
}

// Start loads the pool and draws the first question. On any error s is left idle.
func (e *Engine) Start(ctx context.Context, s *Session, cfg Config) error {
	s.reset()
	if cfg.VocabularyID <= 0 || !cfg.Mode.Valid() {
		return entity.ErrInvalidInput
	}
	types := lo.Uniq(cfg.Types)
	for _, t := range types {
		if !t.Valid() {
			return entity.ErrInvalidInput
		}
	}
	if len(types) == 0 {
		return entity.ErrEmptyPool
	}

	pool, err := e.words.ListEntries(ctx, repository.ListWordQuery{
		VocabularyID: cfg.VocabularyID,
		Types:        types,
	})
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		e.logger.WithFields(logrus.Fields{"vocabulary_id": cfg.VocabularyID, "types": types}).Warn("study pool is empty")
		return entity.ErrEmptyPool
	}

	*s = Session{
		State:        StateRunning,
		VocabularyID: cfg.VocabularyID,
		Mode:         cfg.Mode,
		TypeFilter:   types,
		TotalCount:   len(pool),
		pool:         pool,
	}
	s.Current = e.draw(s)

	e.logger.WithFields(logrus.Fields{
		"vocabulary_id": cfg.VocabularyID,
		"mode":          cfg.Mode,
		"total":         s.TotalCount,
	}).Info("study session started")
	e.emit(s)
	return nil
}

// Submit checks the answer to the current question, records it and advances the run.
// The study event and the wrong-word entry are written in one transaction; if that fails
// the session is left unchanged.
func (e *Engine) Submit(ctx context.Context, s *Session, a Answer) (*Result, error) {
	if s == nil || s.State != StateRunning || s.Current == nil {
		return nil, entity.ErrSessionNotRunning
	}
	q := *s.Current
	correct := check(q, a)

	event := &entity.StudyEvent{
		VocabularyID: s.VocabularyID,
		Word:         q.Word,
		IsCorrect:    correct,
		Mode:         s.Mode,
		Timestamp:    e.clock(),
	}
	err := e.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := e.records.Record(ctx, event); err != nil {
			return err
		}
		if correct {
			return nil
		}
		_, err := e.wrongWords.Upsert(ctx, s.VocabularyID, q.Word, q.Meaning)
		return err
	})
	if err != nil {
		e.logger.WithError(err).WithField("word", q.Word).Error("record answer failed")
		return nil, err
	}

	s.CurrentIndex++
	if correct {
		s.CorrectCount++
	}
	res := &Result{Correct: correct, Question: q}
	if s.CurrentIndex >= s.TotalCount {
		s.State = StateComplete
		s.Current = nil
		res.Complete = true
		res.Summary = s.Summary()
		e.logger.WithFields(logrus.Fields{
			"vocabulary_id": s.VocabularyID,
			"total":         res.Summary.TotalCount,
			"correct":       res.Summary.CorrectCount,
			"accuracy":      res.Summary.Accuracy,
		}).Info("study session complete")
	} else {
		s.Current = e.draw(s)
		next := *s.Current
		res.Next = &next
		res.Summary = s.Summary()
	}
	e.emit(s)
	return res, nil
}

// draw picks a pool entry uniformly at random; the same word may be asked again.
func (e *Engine) draw(s *Session) *Question {
	entry := s.pool[e.rng.Intn(len(s.pool))]
	q := &Question{
		Mode:    s.Mode,
		Word:    entry.Word,
		Type:    entry.Type,
		Meaning: entry.MeaningText(),
		Display: entry.DisplayText(),
	}
	if s.Mode == entity.StudyModeChoice {
		q.Options = buildOptions(e.rng, s.pool, q.Word, q.Meaning, e.choiceOptions)
	}
	return q
}
