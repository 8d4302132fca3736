package quiz

import (
	"context"
	"sync"
	"time"
)

// Runner owns the single live session of the application and the auto-advance timer.
// Progress observers registered on the engine run while the runner lock is held and must
// not call back into the runner.
type Runner struct {
	mu         sync.Mutex
	engine     *Engine
	session    *Session
	generation uint64
	timer      *time.Timer
}

// NewRunner returns a runner with an idle session.
func NewRunner(engine *Engine) *Runner {
	return &Runner{engine: engine, session: NewSession()}
}

// Start replaces any previous run and returns the first question.
func (r *Runner) Start(ctx context.Context, cfg Config) (*Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.invalidateLocked()
	s := NewSession()
	r.session = s
	if err := r.engine.Start(ctx, s, cfg); err != nil {
		return nil, err
	}
	q := *s.Current
	return &q, nil
}

// Submit answers the current question of the live run.
func (r *Runner) Submit(ctx context.Context, a Answer) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engine.Submit(ctx, r.session, a)
}

// Current returns the question being asked, if a run is in progress.
func (r *Runner) Current() (Question, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session.State != StateRunning || r.session.Current == nil {
		return Question{}, false
	}
	return *r.session.Current, true
}

// State returns the lifecycle state of the live run.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.State
}

// Progress returns the position of the live run.
func (r *Runner) Progress() Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Progress()
}

// Summary scores the live run.
func (r *Runner) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Summary()
}

// Abandon drops the live run and disarms any pending auto-advance.
func (r *Runner) Abandon() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidateLocked()
	r.session = NewSession()
}

// AfterFeedback calls fn with the current question once delay has passed, unless the run
// was restarted, abandoned or finished in the meantime. Arming a new timer disarms the
// previous one.
func (r *Runner) AfterFeedback(delay time.Duration, fn func(Question)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
	}
	gen := r.generation
	t := time.AfterFunc(delay, func() {
		r.mu.Lock()
		if r.generation != gen || r.session.State != StateRunning || r.session.Current == nil {
			r.mu.Unlock()
			return
		}
		q := *r.session.Current
		r.mu.Unlock()
		fn(q)
	})
	r.timer = t
	return func() { t.Stop() }
}

func (r *Runner) invalidateLocked() {
	r.generation++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
