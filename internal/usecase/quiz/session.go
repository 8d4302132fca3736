package quiz

import "github.com/eslsoft/vocdrill/internal/entity"

// State is the lifecycle position of a study run.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Question is what the presentation layer shows for one step of a run.
type Question struct {
	Mode entity.StudyMode
	Word string
	Type entity.WordType
	// Meaning is the joined meaning text; choice answers are compared against it.
	Meaning string
	// Display includes parts of speech and backs the "show meaning" control.
	Display string
	// Options is only set in choice mode.
	Options []string
}

// Prompt is the text the learner is asked about.
func (q Question) Prompt() string {
	if q.Mode == entity.StudyModeSpell {
		return q.Meaning
	}
	return q.Word
}

// Expected is the reference answer shown as feedback.
func (q Question) Expected() string {
	if q.Mode == entity.StudyModeSpell {
		return q.Word
	}
	return q.Meaning
}

// Answer is the learner's response. Known is used in recognize mode, Text otherwise.
type Answer struct {
	Known bool
	Text  string
}

// Progress is published after a run starts and after every answer.
type Progress struct {
	CurrentIndex int
	TotalCount   int
}

// Summary is the score of a run.
type Summary struct {
	TotalCount   int
	CorrectCount int
	Accuracy     float64
}

// Result reports the outcome of one answer.
type Result struct {
	Correct  bool
	Question Question
	Next     *Question
	Complete bool
	Summary  Summary
}

// Session holds the counters of one study run. The engine mutates it on every call.
type Session struct {
	State        State
	VocabularyID int64
	Mode         entity.StudyMode
	TypeFilter   []entity.WordType
	CurrentIndex int
	TotalCount   int
	CorrectCount int
	Current      *Question

	pool []entity.WordEntry
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{State: StateIdle}
}

func (s *Session) reset() {
	*s = Session{State: StateIdle}
}

// Progress reports the current position of the run.
func (s *Session) Progress() Progress {
	return Progress{CurrentIndex: s.CurrentIndex, TotalCount: s.TotalCount}
}

// Summary scores the answers given so far.
func (s *Session) Summary() Summary {
	return Summary{
		TotalCount:   s.TotalCount,
		CorrectCount: s.CorrectCount,
		Accuracy:     entity.Accuracy(int64(s.CorrectCount), int64(s.TotalCount)),
	}
}
