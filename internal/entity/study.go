package entity

import (
	"math"
	"time"
)

// StudyEvent is the immutable record of one answered question.
type StudyEvent struct {
	ID           int64     `db:"id"`
	VocabularyID int64     `db:"vocabulary_id"`
	Word         string    `db:"word"`
	IsCorrect    bool      `db:"is_correct"`
	Mode         StudyMode `db:"study_mode"`
	Timestamp    time.Time `db:"timestamp"`
}

// WrongWord is one row of the wrong-word ledger.
type WrongWord struct {
	ID             int64     `db:"id"`
	VocabularyID   int64     `db:"vocabulary_id"`
	VocabularyName string    `db:"vocabulary_name"`
	Word           string    `db:"word"`
	Meaning        string    `db:"meaning"`
	FirstWrongTime time.Time `db:"first_wrong_time"`
	WrongCount     int64     `db:"wrong_count"`
}

// StatRow is one aggregated period of the study log. Mode is only set by the per-mode view.
type StatRow struct {
	Period   string    `db:"period"`
	Mode     StudyMode `db:"study_mode"`
	Total    int64     `db:"total"`
	Correct  int64     `db:"correct"`
	Accuracy float64   `db:"-"`
}

// Accuracy returns correct*100/total rounded to two decimals, or 0 when total is 0.
func Accuracy(correct, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)*100/float64(total)*100) / 100
}
