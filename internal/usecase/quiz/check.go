package quiz

import (
	"strings"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// CheckSpelling reports whether input spells word, ignoring case only.
func CheckSpelling(input, word string) bool {
	return strings.EqualFold(input, word)
}

// CheckChoice reports whether the chosen option is the correct meaning.
func CheckChoice(chosen, meaning string) bool {
	return chosen == meaning
}

func check(q Question, a Answer) bool {
	switch q.Mode {
	case entity.StudyModeRecognize:
		return a.Known
	case entity.StudyModeChoice:
		return CheckChoice(a.Text, q.Meaning)
	case entity.StudyModeSpell:
		return CheckSpelling(a.Text, q.Word)
	default:
		return false
	}
}
