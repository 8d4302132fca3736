package entity

import "strings"

// WordType distinguishes single words from multi-word phrases.
type WordType string

const (
	WordTypeWord   WordType = "word"
	WordTypePhrase WordType = "phrase"
)

// Valid reports whether t is a known word type.
func (t WordType) Valid() bool {
	return t == WordTypeWord || t == WordTypePhrase
}

// ParseWordType converts user input into a WordType, defaulting to WordTypeWord.
func ParseWordType(s string) (WordType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "word", "单词":
		return WordTypeWord, nil
	case "phrase", "短语":
		return WordTypePhrase, nil
	default:
		return "", &InvalidValueError{Field: FieldWordType, Value: s}
	}
}

// StudyMode selects how questions are asked and checked.
type StudyMode string

const (
	StudyModeRecognize StudyMode = "recognize"
	StudyModeChoice    StudyMode = "choice"
	StudyModeSpell     StudyMode = "spell"
)

// Valid reports whether m is a known study mode.
func (m StudyMode) Valid() bool {
	switch m {
	case StudyModeRecognize, StudyModeChoice, StudyModeSpell:
		return true
	default:
		return false
	}
}

// ParseStudyMode converts user input into a StudyMode.
func ParseStudyMode(s string) (StudyMode, error) {
	mode := StudyMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.Valid() {
		return "", &InvalidValueError{Field: FieldStudyMode, Value: s}
	}
	return mode, nil
}

// NormalizeName trims surrounding whitespace from user supplied names and words.
func NormalizeName(s string) string {
	return strings.TrimSpace(s)
}
