package entity

import (
	"strings"

	"github.com/samber/lo"
)

// Sense is a single part-of-speech and meaning pair attached to a word.
type Sense struct {
	POS     string `db:"pos"`
	Meaning string `db:"meaning"`
}

// Display renders the sense as "pos meaning", or just the meaning when pos is empty.
func (s Sense) Display() string {
	if s.POS == "" {
		return s.Meaning
	}
	return s.POS + " " + s.Meaning
}

// WordEntry groups every sense of one word inside one vocabulary.
type WordEntry struct {
	VocabularyID int64
	Word         string
	Type         WordType
	Senses       []Sense
}

// MeaningText joins the meanings of all senses; it is what choice questions and the
// wrong-word ledger show.
func (w WordEntry) MeaningText() string {
	return strings.Join(lo.Map(w.Senses, func(s Sense, _ int) string { return s.Meaning }), "; ")
}

// DisplayText joins the senses including their part of speech.
func (w WordEntry) DisplayText() string {
	return strings.Join(lo.Map(w.Senses, func(s Sense, _ int) string { return s.Display() }), "; ")
}

// NumberedEntry is a word entry with a 1-based position assigned when a result list is built.
type NumberedEntry struct {
	Position int
	WordEntry
}

// NumberEntries assigns 1-based positions in slice order.
func NumberEntries(entries []WordEntry) []NumberedEntry {
	return lo.Map(entries, func(e WordEntry, i int) NumberedEntry {
		return NumberedEntry{Position: i + 1, WordEntry: e}
	})
}

// NormalizeSenses trims every sense and drops those without a meaning.
func NormalizeSenses(senses []Sense) []Sense {
	out := make([]Sense, 0, len(senses))
	for _, s := range senses {
		meaning := strings.TrimSpace(s.Meaning)
		if meaning == "" {
			continue
		}
		out = append(out, Sense{POS: strings.TrimSpace(s.POS), Meaning: meaning})
	}
	return out
}
