package mapping

import (
	"strconv"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/samber/lo"
)

// ModeLabel is the display name of a study mode.
func ModeLabel(mode entity.StudyMode) string {
	switch mode {
	case entity.StudyModeRecognize:
		return "认识"
	case entity.StudyModeChoice:
		return "选择"
	case entity.StudyModeSpell:
		return "拼写"
	default:
		return string(mode)
	}
}

// TypeLabel is the display name of a word type.
func TypeLabel(t entity.WordType) string {
	if t == entity.WordTypePhrase {
		return "短语"
	}
	return "单词"
}

// VocabularyRows renders vocabularies as id, name, word count.
func VocabularyRows(in []*entity.Vocabulary) [][]string {
	return lo.Map(in, func(v *entity.Vocabulary, _ int) []string {
		return []string{strconv.FormatInt(v.ID, 10), v.Name, strconv.FormatInt(v.WordCount, 10)}
	})
}

// WordRows renders numbered entries as position, word, type, senses.
func WordRows(in []entity.NumberedEntry) [][]string {
	return lo.Map(in, func(e entity.NumberedEntry, _ int) []string {
		return []string{strconv.Itoa(e.Position), e.Word, TypeLabel(e.Type), e.DisplayText()}
	})
}

// StatRows renders aggregated rows; the mode column is added when withMode is set.
func StatRows(in []entity.StatRow, withMode bool) [][]string {
	return lo.Map(in, func(r entity.StatRow, _ int) []string {
		row := []string{r.Period}
		if withMode {
			row = append(row, ModeLabel(r.Mode))
		}
		return append(row,
			strconv.FormatInt(r.Total, 10),
			strconv.FormatInt(r.Correct, 10),
			strconv.FormatFloat(r.Accuracy, 'f', 2, 64)+"%",
		)
	})
}

// WrongWordRows renders ledger entries as vocabulary, word, meaning, count, first miss.
func WrongWordRows(in []*entity.WrongWord) [][]string {
	return lo.Map(in, func(w *entity.WrongWord, _ int) []string {
		return []string{
			w.VocabularyName,
			w.Word,
			w.Meaning,
			strconv.FormatInt(w.WrongCount, 10),
			w.FirstWrongTime.Format("2006-01-02 15:04"),
		}
	})
}
