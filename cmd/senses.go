package cmd

import (
	"strings"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/samber/lo"
)

// parseSenses turns "--sense" values such as "n. 猫" into senses; blank values are dropped.
func parseSenses(values []string) []entity.Sense {
	senses := lo.Map(values, func(v string, _ int) entity.Sense {
		pos, meaning := extractLeadingPOS(v)
		return entity.Sense{POS: pos, Meaning: meaning}
	})
	return entity.NormalizeSenses(senses)
}

// extractLeadingPOS 尝试解析行首词性标记，返回 (pos, 剩余文本)。若没有匹配返回 pos=""。
func extractLeadingPOS(line string) (string, string) {
	s := strings.TrimSpace(line)
	if s == "" {
		return "", ""
	}
	lower := strings.ToLower(s)
	// 先匹配更长的候选 (vt, vi 在 v 之前)
	candidates := []string{"vt", "vi", "adj", "adv", "prep", "pron", "conj", "interj", "int", "num", "art", "aux", "abbr", "phr", "noun", "n", "v"}
	for _, cand := range candidates {
		if !strings.HasPrefix(lower, cand) {
			continue
		}
		rest := s[len(cand):]
		if rest == "" {
			break
		}
		if next := rest[0]; next != '.' && next != ' ' && next != '\t' {
			continue
		}
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "."))
		if rest == "" {
			break
		}
		return normalizePOSWithDot(cand), rest
	}
	return "", s
}

func normalizePOSWithDot(pos string) string {
	if pos == "noun" {
		pos = "n"
	}
	return pos + "."
}
