package repository

import (
	"strings"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/samber/lo"
)

const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}

func normalizeWordTypes(in []entity.WordType) []string {
	if len(in) == 0 {
		return nil
	}
	out := lo.Uniq(lo.FilterMap(in, func(t entity.WordType, _ int) (string, bool) {
		trimmed := strings.ToLower(strings.TrimSpace(string(t)))
		return trimmed, trimmed != ""
	}))
	if len(out) == 0 {
		return nil
	}
	return out
}
