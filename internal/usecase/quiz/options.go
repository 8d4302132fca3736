package quiz

import (
	"math/rand"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/samber/lo"
)

// maxDistractorAttempts bounds the with-replacement sampling of distractors.
const maxDistractorAttempts = 32

// buildOptions returns the correct meaning plus up to want-1 distinct distractors taken
// from the other words of the pool, in random order.
func buildOptions(rng *rand.Rand, pool []entity.WordEntry, word, meaning string, want int) []string {
	candidates := lo.Uniq(lo.FilterMap(pool, func(e entity.WordEntry, _ int) (string, bool) {
		m := e.MeaningText()
		return m, e.Word != word && m != meaning && m != ""
	}))

	need := want - 1
	if need < 0 {
		need = 0
	}
	var picked []string
	if len(candidates) <= need {
		picked = append(picked, candidates...)
	} else {
		seen := make(map[string]struct{}, need)
		for attempt := 0; attempt < maxDistractorAttempts && len(picked) < need; attempt++ {
			c := candidates[rng.Intn(len(candidates))]
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			picked = append(picked, c)
		}
		if len(picked) < need {
			rest := lo.Filter(candidates, func(c string, _ int) bool {
				_, dup := seen[c]
				return !dup
			})
			rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
			picked = append(picked, rest[:need-len(picked)]...)
		}
	}

	options := append(picked, meaning)
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}
