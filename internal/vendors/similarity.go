package vendors

import (
	"github.com/agext/levenshtein"
)

// Similarity scores two raw vendor names in [0, 1]. It is the max of an
// edit-distance similarity and a token-set overlap, both computed on
// normalized names with legal suffixes stripped, so word order and
// "Inc."-style noise do not depress the score.
func Similarity(a, b string) float64 {
	na := stripSuffix(NormalizeName(a))
	nb := stripSuffix(NormalizeName(b))
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	edit := levenshtein.Similarity(na, nb, levenshtein.NewParams())
	if jac := jaccard(tokenSet(na), tokenSet(nb)); jac > edit {
		return jac
	}
	return edit
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
