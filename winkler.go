package jarowinkler

import "github.com/rapidfuzz/jarowinkler-go/internal/pm"

const (
	winklerThreshold = 0.7
	maxPrefixLen     = 4
)

// winklerPrefixLen returns min(4, |common prefix of p and t|), the L term
// used by the Winkler prefix bonus. It does not consume/trim p or t; it
// only measures.
func winklerPrefixLen[T pm.Element](p, t []T) int {
	n := min(len(p), len(t), maxPrefixLen)
	i := 0
	for i < n && p[i] == t[i] {
		i++
	}
	return i
}

// liftJaroCutoff tightens a Jaro–Winkler score cutoff into the equivalent
// Jaro score cutoff the inner Jaro call can use for earlier rejection.
// Only valid when scoreCutoff > 0.7; callers below that threshold pass it
// through unchanged since no lift is possible.
func liftJaroCutoff(prefixLen int, prefixWeight, scoreCutoff float64) float64 {
	if scoreCutoff <= winklerThreshold {
		return scoreCutoff
	}

	prefixSim := float64(prefixLen) * prefixWeight
	if prefixSim >= 1.0 {
		return winklerThreshold
	}

	lifted := (prefixSim - scoreCutoff) / (prefixSim - 1.0)
	if lifted < winklerThreshold {
		return winklerThreshold
	}
	return lifted
}

func applyWinklerBonus(sim float64, prefixLen int, prefixWeight float64) float64 {
	if sim > winklerThreshold {
		return sim + float64(prefixLen)*prefixWeight*(1.0-sim)
	}
	return sim
}

// JaroWinklerSimilarity computes the Jaro–Winkler similarity between p and
// t, in [0, 1]. prefixWeight must be in [0, 0.25] (the weight given to the
// length-4-capped common prefix); ErrInvalidPrefixWeight is returned
// otherwise. scoreCutoff behaves as in JaroSimilarity.
func JaroWinklerSimilarity[T pm.Element](p, t []T, prefixWeight, scoreCutoff float64) (float64, error) {
	if err := validatePrefixWeight(prefixWeight); err != nil {
		return 0, err
	}

	prefixLen := winklerPrefixLen(p, t)
	jaroCutoff := liftJaroCutoff(prefixLen, prefixWeight, scoreCutoff)

	sim := JaroSimilarity(p, t, jaroCutoff)
	sim = applyWinklerBonus(sim, prefixLen, prefixWeight)

	return resultCutoff(sim, scoreCutoff), nil
}

// CachedJaroWinklerSimilarity amortizes the pattern-match bitmap of a
// fixed pattern over many Jaro–Winkler comparisons.
type CachedJaroWinklerSimilarity[T pm.Element] struct {
	inner        CachedJaroSimilarity[T]
	prefixWeight float64
}

// NewCachedJaroWinklerSimilarity builds a blocked pattern-match bitmap
// over pattern, bound to prefixWeight for every subsequent Compare call.
// prefixWeight must be in [0, 0.25].
func NewCachedJaroWinklerSimilarity[T pm.Element](pattern []T, prefixWeight float64) (*CachedJaroWinklerSimilarity[T], error) {
	if err := validatePrefixWeight(prefixWeight); err != nil {
		return nil, err
	}
	return &CachedJaroWinklerSimilarity[T]{
		inner: CachedJaroSimilarity[T]{
			pattern: pattern,
			pm:      pm.NewBlock(pattern),
		},
		prefixWeight: prefixWeight,
	}, nil
}

// Compare computes the Jaro–Winkler similarity between the cached pattern
// and text, reusing the precomputed bitmap.
func (c *CachedJaroWinklerSimilarity[T]) Compare(text []T, scoreCutoff float64) float64 {
	prefixLen := winklerPrefixLen(c.inner.pattern, text)
	jaroCutoff := liftJaroCutoff(prefixLen, c.prefixWeight, scoreCutoff)

	sim := c.inner.Compare(text, jaroCutoff)
	sim = applyWinklerBonus(sim, prefixLen, c.prefixWeight)

	return resultCutoff(sim, scoreCutoff)
}
