package jarowinkler

import (
	"github.com/rapidfuzz/jarowinkler-go/bitop"
	"github.com/rapidfuzz/jarowinkler-go/internal/pm"
)

// bound computes B = max(0, max(pLen, tLen)/2 - 1), the half-width of the
// Jaro window.
func bound(pLen, tLen int) int {
	m := pLen
	if tLen > m {
		m = tLen
	}
	b := m/2 - 1
	if b < 0 {
		return 0
	}
	return b
}

func lengthFilter(pLen, tLen int, scoreCutoff float64) bool {
	if pLen == 0 || tLen == 0 {
		return false
	}
	minLen := float64(min(pLen, tLen))
	sim := (minLen/float64(pLen) + minLen/float64(tLen) + 1.0) / 3.0
	return sim >= scoreCutoff
}

func commonCharFilter(pLen, tLen, commonChars int, scoreCutoff float64) bool {
	if commonChars == 0 {
		return false
	}
	sim := (float64(commonChars)/float64(pLen) + float64(commonChars)/float64(tLen) + 1.0) / 3.0
	return sim >= scoreCutoff
}

func resultCutoff(v, scoreCutoff float64) float64 {
	if v >= scoreCutoff {
		return v
	}
	return 0
}

func jaroFormula(pLen, tLen, commonChars, transpositions int) float64 {
	if commonChars == 0 {
		return 0
	}
	transpositions /= 2
	sim := float64(commonChars)/float64(pLen) + float64(commonChars)/float64(tLen) +
		float64(commonChars-transpositions)/float64(commonChars)
	return sim / 3.0
}

func commonPrefixLen[T pm.Element](p, t []T) int {
	n := min(len(p), len(t))
	i := 0
	for i < n && p[i] == t[i] {
		i++
	}
	return i
}

// JaroSimilarity computes the Jaro similarity between p and t, in [0, 1].
// If scoreCutoff is greater than 0, results below it are reported as 0
// instead, for callers that only care about matches above a threshold.
func JaroSimilarity[T pm.Element](p, t []T, scoreCutoff float64) float64 {
	pLen, tLen := len(p), len(t)

	if !lengthFilter(pLen, tLen, scoreCutoff) {
		return 0
	}
	if pLen == 1 && tLen == 1 {
		if p[0] == t[0] {
			return 1.0
		}
		return 0.0
	}

	b := bound(pLen, tLen)
	if tLen > pLen {
		if tLen > pLen+b {
			t = t[:pLen+b]
		}
	} else {
		if pLen > tLen+b {
			p = p[:tLen+b]
		}
	}

	prefix := commonPrefixLen(p, t)
	p, t = p[prefix:], t[prefix:]
	commonChars := prefix
	var transpositions int

	switch {
	case len(p) == 0 || len(t) == 0:
		// Nothing left to flag; commonChars/transpositions already final.
	case len(p) <= 64 && len(t) <= 64:
		pmv := pm.New(p)
		flagged := flagWord(&pmv, p, t, b)
		commonChars += bitop.PopCount(flagged.PFlag)
		if !commonCharFilter(pLen, tLen, commonChars, scoreCutoff) {
			return 0
		}
		transpositions = countTranspositionsWord(&pmv, t, flagged)
	default:
		pmv := pm.NewBlock(p)
		flagged := flagBlock(&pmv, p, t, b)
		flaggedChars := countCommonCharsBlock(flagged)
		commonChars += flaggedChars
		if !commonCharFilter(pLen, tLen, commonChars, scoreCutoff) {
			return 0
		}
		transpositions = countTranspositionsBlock(&pmv, t, flagged, flaggedChars)
	}

	sim := jaroFormula(pLen, tLen, commonChars, transpositions)
	return resultCutoff(sim, scoreCutoff)
}

// CachedJaroSimilarity amortizes the pattern-match bitmap of a fixed
// pattern over many comparisons (batch workloads, record-linkage). Build
// once with NewCachedJaroSimilarity, then call Compare repeatedly.
//
// The bitmap is immutable after construction and safe for concurrent use
// by multiple goroutines: Compare allocates only per-call transient
// buffers.
type CachedJaroSimilarity[T pm.Element] struct {
	pattern []T
	pm      pm.BlockVector[T]
}

// NewCachedJaroSimilarity builds a blocked pattern-match bitmap over
// pattern. It keeps a reference to the slice (not a copy) for pLen in the
// formula and bound computation, the single-element comparison, the
// Winkler prefix length, and the rune fallback in the string wrappers.
func NewCachedJaroSimilarity[T pm.Element](pattern []T) *CachedJaroSimilarity[T] {
	return &CachedJaroSimilarity[T]{
		pattern: pattern,
		pm:      pm.NewBlock(pattern),
	}
}

// Compare computes the Jaro similarity between the cached pattern and
// text, reusing the precomputed bitmap. Bit-identical to
// JaroSimilarity(pattern, text, scoreCutoff).
func (c *CachedJaroSimilarity[T]) Compare(text []T, scoreCutoff float64) float64 {
	return jaroSimilarityCached(&c.pm, c.pattern, text, scoreCutoff)
}

// jaroSimilarityCached mirrors JaroSimilarity but takes an already-built
// blocked bitmap, skipping the single-word fast path entirely. The
// bitmap was built once over the full, untrimmed pattern, so lookups
// into it must always go through the blocked BlockVector.Get(block, key)
// interface, even when the trimmed views happen to fit in one word.
func jaroSimilarityCached[T pm.Element](pmv *pm.BlockVector[T], p, t []T, scoreCutoff float64) float64 {
	pLen, tLen := len(p), len(t)

	if !lengthFilter(pLen, tLen, scoreCutoff) {
		return 0
	}
	if pLen == 1 && tLen == 1 {
		if p[0] == t[0] {
			return 1.0
		}
		return 0.0
	}

	b := bound(pLen, tLen)
	if tLen > pLen {
		if tLen > pLen+b {
			t = t[:pLen+b]
		}
	} else {
		if pLen > tLen+b {
			p = p[:tLen+b]
		}
	}

	commonChars := 0
	var transpositions int

	if len(p) == 0 || len(t) == 0 {
		// Nothing to flag.
	} else {
		flagged := flagBlock(pmv, p, t, b)
		flaggedChars := countCommonCharsBlock(flagged)
		commonChars += flaggedChars
		if !commonCharFilter(pLen, tLen, commonChars, scoreCutoff) {
			return 0
		}
		transpositions = countTranspositionsBlock(pmv, t, flagged, flaggedChars)
	}

	sim := jaroFormula(pLen, tLen, commonChars, transpositions)
	return resultCutoff(sim, scoreCutoff)
}
