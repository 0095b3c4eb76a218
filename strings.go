package jarowinkler

import "github.com/rapidfuzz/jarowinkler-go/ascii"

// String-keyed convenience wrappers. The generic core operates on slices
// of any integer-like element (package pm's Element constraint); these
// wrappers decode a Go string into runes and forward to it.
//
// When both operands are pure ASCII, decoding to runes is wasted work:
// every byte is already its own code point, so comparing []byte directly
// gives the identical result without the allocation. ascii.Valid is the
// cheap test that unlocks that path.

// JaroSimilarityString computes the Jaro similarity between two strings,
// comparing by Unicode code point.
func JaroSimilarityString(p, t string, scoreCutoff float64) float64 {
	if ascii.Valid(p) && ascii.Valid(t) {
		return JaroSimilarity([]byte(p), []byte(t), scoreCutoff)
	}
	return JaroSimilarity([]rune(p), []rune(t), scoreCutoff)
}

// JaroWinklerSimilarityString computes the Jaro–Winkler similarity between
// two strings, comparing by Unicode code point.
func JaroWinklerSimilarityString(p, t string, prefixWeight, scoreCutoff float64) (float64, error) {
	if ascii.Valid(p) && ascii.Valid(t) {
		return JaroWinklerSimilarity([]byte(p), []byte(t), prefixWeight, scoreCutoff)
	}
	return JaroWinklerSimilarity([]rune(p), []rune(t), prefixWeight, scoreCutoff)
}

// NewCachedJaroSimilarityString builds a cached Jaro comparator over
// pattern's bytes when pattern is pure ASCII, or its runes otherwise.
// CompareString on the result must be used for text, not Compare directly,
// since the element type it was built with isn't visible to the caller.
func NewCachedJaroSimilarityString(pattern string) *CachedJaroSimilarityString {
	if ascii.Valid(pattern) {
		return &CachedJaroSimilarityString{bytes: NewCachedJaroSimilarity([]byte(pattern))}
	}
	return &CachedJaroSimilarityString{runes: NewCachedJaroSimilarity([]rune(pattern))}
}

// CachedJaroSimilarityString is a cached Jaro comparator built from a Go
// string, opaque over whether it ended up keyed by byte or by rune.
type CachedJaroSimilarityString struct {
	bytes *CachedJaroSimilarity[byte]
	runes *CachedJaroSimilarity[rune]
}

// CompareString computes the Jaro similarity between the cached pattern and
// text.
func (c *CachedJaroSimilarityString) CompareString(text string, scoreCutoff float64) float64 {
	if c.bytes != nil && ascii.Valid(text) {
		return c.bytes.Compare([]byte(text), scoreCutoff)
	}
	if c.bytes != nil {
		// Pattern was pure ASCII but text isn't: rebuild the comparison at
		// rune granularity rather than mixing element types.
		return JaroSimilarity([]rune(string(c.bytes.pattern)), []rune(text), scoreCutoff)
	}
	return c.runes.Compare([]rune(text), scoreCutoff)
}

// NewCachedJaroWinklerSimilarityString builds a cached Jaro–Winkler
// comparator over pattern's bytes when pattern is pure ASCII, or its runes
// otherwise. prefixWeight must be in [0, 0.25].
func NewCachedJaroWinklerSimilarityString(pattern string, prefixWeight float64) (*CachedJaroWinklerSimilarityString, error) {
	if ascii.Valid(pattern) {
		inner, err := NewCachedJaroWinklerSimilarity([]byte(pattern), prefixWeight)
		if err != nil {
			return nil, err
		}
		return &CachedJaroWinklerSimilarityString{bytes: inner}, nil
	}
	inner, err := NewCachedJaroWinklerSimilarity([]rune(pattern), prefixWeight)
	if err != nil {
		return nil, err
	}
	return &CachedJaroWinklerSimilarityString{runes: inner}, nil
}

// CachedJaroWinklerSimilarityString is a cached Jaro–Winkler comparator
// built from a Go string, opaque over whether it ended up keyed by byte or
// by rune.
type CachedJaroWinklerSimilarityString struct {
	bytes *CachedJaroWinklerSimilarity[byte]
	runes *CachedJaroWinklerSimilarity[rune]
}

// CompareString computes the Jaro–Winkler similarity between the cached
// pattern and text.
func (c *CachedJaroWinklerSimilarityString) CompareString(text string, scoreCutoff float64) float64 {
	if c.bytes != nil && ascii.Valid(text) {
		return c.bytes.Compare([]byte(text), scoreCutoff)
	}
	if c.bytes != nil {
		sim, _ := JaroWinklerSimilarity([]rune(string(c.bytes.inner.pattern)), []rune(text), c.bytes.prefixWeight, scoreCutoff)
		return sim
	}
	return c.runes.Compare([]rune(text), scoreCutoff)
}
