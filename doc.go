// Package jarowinkler computes the Jaro and Jaro–Winkler similarity
// between two sequences of comparable elements.
//
// The generic public surface is four entry points: JaroSimilarity and
// JaroWinklerSimilarity for one-shot comparisons, and
// NewCachedJaroSimilarity / NewCachedJaroWinklerSimilarity for repeated
// comparisons against a fixed pattern (record-linkage and other batch
// workloads, where building the pattern-match bitmap once and reusing it
// amortizes the cost across many texts). Each has a string-keyed
// counterpart with a String suffix.
//
// Internally the naive O(|P|·|T|) scan is replaced by a bit-parallel
// formulation: a precomputed pattern-match bitmap (package pm) answers
// "where in P does element c occur?" as a 64-bit mask, and the flagging
// engine in this package combines that bitmap with a sliding window mask
// to flag matched positions and count transpositions using O(1) (short
// sequences) or O(blocks) (long sequences) word operations instead of a
// per-position scan.
package jarowinkler
