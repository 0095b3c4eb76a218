package jarowinkler

import (
	"github.com/rapidfuzz/jarowinkler-go/bitop"
	"github.com/rapidfuzz/jarowinkler-go/internal/pm"
)

// flaggedWord holds the matched-position bit-vectors for the single-word
// path: both p and t fit in 64 elements. Bit i of PFlag is set iff
// position i of the pattern was matched to some position of the text;
// TFlag is the mirror for the text.
type flaggedWord struct {
	PFlag uint64
	TFlag uint64
}

// flagWord runs the single-word matching pass: for each text position j,
// claim the lowest unclaimed, in-window pattern position that contains
// T[j].
func flagWord[T pm.Element](pmv *pm.Vector[T], p, t []T, bound int) flaggedWord {
	if len(p) > 64 || len(t) > 64 {
		panic("jarowinkler: flagWord requires both sequences to be at most 64 elements")
	}

	var flagged flaggedWord
	boundMask := bitop.LowMask(bound + 1)

	tLen := len(t)
	j := 0
	for ; j < min(bound, tLen); j++ {
		pmJ := pmv.Get(t[j]) & boundMask &^ flagged.PFlag

		flagged.PFlag |= bitop.Blsi(pmJ)
		if pmJ != 0 {
			flagged.TFlag |= uint64(1) << uint(j)
		}

		boundMask = (boundMask << 1) | 1
	}

	for ; j < tLen; j++ {
		pmJ := pmv.Get(t[j]) & boundMask &^ flagged.PFlag

		flagged.PFlag |= bitop.Blsi(pmJ)
		if pmJ != 0 {
			flagged.TFlag |= uint64(1) << uint(j)
		}

		boundMask <<= 1
	}

	return flagged
}

func countTranspositionsWord[T pm.Element](pmv *pm.Vector[T], t []T, flagged flaggedWord) int {
	pFlag, tFlag := flagged.PFlag, flagged.TFlag
	transpositions := 0

	for tFlag != 0 {
		patternMask := bitop.Blsi(pFlag)
		tPos := bitop.TrailingZeros(tFlag)

		if pmv.Get(t[tPos])&patternMask == 0 {
			transpositions++
		}

		tFlag = bitop.Blsr(tFlag)
		pFlag ^= patternMask
	}

	return transpositions
}
