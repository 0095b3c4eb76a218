package jarowinkler

import (
	"github.com/rapidfuzz/jarowinkler-go/bitop"
	"github.com/rapidfuzz/jarowinkler-go/internal/pm"
)

// flaggedBlock is the multi-word mirror of flaggedWord: one matched-
// position bit-vector word per 64-element block of the pattern, and the
// same for the text.
type flaggedBlock struct {
	PFlag []uint64
	TFlag []uint64
}

// searchBoundMask tracks the admissible run of pattern blocks for the
// current text position during the blocked scan: emptyWords blocks to
// the left of the window are entirely out of range, words blocks are
// in range, and firstMask/lastMask carry the partial masks for the
// window's leading and trailing in-range blocks.
type searchBoundMask struct {
	words      int
	emptyWords int
	lastMask   uint64
	firstMask  uint64
}

// flagBlock runs the blocked matching pass for patterns and/or texts
// longer than 64 elements.
func flagBlock[T pm.Element](pmv *pm.BlockVector[T], p, t []T, bound int) flaggedBlock {
	pLen, tLen := len(p), len(t)
	textWords := ceilDiv(tLen, 64)
	patternWords := ceilDiv(pLen, 64)

	flagged := flaggedBlock{
		PFlag: make([]uint64, patternWords),
		TFlag: make([]uint64, textWords),
	}

	startRange := bound + 1
	if startRange > pLen {
		startRange = pLen
	}
	bm := searchBoundMask{
		words:     1 + startRange/64,
		lastMask:  bitop.LowMask(startRange % 64),
		firstMask: ^uint64(0),
	}

	for j := 0; j < tLen; j++ {
		jWord, jPos := j/64, j%64

		flagBlockStep(pmv, t[j], &flagged, jWord, jPos, bm)

		if j+bound+1 < pLen {
			bm.lastMask = (bm.lastMask << 1) | 1
			if j+bound+2 < pLen && bm.lastMask == ^uint64(0) {
				bm.lastMask = 0
				bm.words++
			}
		}

		if j >= bound {
			bm.firstMask <<= 1
			if bm.firstMask == 0 {
				bm.firstMask = ^uint64(0)
				bm.words--
				bm.emptyWords++
			}
		}
	}

	return flagged
}

// flagBlockStep claims, for text position (jWord, jPos), the earliest
// (block, bit) pattern position within the current window that contains
// tj and is not yet claimed.
func flagBlockStep[T pm.Element](pmv *pm.BlockVector[T], tj T, flagged *flaggedBlock, jWord, jPos int, bm searchBoundMask) {
	word := bm.emptyWords
	lastWord := word + bm.words

	if bm.words == 1 {
		pmJ := pmv.Get(word, tj) & bm.lastMask & bm.firstMask &^ flagged.PFlag[word]

		flagged.PFlag[word] |= bitop.Blsi(pmJ)
		if pmJ != 0 {
			flagged.TFlag[jWord] |= uint64(1) << uint(jPos)
		}
		return
	}

	if bm.firstMask != 0 {
		pmJ := pmv.Get(word, tj) & bm.firstMask &^ flagged.PFlag[word]
		if pmJ != 0 {
			flagged.PFlag[word] |= bitop.Blsi(pmJ)
			flagged.TFlag[jWord] |= uint64(1) << uint(jPos)
			return
		}
		word++
	}

	for ; word < lastWord-1; word++ {
		pmJ := pmv.Get(word, tj) &^ flagged.PFlag[word]
		if pmJ != 0 {
			flagged.PFlag[word] |= bitop.Blsi(pmJ)
			flagged.TFlag[jWord] |= uint64(1) << uint(jPos)
			return
		}
	}

	if bm.lastMask != 0 {
		pmJ := pmv.Get(word, tj) & bm.lastMask &^ flagged.PFlag[word]

		flagged.PFlag[word] |= bitop.Blsi(pmJ)
		if pmJ != 0 {
			flagged.TFlag[jWord] |= uint64(1) << uint(jPos)
		}
	}
}

// countCommonCharsBlock sums popcount over whichever of PFlag/TFlag has
// fewer words. Both sums agree by the flagging invariant, but the
// shorter vector is cheaper to walk.
func countCommonCharsBlock(flagged flaggedBlock) int {
	var total int
	if len(flagged.PFlag) < len(flagged.TFlag) {
		for _, w := range flagged.PFlag {
			total += bitop.PopCount(w)
		}
	} else {
		for _, w := range flagged.TFlag {
			total += bitop.PopCount(w)
		}
	}
	return total
}

func countTranspositionsBlock[T pm.Element](pmv *pm.BlockVector[T], t []T, flagged flaggedBlock, flaggedChars int) int {
	textWord, patternWord := 0, 0
	tFlag := flagged.TFlag[textWord]
	pFlag := flagged.PFlag[patternWord]
	tBase := 0

	transpositions := 0
	for flaggedChars > 0 {
		for tFlag == 0 {
			textWord++
			tBase += 64
			tFlag = flagged.TFlag[textWord]
		}

		for tFlag != 0 {
			for pFlag == 0 {
				patternWord++
				pFlag = flagged.PFlag[patternWord]
			}

			patternMask := bitop.Blsi(pFlag)
			tPos := tBase + bitop.TrailingZeros(tFlag)

			if pmv.Get(patternWord, t[tPos])&patternMask == 0 {
				transpositions++
			}

			tFlag = bitop.Blsr(tFlag)
			pFlag ^= patternMask
			flaggedChars--
		}
	}

	return transpositions
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
