package pm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorASCII(t *testing.T) {
	v := New([]byte("MARTHA"))

	assert.Equal(t, uint64(0b000001), v.Get(byte('M')))
	// 'A' occurs at positions 1 and 5 (0-indexed)
	assert.Equal(t, uint64(1<<1|1<<5), v.Get(byte('A')))
	assert.Equal(t, uint64(1<<2), v.Get(byte('R')))
	assert.Equal(t, uint64(1<<3), v.Get(byte('T')))
	assert.Equal(t, uint64(1<<4), v.Get(byte('H')))
	assert.Equal(t, uint64(0), v.Get(byte('Z')))
}

func TestVectorNonASCII(t *testing.T) {
	pattern := []rune("日本語日")
	v := New(pattern)

	assert.Equal(t, uint64(1<<0|1<<3), v.Get('日'))
	assert.Equal(t, uint64(1<<1), v.Get('本'))
	assert.Equal(t, uint64(1<<2), v.Get('語'))
	assert.Equal(t, uint64(0), v.Get('語'+1))
}

func TestVectorHashCollisionDense(t *testing.T) {
	// 64 distinct non-ASCII keys, chosen to guarantee repeated collisions
	// against the 128-slot table (every key congruent mod 128 to a small
	// set of residues), to exercise the perturbation probe beyond its
	// first step.
	pattern := make([]rune, 64)
	for i := range pattern {
		pattern[i] = rune(1000 + i*128)
	}
	v := New(pattern)
	for i, c := range pattern {
		got := v.Get(c)
		assert.NotZero(t, got, "key %d", c)
		assert.True(t, got&(1<<uint(i)) != 0)
	}
}

func TestBlockVectorSpansBlocks(t *testing.T) {
	pattern := make([]byte, 130)
	for i := range pattern {
		pattern[i] = 'a'
	}
	pattern[0] = 'x'
	pattern[64] = 'y'
	pattern[129] = 'z'

	bv := NewBlock(pattern)
	assert.Equal(t, 3, bv.BlockCount())

	assert.Equal(t, uint64(1), bv.Get(0, byte('x')))
	assert.Equal(t, uint64(1), bv.Get(1, byte('y')))
	assert.Equal(t, uint64(1<<1), bv.Get(2, byte('z')))

	// 'a' fills every position of blocks 0 and 1 except position 0, and
	// position 0 of block 2.
	wantBlock0 := ^uint64(0) &^ 1
	assert.Equal(t, wantBlock0, bv.Get(0, byte('a')))
}

func TestBlockVectorOutOfRangePanics(t *testing.T) {
	bv := NewBlock([]byte("hello"))
	assert.Panics(t, func() {
		bv.Get(5, byte('h'))
	})
}

func TestVectorAndBlockVectorAgree(t *testing.T) {
	pattern := []byte("DIXONANDDICKSONX")
	single := New(pattern)
	block := NewBlock(pattern)

	for c := byte(0); c < 255; c++ {
		assert.Equal(t, single.Get(c), block.Get(0, c), "byte %d", c)
	}
}
