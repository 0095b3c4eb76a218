package bitop

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopCount(t *testing.T) {
	tests := []struct {
		x    uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{0b1011, 3},
		{^uint64(0), 64},
		{1 << 63, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x", tt.x), func(t *testing.T) {
			assert.Equal(t, tt.want, PopCount(tt.x))
		})
	}
}

func TestTrailingZeros(t *testing.T) {
	tests := []struct {
		x    uint64
		want int
	}{
		{1, 0},
		{2, 1},
		{0b1000, 3},
		{1 << 63, 63},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x", tt.x), func(t *testing.T) {
			assert.Equal(t, tt.want, TrailingZeros(tt.x))
		})
	}
}

func TestBlsi(t *testing.T) {
	tests := []struct {
		x, want uint64
	}{
		{0, 0},
		{0b1011, 0b0001},
		{0b1100, 0b0100},
		{1 << 63, 1 << 63},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x", tt.x), func(t *testing.T) {
			assert.Equal(t, tt.want, Blsi(tt.x))
		})
	}
}

func TestBlsr(t *testing.T) {
	tests := []struct {
		x, want uint64
	}{
		{0, 0},
		{0b1011, 0b1010},
		{0b1100, 0b1000},
		{1, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x", tt.x), func(t *testing.T) {
			assert.Equal(t, tt.want, Blsr(tt.x))
		})
	}
}

func TestLowMask(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{0, 0},
		{1, 0b1},
		{4, 0b1111},
		{63, (uint64(1) << 63) - 1},
		{64, ^uint64(0)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, LowMask(tt.n))
		})
	}
}

func TestBlsiBlsrRoundTrip(t *testing.T) {
	// Repeatedly claiming blsi and clearing it with blsr must visit every
	// set bit exactly once, in ascending order.
	x := uint64(0b10110100)
	var seen []int
	for x != 0 {
		seen = append(seen, TrailingZeros(Blsi(x)))
		x = Blsr(x)
	}
	assert.Equal(t, []int{2, 4, 5, 7}, seen)
}
