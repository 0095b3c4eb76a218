package ascii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"hello", true},
		{"hello world, this is longer than one word", true},
		{"café", false},
		{"日本語", false},
		{strings.Repeat("a", 8) + "é", false},
		{strings.Repeat("a", 7), true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Valid(c.s), "Valid(%q)", c.s)
	}
}
