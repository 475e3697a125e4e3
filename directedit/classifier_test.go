package directedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDirectEditCharAcceptsLiteralSet(t *testing.T) {
	for _, r := range AcceptedChars() {
		assert.True(t, IsDirectEditChar(string(r)), "expected %q to be accepted", r)
	}
}

func TestIsDirectEditCharSamples(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"a", true},
		{"Z", true},
		{"7", true},
		{"_", true},
		{"€", true},
		{"£", true},
		{"–", true},
		{"’", true},
		{"\\", true},
		{"-", true},
		{".", true},
		{"~", false},
		{"&", false},
		{" ", false},
		{"\t", false},
		{"ü", false},
		{"", false},
		{"ab", false},
		{"F2", false},
		{"Escape", false},
		{"ArrowLeft", false},
		{"Shift", false},
		{"😀", false},
		{"\xff", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDirectEditChar(tt.key), "key %q", tt.key)
	}
}

func TestAcceptedCharsHasNoDuplicates(t *testing.T) {
	seen := make(map[rune]bool)
	for _, r := range AcceptedChars() {
		assert.False(t, seen[r], "duplicate %q", r)
		seen[r] = true
	}
	assert.Len(t, seen, 63+44)
}
