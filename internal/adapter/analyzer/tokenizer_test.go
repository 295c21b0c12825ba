package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits on punctuation",
			text: "How do I reset my Password?",
			want: []string{"how", "do", "i", "reset", "my", "password"},
		},
		{
			name: "keeps digits and underscores",
			text: "error_42 code",
			want: []string{"error_42", "code"},
		},
		{
			name: "no alphanumeric content",
			text: "!!! ??? ...",
			want: nil,
		},
		{
			name: "empty string",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.text))
		})
	}
}

func TestWordSet_Deduplicates(t *testing.T) {
	set := WordSet("password password reset Password")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "password")
	assert.Contains(t, set, "reset")
}

func TestOverlap(t *testing.T) {
	a := WordSet("how do I reset my password")
	b := WordSet("reset password")

	assert.Equal(t, 2, Overlap(a, b))
	assert.Equal(t, 2, Overlap(b, a))
	assert.Equal(t, 0, Overlap(a, WordSet("")))
}
