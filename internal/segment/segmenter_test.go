package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\r\n ", ""},
		{"collapses runs", "The  cat\n\nsat.\tIt\r\nwas happy. ", "The cat sat. It was happy."},
		{"already clean", "One two.", "One two."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalize must be idempotent")
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"two sentences", "The cat sat. It was happy.", []string{"The cat sat.", "It was happy."}},
		{"mixed marks", "Really? Yes! Fine.", []string{"Really?", "Yes!", "Fine."}},
		{"newline delimiter", "First.\n\nSecond", []string{"First.", "Second"}},
		{"no trailing mark", "no punctuation here", []string{"no punctuation here"}},
		{"mark without space", "3.14 is pi. Ok.", []string{"3.14 is pi.", "Ok."}},
		{"abbreviation is split", "Dr. Smith left.", []string{"Dr.", "Smith left."}},
		{"repeated marks", "Wait!! Now.", []string{"Wait!!", "Now."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sentences(tt.in))
		})
	}
}
