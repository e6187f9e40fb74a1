// Package segment normalizes whitespace and splits prose into sentences.
package segment

import (
	"regexp"
	"strings"
)

// Segmenter splits text on sentence-ending punctuation followed by whitespace.
// It has no knowledge of abbreviations: "Dr. Smith" is two sentences.
type Segmenter struct {
	boundary *regexp.Regexp
}

func NewSegmenter() *Segmenter {
	return &Segmenter{
		boundary: regexp.MustCompile(`[.!?]\s+`),
	}
}

// Normalize collapses every run of whitespace to a single space and trims
// both ends.
func (s *Segmenter) Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// Sentences returns the sentences of raw in order of appearance. The
// terminal mark stays with its sentence, the whitespace after it is dropped.
func (s *Segmenter) Sentences(raw string) []string {
	var sentences []string
	start := 0
	for _, loc := range s.boundary.FindAllStringIndex(raw, -1) {
		// loc[0] is the punctuation byte; keep it.
		sentences = appendTrimmed(sentences, raw[start:loc[0]+1])
		start = loc[1]
	}
	return appendTrimmed(sentences, raw[start:])
}

func appendTrimmed(dst []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return dst
	}
	return append(dst, s)
}

var std = NewSegmenter()

// Normalize collapses whitespace using the package segmenter.
func Normalize(raw string) string { return std.Normalize(raw) }

// Sentences splits raw into sentences using the package segmenter.
func Sentences(raw string) []string { return std.Sentences(raw) }
