package discourse

import (
	"strings"

	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/segment"
)

// argumentMarkers are matched as plain substrings, so "thusly" counts too.
var argumentMarkers = []string{"because", "therefore", "however", "thus"}

// Passages with more sentences than this are long enough to be descriptive.
const shortPassageSentences = 8

// ClassifyStructure guesses how a passage is organized. Argument markers win
// over length; long passages without them are descriptive.
func ClassifyStructure(text string, sentenceCount int) domain.Structure {
	lower := strings.ToLower(text)
	for _, m := range argumentMarkers {
		if strings.Contains(lower, m) {
			return domain.ArgumentativeExpository
		}
	}
	if sentenceCount > shortPassageSentences {
		return domain.DescriptiveExpository
	}
	return domain.NarrativeShort
}

// ClassifyText segments text and classifies its structure.
func ClassifyText(text string) domain.Structure {
	return ClassifyStructure(text, len(segment.Sentences(text)))
}
