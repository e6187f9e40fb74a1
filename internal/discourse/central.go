// Package discourse holds the passage-level heuristics: tone, central idea
// and structure.
package discourse

import (
	"sort"

	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/tokenize"
)

// CentralIdea ranks sentences by the document-wide frequency of their words
// and returns the best one.
type CentralIdea struct {
	stopwords domain.StopwordSet
	tok       *tokenize.Treebank
}

// NewCentralIdea creates a frequency-based central-idea selector.
func NewCentralIdea(stop domain.StopwordSet) *CentralIdea {
	return &CentralIdea{stopwords: stop, tok: tokenize.NewTreebank()}
}

// Select returns the sentence whose words occur most often across the whole
// passage, or domain.CentralIdeaUndetermined when there are no sentences.
// content holds the content words of the whole passage. Scores are raw sums,
// so longer sentences are favored; equal scores keep the earlier sentence.
func (c *CentralIdea) Select(sentences, content []string) string {
	if len(sentences) == 0 {
		return domain.CentralIdeaUndetermined
	}
	freq := make(map[string]int, len(content))
	for _, w := range content {
		freq[w]++
	}
	type pair struct {
		idx   int
		score int
	}
	scores := make([]pair, len(sentences))
	for i, sent := range sentences {
		score := 0
		// Stopwords are not removed here; they are absent from freq.
		for _, tok := range c.tok.Words(sent) {
			score += freq[tok]
		}
		scores[i] = pair{i, score}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	return sentences[scores[0].idx]
}

// SelectText tokenizes text and selects its central idea among sentences.
func (c *CentralIdea) SelectText(text string, sentences []string) string {
	return c.Select(sentences, tokenize.FilterStopwords(c.tok.Words(text), c.stopwords))
}
