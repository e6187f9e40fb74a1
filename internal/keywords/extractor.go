// Package keywords picks the most frequent long content words of a passage
// and glosses them.
package keywords

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"rcanalyzer/internal/domain"
)

const (
	// DefaultTopN is the number of hard words returned when none is requested.
	DefaultTopN = 10
	// DefaultMinLength is the shortest word, in letters, counted as hard.
	DefaultMinLength = 7
)

// Extractor ranks hard words by frequency. A word is hard when it is a
// content word of at least MinLength letters.
type Extractor struct {
	Stopwords domain.StopwordSet
	Lexicon   domain.Lexicon
	MinLength int
}

func NewExtractor(stop domain.StopwordSet, lex domain.Lexicon) *Extractor {
	return &Extractor{Stopwords: stop, Lexicon: lex, MinLength: DefaultMinLength}
}

// Rank returns up to topN hard words from tokens, most frequent first. Equal
// counts keep the order in which the words first appear.
func (e *Extractor) Rank(tokens []string, topN int) []domain.HardWord {
	if topN <= 0 {
		topN = DefaultTopN
	}
	minLen := e.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < minLen || e.Stopwords.Contains(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if topN > len(order) {
		topN = len(order)
	}
	words := make([]domain.HardWord, topN)
	for i, w := range order[:topN] {
		words[i] = domain.HardWord{Word: w, Frequency: counts[w]}
	}
	return words
}

// Extract ranks the hard words of tokens and fills in their glosses. A word
// the lexicon does not know gets domain.GlossNotFound; any other lexicon
// failure aborts the call.
func (e *Extractor) Extract(ctx context.Context, tokens []string, topN int) ([]domain.HardWord, error) {
	if e.Stopwords == nil || e.Lexicon == nil {
		return nil, fmt.Errorf("keywords: %w", domain.ErrResourceUnavailable)
	}
	words := e.Rank(tokens, topN)
	for i := range words {
		gloss, err := e.Lexicon.Define(ctx, words[i].Word)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			gloss = domain.GlossNotFound
		case err != nil:
			return nil, fmt.Errorf("keywords: define %q: %w: %w", words[i].Word, domain.ErrResourceUnavailable, err)
		}
		words[i].Gloss = gloss
	}
	return words, nil
}
