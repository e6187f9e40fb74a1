package keywords

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/lexicon/memory"
	"rcanalyzer/internal/stopwords"
	"rcanalyzer/internal/tokenize"
)

type brokenLexicon struct{}

func (brokenLexicon) Define(context.Context, string) (string, error) {
	return "", errors.New("database is locked")
}

func TestRankOrdersByFrequencyThenFirstSeen(t *testing.T) {
	e := NewExtractor(stopwords.English(), memory.Seed())
	tokens := tokenize.Words("Paradox and paradigm. Another paradigm appears; another paradox follows. Narrative narrative.")

	got := e.Rank(tokens, 10)
	assert.Equal(t, []domain.HardWord{
		{Word: "paradox", Frequency: 2},
		{Word: "paradigm", Frequency: 2},
		{Word: "another", Frequency: 2},
		{Word: "narrative", Frequency: 2},
		{Word: "appears", Frequency: 1},
		{Word: "follows", Frequency: 1},
	}, got)
}

func TestRankRespectsTopN(t *testing.T) {
	e := NewExtractor(stopwords.English(), memory.Seed())
	tokens := tokenize.Words("alphabet1 becoming becoming becoming carefully carefully detailed")

	got := e.Rank(tokens, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "becoming", got[0].Word)
	assert.Equal(t, "carefully", got[1].Word)

	assert.Len(t, e.Rank(tokens, 0), 3, "non-positive topN falls back to the default")
}

func TestRankSkipsShortWordsAndStopwords(t *testing.T) {
	e := NewExtractor(stopwords.English(), memory.Seed())
	tokens := tokenize.Words("Ourselves themselves yourselves wouldn't. Cat dog bird tiny small little. Systematic!")

	for _, w := range e.Rank(tokens, 10) {
		assert.GreaterOrEqual(t, utf8.RuneCountInString(w.Word), DefaultMinLength)
		assert.False(t, stopwords.English().Contains(w.Word), w.Word)
	}
	assert.Equal(t, []domain.HardWord{{Word: "systematic", Frequency: 1}}, e.Rank(tokens, 10))
}

func TestExtractGlosses(t *testing.T) {
	e := NewExtractor(stopwords.English(), memory.Seed())
	got, err := e.Extract(context.Background(), tokenize.Words("The paradox of the passage: a paradox nobody untangled."), 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.HardWord{
		{Word: "paradox", Frequency: 2, Gloss: "a statement that contradicts itself"},
		{Word: "passage", Frequency: 1, Gloss: "a section of text; particularly a section of medium length"},
		{Word: "untangled", Frequency: 1, Gloss: domain.GlossNotFound},
	}, got)
}

func TestExtractEmpty(t *testing.T) {
	e := NewExtractor(stopwords.English(), memory.Seed())
	got, err := e.Extract(context.Background(), nil, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractLexiconFailure(t *testing.T) {
	e := NewExtractor(stopwords.English(), brokenLexicon{})
	_, err := e.Extract(context.Background(), []string{"comprehensive", "comprehension"}, 10)
	assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
	assert.ErrorContains(t, err, "database is locked")
}

func TestExtractMissingResources(t *testing.T) {
	_, err := (&Extractor{}).Extract(context.Background(), []string{"anything"}, 1)
	assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
}
