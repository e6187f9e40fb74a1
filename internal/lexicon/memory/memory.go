package memory

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/lexicon"
)

//go:embed seed.tsv
var seedData string

// Lexicon is an in-memory word -> first sense map.
type Lexicon struct {
	glosses map[string]string
}

// New builds a lexicon from entries, keeping the lowest sense of each word.
func New(entries []lexicon.Entry) *Lexicon {
	best := make(map[string]int, len(entries))
	glosses := make(map[string]string, len(entries))
	for _, e := range entries {
		if s, ok := best[e.Word]; ok && s <= e.Sense {
			continue
		}
		best[e.Word] = e.Sense
		glosses[e.Word] = e.Gloss
	}
	return &Lexicon{glosses: glosses}
}

// Load parses a TSV glossary from r.
func Load(r io.Reader) (*Lexicon, error) {
	entries, err := lexicon.ParseTSV(r)
	if err != nil {
		return nil, err
	}
	return New(entries), nil
}

// Seed returns the lexicon built from the embedded glossary.
func Seed() *Lexicon {
	lx, err := Load(strings.NewReader(seedData))
	if err != nil {
		panic(fmt.Sprintf("memory lexicon: embedded seed: %v", err))
	}
	return lx
}

func (l *Lexicon) Define(_ context.Context, word string) (string, error) {
	if g, ok := l.glosses[strings.ToLower(word)]; ok {
		return g, nil
	}
	return "", domain.ErrNotFound
}

// Len returns the number of words with at least one sense.
func (l *Lexicon) Len() int { return len(l.glosses) }
