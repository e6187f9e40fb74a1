// Package lexicon holds the dictionary-sense resources used to gloss hard
// words, plus a caching wrapper shared by every backend.
package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"rcanalyzer/internal/domain"
)

// Entry is one sense of a word. Senses are numbered from 1 in the order they
// appear in the source.
type Entry struct {
	Word  string
	Sense int
	Gloss string
}

// ParseTSV reads "word<TAB>gloss" lines. Blank lines and lines starting with
// '#' are skipped. Words are lowercased; repeated words become later senses.
func ParseTSV(r io.Reader) ([]Entry, error) {
	var entries []Entry
	senses := make(map[string]int)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, gloss, ok := strings.Cut(line, "\t")
		word = strings.ToLower(strings.TrimSpace(word))
		gloss = strings.TrimSpace(gloss)
		if !ok || word == "" || gloss == "" {
			return nil, fmt.Errorf("lexicon line %d: want word<TAB>gloss", lineNo)
		}
		senses[word]++
		entries = append(entries, Entry{Word: word, Sense: senses[word], Gloss: gloss})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

type cached struct {
	gloss string
	found bool
}

// Cached memoizes lookups of an underlying lexicon, misses included.
type Cached struct {
	next  domain.Lexicon
	cache *lru.Cache[string, cached]
}

// NewCached wraps next with an LRU cache of size entries.
func NewCached(next domain.Lexicon, size int) (*Cached, error) {
	if next == nil {
		return nil, fmt.Errorf("lexicon cache: %w", domain.ErrResourceUnavailable)
	}
	if size <= 0 {
		size = 1024
	}
	cache, err := lru.New[string, cached](size)
	if err != nil {
		return nil, fmt.Errorf("lexicon cache: %w", err)
	}
	return &Cached{next: next, cache: cache}, nil
}

func (c *Cached) Define(ctx context.Context, word string) (string, error) {
	if hit, ok := c.cache.Get(word); ok {
		if !hit.found {
			return "", domain.ErrNotFound
		}
		return hit.gloss, nil
	}
	gloss, err := c.next.Define(ctx, word)
	switch {
	case err == nil:
		c.cache.Add(word, cached{gloss: gloss, found: true})
	case errors.Is(err, domain.ErrNotFound):
		c.cache.Add(word, cached{})
	}
	return gloss, err
}

// Len returns the number of cached words.
func (c *Cached) Len() int { return c.cache.Len() }
