// Package stopwords provides the English stopword set used to separate
// content words from grammatical words.
package stopwords

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"rcanalyzer/internal/domain"
)

//go:embed english.txt
var englishData string

// Set is an immutable stopword set. Lookups are exact and expect lowercase
// input.
type Set struct {
	words map[string]struct{}
}

func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords in the set.
func (s *Set) Len() int { return len(s.words) }

var (
	englishOnce sync.Once
	english     *Set
)

// English returns the embedded English stopword set. It is parsed once and
// shared.
func English() *Set {
	englishOnce.Do(func() {
		set, err := Parse(strings.NewReader(englishData))
		if err != nil {
			panic(fmt.Sprintf("stopwords: embedded list: %v", err))
		}
		english = set
	})
	return english
}

// Parse reads one word per line. Blank lines and lines starting with '#' are
// skipped; words are lowercased.
func Parse(r io.Reader) (*Set, error) {
	words := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Set{words: words}, nil
}

// Load reads a stopword list from path.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stopwords %s: %w", path, domain.ErrResourceUnavailable)
		}
		return nil, err
	}
	defer f.Close()
	set, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("stopwords %s: %w", path, err)
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("stopwords %s: empty list: %w", path, domain.ErrResourceUnavailable)
	}
	return set, nil
}
