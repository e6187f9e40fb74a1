// Package sentiment scores the polarity of English prose with a word
// valence lexicon.
//
// Each lexicon word contributes its valence (-5 to +5). A directly
// preceding intensifier ("very", "extremely") scales it by 1.5, a preceding
// negator ("not", "never", "n't") scales it by -0.5. Words missing from the
// lexicon are looked up by their Porter2 stem, so "loved" scores as "love".
// The polarity is the summed valence over 5 times the number of scored words
// plus a neutral prior, so a single mild word does not decide the tone.
package sentiment

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kljensen/snowball"

	"rcanalyzer/internal/tokenize"
)

//go:embed lexicon.tsv
var lexiconData string

const (
	maxValence = 5
	// neutralPrior counts as that many unscored words in the denominator.
	neutralPrior = 8
	negation     = -0.5
)

var (
	negators = map[string]struct{}{
		"not": {}, "no": {}, "never": {}, "n't": {}, "without": {}, "nor": {}, "neither": {},
	}
	intensifiers = map[string]float64{
		"very": 1.5, "extremely": 1.5, "really": 1.5, "deeply": 1.5, "truly": 1.5,
		"incredibly": 1.5, "so": 1.5, "too": 1.5, "highly": 1.5, "utterly": 1.5,
	}
)

// Analyzer is a lexicon-based polarity scorer. It is safe for concurrent use.
type Analyzer struct {
	valences map[string]int
	stems    map[string]int
	tok      *tokenize.Treebank
}

// New returns an analyzer over the embedded lexicon.
func New() *Analyzer {
	a, err := Load(strings.NewReader(lexiconData))
	if err != nil {
		panic(fmt.Sprintf("sentiment: embedded lexicon: %v", err))
	}
	return a
}

// Load reads "word<TAB>valence" lines.
func Load(r io.Reader) (*Analyzer, error) {
	valences := make(map[string]int)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, v, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("sentiment lexicon line %d: want word<TAB>valence", lineNo)
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < -maxValence || n > maxValence {
			return nil, fmt.Errorf("sentiment lexicon line %d: bad valence %q", lineNo, v)
		}
		valences[strings.ToLower(strings.TrimSpace(word))] = n
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	// Only words that are their own stem are indexed, so "used" does not
	// inherit the valence of "useful".
	stems := make(map[string]int, len(valences))
	for word, v := range valences {
		if stem(word) == word {
			stems[word] = v
		}
	}
	return &Analyzer{valences: valences, stems: stems, tok: tokenize.NewTreebank()}, nil
}

func stem(word string) string {
	s, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return s
}

func (a *Analyzer) valence(word string) (int, bool) {
	if v, ok := a.valences[word]; ok {
		return v, true
	}
	v, ok := a.stems[stem(word)]
	return v, ok
}

// Polarity returns a score in [-1, 1]; 0 for text with no scored words.
func (a *Analyzer) Polarity(text string) float64 {
	var (
		sum    float64
		scored int
		negate bool
		scale  = 1.0
	)
	for _, tok := range a.tok.Split(strings.ToLower(text)) {
		if _, ok := negators[tok]; ok {
			negate = true
			continue
		}
		if m, ok := intensifiers[tok]; ok {
			scale *= m
			continue
		}
		if !tokenize.IsAlpha(tok) {
			negate, scale = false, 1
			continue
		}
		if v, ok := a.valence(tok); ok {
			s := float64(v) * scale
			if negate {
				s *= negation
			}
			sum += s
			scored++
		}
		negate, scale = false, 1
	}
	if scored == 0 {
		return 0
	}
	p := sum / float64(maxValence*(scored+neutralPrior))
	return math.Max(-1, math.Min(1, p))
}
