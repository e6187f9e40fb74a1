// Package tokenize splits prose into Penn Treebank style word tokens and
// filters them down to alphabetic words and content words.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"

	"rcanalyzer/internal/domain"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

func r(expr, repl string) rule {
	return rule{re: regexp.MustCompile(expr), repl: repl}
}

// Treebank is a regular-expression word tokenizer following the Penn
// Treebank conventions: punctuation is split off, contractions keep their
// apostrophe on the second half ("don't" -> "do", "n't").
type Treebank struct {
	startingQuotes []rule
	punctuation    []rule
	parens         rule
	dashes         rule
	endingQuotes   []rule
	contractions   []rule
}

func NewTreebank() *Treebank {
	return &Treebank{
		startingQuotes: []rule{
			r(`^"`, "``"),
			r("(``)", " $1 "),
			r(`([ (\[{<])("|'')`, "$1 `` "),
		},
		punctuation: []rule{
			r(`([:,])([^\d])`, " $1 $2"),
			r(`([:,])$`, " $1 "),
			r(`\.\.\.`, " ... "),
			r(`[;@#$%&]`, " $0 "),
			// Periods are split off wherever they end a word, not only at the
			// end of the text, so sentence-final words survive the alphabetic
			// filter.
			r(`([^.])(\.)([\])}>"']*)(\s|$)`, "$1 $2$3 $4"),
			r(`[?!]`, " $0 "),
			r(`([^'])' `, "$1 ' "),
		},
		parens: r(`[\][(){}<>]`, " $0 "),
		dashes: r(`--`, " -- "),
		endingQuotes: []rule{
			r(`"`, " '' "),
			r(`(\S)('')`, "$1 $2 "),
			r(`([^' ])('[sS]|'[mM]|'[dD]|') `, "$1 $2 "),
			r(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `, "$1 $2 "),
		},
		contractions: []rule{
			r(`(?i)\b(can)(not)\b`, " $1 $2 "),
			r(`(?i)\b(d)('ye)\b`, " $1 $2 "),
			r(`(?i)\b(gim)(me)\b`, " $1 $2 "),
			r(`(?i)\b(gon)(na)\b`, " $1 $2 "),
			r(`(?i)\b(got)(ta)\b`, " $1 $2 "),
			r(`(?i)\b(lem)(me)\b`, " $1 $2 "),
			r(`(?i)\b(more)('n)\b`, " $1 $2 "),
			r(`(?i)\b(wan)(na)(\s)`, " $1 $2$3"),
			r(`(?i) ('t)(is)\b`, " $1 $2 "),
			r(`(?i) ('t)(was)\b`, " $1 $2 "),
		},
	}
}

// Split returns every token of text, punctuation included.
func (t *Treebank) Split(text string) []string {
	text = apply(text, t.startingQuotes)
	text = apply(text, t.punctuation)
	text = t.parens.re.ReplaceAllString(text, t.parens.repl)
	text = t.dashes.re.ReplaceAllString(text, t.dashes.repl)
	text = " " + text + " "
	text = apply(text, t.endingQuotes)
	text = apply(text, t.contractions)
	return strings.Fields(text)
}

func apply(text string, rules []rule) string {
	for _, rl := range rules {
		text = rl.re.ReplaceAllString(text, rl.repl)
	}
	return text
}

// Words lowercases text, tokenizes it and keeps only tokens made entirely of
// letters. Numbers, punctuation and mixed tokens such as "n't" or "b2b" are
// dropped.
func (t *Treebank) Words(text string) []string {
	var words []string
	for _, tok := range t.Split(strings.ToLower(text)) {
		if IsAlpha(tok) {
			words = append(words, tok)
		}
	}
	return words
}

// IsAlpha reports whether s is non-empty and every rune is a letter.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	return true
}

// FilterStopwords returns the tokens that are not in stop.
func FilterStopwords(tokens []string, stop domain.StopwordSet) []string {
	var content []string
	for _, tok := range tokens {
		if stop.Contains(tok) {
			continue
		}
		content = append(content, tok)
	}
	return content
}

var std = NewTreebank()

// Words tokenizes text with the package tokenizer.
func Words(text string) []string { return std.Words(text) }
