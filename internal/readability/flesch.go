// Package readability implements the Flesch Reading Ease and Flesch-Kincaid
// grade formulas.
package readability

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Counts are the raw quantities both formulas are built from.
type Counts struct {
	Words     int
	Sentences int
	Syllables int
}

// Flesch computes both Flesch formulas. The zero value is ready to use.
type Flesch struct{}

var sentenceEnders = regexp.MustCompile(`[.!?]+`)

// Count returns the word, sentence and syllable counts of text.
func (Flesch) Count(text string) Counts {
	var c Counts
	for _, field := range strings.Fields(text) {
		w := cleanWord(field)
		if w == "" {
			continue
		}
		c.Words++
		c.Syllables += Syllables(w)
	}
	for _, s := range sentenceEnders.Split(text, -1) {
		if strings.IndexFunc(s, isWordRune) >= 0 {
			c.Sentences++
		}
	}
	if c.Sentences == 0 && c.Words > 0 {
		c.Sentences = 1
	}
	return c
}

// Ease returns 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words),
// rounded to two decimals. Empty text scores 0.
func (f Flesch) Ease(text string) float64 {
	c := f.Count(text)
	if c.Words == 0 {
		return 0
	}
	wps := float64(c.Words) / float64(c.Sentences)
	spw := float64(c.Syllables) / float64(c.Words)
	return round2(206.835 - 1.015*wps - 84.6*spw)
}

// Grade returns 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59,
// rounded to two decimals. Empty text scores 0.
func (f Flesch) Grade(text string) float64 {
	c := f.Count(text)
	if c.Words == 0 {
		return 0
	}
	wps := float64(c.Words) / float64(c.Sentences)
	spw := float64(c.Syllables) / float64(c.Words)
	return round2(0.39*wps + 11.8*spw - 15.59)
}

// Syllables estimates the syllables in a single word by counting vowel
// groups. A silent trailing "e" is not counted unless the word ends in a
// consonant + "le". Every word has at least one syllable.
func Syllables(word string) int {
	word = strings.ToLower(word)
	runes := []rune(word)
	count := 0
	prevVowel := false
	for _, c := range runes {
		v := isVowel(c)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	n := len(runes)
	if n > 2 && runes[n-1] == 'e' && !isVowel(runes[n-2]) {
		if !(runes[n-2] == 'l' && !isVowel(runes[n-3])) {
			count--
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(c rune) bool {
	return strings.ContainsRune("aeiouy", c)
}

func isWordRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

func cleanWord(s string) string {
	return strings.Map(func(c rune) rune {
		if isWordRune(c) {
			return c
		}
		return -1
	}, s)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
