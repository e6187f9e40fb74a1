// Package metrics computes surface statistics and the difficulty bucket of a
// passage.
package metrics

import "rcanalyzer/internal/domain"

// Grade thresholds. Each bucket includes its lower bound.
const (
	moderateGrade = 10
	hardGrade     = 12
	veryHardGrade = 14
	extremeGrade  = 16
)

// Compute returns the metrics of normalized text given its alphabetic tokens
// and content words. The readability formulas run on the text itself.
func Compute(normalized string, tokens, content []string, r domain.Readability) domain.Metrics {
	grade := r.Grade(normalized)
	return domain.Metrics{
		TotalWords:         len(tokens),
		LexicalDensity:     LexicalDensity(len(content), len(tokens)),
		FleschReadingEase:  r.Ease(normalized),
		FleschKincaidGrade: grade,
		Difficulty:         Classify(grade),
	}
}

// LexicalDensity returns content/total, or 0 when there are no words.
func LexicalDensity(content, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(content) / float64(total)
}

// Classify buckets a Flesch-Kincaid grade.
func Classify(grade float64) domain.Difficulty {
	switch {
	case grade < moderateGrade:
		return domain.Easy
	case grade < hardGrade:
		return domain.Moderate
	case grade < veryHardGrade:
		return domain.Hard
	case grade < extremeGrade:
		return domain.VeryHard
	default:
		return domain.Extreme
	}
}
