package discourse

import "rcanalyzer/internal/domain"

// Polarity beyond ±toneThreshold is Positive or Negative; anything in
// between is Neutral.
const toneThreshold = 0.1

// Tone classifies a polarity score.
func Tone(polarity float64) domain.Tone {
	switch {
	case polarity > toneThreshold:
		return domain.Positive
	case polarity < -toneThreshold:
		return domain.Negative
	default:
		return domain.Neutral
	}
}

// EstimateTone scores text with s and classifies the result.
func EstimateTone(text string, s domain.SentimentScorer) domain.Tone {
	return Tone(s.Polarity(text))
}
