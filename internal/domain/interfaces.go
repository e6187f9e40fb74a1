package domain

import "context"

// StopwordSet is a fixed membership test over lowercase words.
type StopwordSet interface {
	Contains(word string) bool
}

// Readability computes readability formulas over normalized prose.
type Readability interface {
	Ease(text string) float64
	Grade(text string) float64
}

// SentimentScorer estimates the sentiment polarity of text in [-1, 1].
type SentimentScorer interface {
	Polarity(text string) float64
}

// Lexicon looks up the first dictionary sense of a word.
// Implementations return ErrNotFound when the word has no sense.
type Lexicon interface {
	Define(ctx context.Context, word string) (string, error)
}

// Completer sends a prompt to a generative text service and returns its reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// PassageAnalyzer defines the operations exposed by the application core.
type PassageAnalyzer interface {
	Analyze(ctx context.Context, passage string) (*AnalysisResult, error)
	Report(ctx context.Context, passage string) (*Report, error)
}
