package service

import (
	"context"
	"fmt"
	"reflect"

	"rcanalyzer/internal/delegate"
	"rcanalyzer/internal/discourse"
	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/keywords"
	"rcanalyzer/internal/logger"
	"rcanalyzer/internal/metrics"
	"rcanalyzer/internal/segment"
	"rcanalyzer/internal/tokenize"
)

// Resources are the read-only collaborators of the pipeline. They are loaded
// once by the caller and shared across analyses.
type Resources struct {
	Stopwords   domain.StopwordSet
	Lexicon     domain.Lexicon
	Readability domain.Readability
	Sentiment   domain.SentimentScorer
}

func (r Resources) check() error {
	switch {
	case isNil(r.Stopwords):
		return fmt.Errorf("stopword set: %w", domain.ErrResourceUnavailable)
	case isNil(r.Lexicon):
		return fmt.Errorf("lexicon: %w", domain.ErrResourceUnavailable)
	case isNil(r.Readability):
		return fmt.Errorf("readability formulas: %w", domain.ErrResourceUnavailable)
	case isNil(r.Sentiment):
		return fmt.Errorf("sentiment scorer: %w", domain.ErrResourceUnavailable)
	}
	return nil
}

// isNil also catches a nil pointer stored in a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

type options struct {
	topHardWords int
	minLength    int
}

// Option adjusts the analyzer.
type Option func(*options)

// WithTopHardWords sets how many hard words are reported.
func WithTopHardWords(n int) Option {
	return func(o *options) { o.topHardWords = n }
}

// WithMinHardWordLength sets the shortest word counted as hard.
func WithMinHardWordLength(n int) Option {
	return func(o *options) { o.minLength = n }
}

// AnalyzerImpl runs the rule-based pipeline and, when a delegate is set, the
// AI analysis.
type AnalyzerImpl struct {
	res       Resources
	segmenter *segment.Segmenter
	tokenizer *tokenize.Treebank
	central   *discourse.CentralIdea
	delegate  *delegate.Adapter
	opts      options
	log       logger.Logger
}

// NewAnalyzer checks res and returns an analyzer. delegateAdapter may be nil.
func NewAnalyzer(res Resources, delegateAdapter *delegate.Adapter, log logger.Logger, opts ...Option) (*AnalyzerImpl, error) {
	if err := res.check(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	defaults := options{topHardWords: keywords.DefaultTopN, minLength: keywords.DefaultMinLength}
	for _, o := range opts {
		o(&defaults)
	}
	return &AnalyzerImpl{
		res:       res,
		segmenter: segment.NewSegmenter(),
		tokenizer: tokenize.NewTreebank(),
		central:   discourse.NewCentralIdea(res.Stopwords),
		delegate:  delegateAdapter,
		opts:      defaults,
		log:       log.With("component", "analyzer"),
	}, nil
}

var _ domain.PassageAnalyzer = (*AnalyzerImpl)(nil)

// HasDelegate reports whether AI analysis is configured.
func (s *AnalyzerImpl) HasDelegate() bool { return s.delegate != nil }

// Analyze runs the rule-based pipeline over passage. It returns
// domain.ErrEmptyInput when the passage has no text after normalization.
func (s *AnalyzerImpl) Analyze(ctx context.Context, passage string) (*domain.AnalysisResult, error) {
	if err := s.res.check(); err != nil {
		return nil, err
	}
	o := s.opts

	text := s.segmenter.Normalize(passage)
	if text == "" {
		return nil, domain.ErrEmptyInput
	}
	sentences := s.segmenter.Sentences(text)
	tokens := s.tokenizer.Words(text)
	content := tokenize.FilterStopwords(tokens, s.res.Stopwords)
	s.log.Debug("passage tokenized", "sentences", len(sentences), "tokens", len(tokens), "content", len(content))

	extractor := keywords.NewExtractor(s.res.Stopwords, s.res.Lexicon)
	extractor.MinLength = o.minLength
	hard, err := extractor.Extract(ctx, tokens, o.topHardWords)
	if err != nil {
		return nil, fmt.Errorf("extract hard words: %w", err)
	}

	result := &domain.AnalysisResult{
		Metrics:     metrics.Compute(text, tokens, content, s.res.Readability),
		HardWords:   hard,
		Tone:        discourse.EstimateTone(text, s.res.Sentiment),
		CentralIdea: s.central.Select(sentences, content),
		Structure:   discourse.ClassifyStructure(text, len(sentences)),
	}
	s.log.Debug("passage analyzed",
		"words", result.TotalWords,
		"grade", result.FleschKincaidGrade,
		"difficulty", result.Difficulty.Label(),
		"tone", result.Tone.String(),
		"structure", result.Structure.String(),
	)
	return result, nil
}

// Report analyzes passage and, if a delegate is configured, appends the AI
// analysis. A delegate failure is recorded in Report.AIError and never
// discards the rule-based result.
func (s *AnalyzerImpl) Report(ctx context.Context, passage string) (*domain.Report, error) {
	result, err := s.Analyze(ctx, passage)
	if err != nil {
		return nil, err
	}
	report := &domain.Report{Result: result}
	if s.delegate == nil {
		return report, nil
	}
	ai, err := s.delegate.Analyze(ctx, passage)
	if err != nil {
		s.log.Warn("ai analysis failed", "err", err)
		report.AIError = err.Error()
		return report, nil
	}
	report.AI = ai
	return report, nil
}
