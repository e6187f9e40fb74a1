package main

import (
	"context"
	"fmt"
	"time"

	"rcanalyzer/internal/config"
	"rcanalyzer/internal/delegate"
	"rcanalyzer/internal/delegate/openai"
	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/lexicon"
	"rcanalyzer/internal/lexicon/memory"
	"rcanalyzer/internal/lexicon/sqlite"
	"rcanalyzer/internal/logger"
	"rcanalyzer/internal/readability"
	"rcanalyzer/internal/sentiment"
	"rcanalyzer/internal/service"
	"rcanalyzer/internal/stopwords"
)

type appOptions struct {
	withAI bool
	top    int
}

type app struct {
	cfg     *config.AppConfig
	log     logger.Logger
	svc     *service.AnalyzerImpl
	closers []func() error
}

func loadConfig(path string) (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if path == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newApp assembles the analyzer from configuration.
func newApp(ctx context.Context, cfgPath string, opts appOptions) (*app, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	a := &app{cfg: cfg, log: log}

	var stop *stopwords.Set
	switch cfg.Stopwords.Path {
	case "":
		stop = stopwords.English()
	default:
		stop, err = stopwords.Load(cfg.Stopwords.Path)
		if err != nil {
			return nil, err
		}
	}

	var lex domain.Lexicon
	switch cfg.Lexicon.Type {
	case "memory", "":
		lex = memory.Seed()
	case "sqlite":
		store, err := sqlite.Open(ctx, cfg.Lexicon.SQLite.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		lex = store
	default:
		return nil, fmt.Errorf("unknown lexicon: %s", cfg.Lexicon.Type)
	}
	cached, err := lexicon.NewCached(lex, cfg.Lexicon.CacheSize)
	if err != nil {
		a.Close()
		return nil, err
	}

	var adapter *delegate.Adapter
	if opts.withAI {
		adapter, err = a.newDelegate()
		if err != nil {
			log.Warn("ai analysis disabled", "err", err)
		}
	}

	svcOpts := []service.Option{
		service.WithTopHardWords(cfg.Analyzer.TopHardWords),
		service.WithMinHardWordLength(cfg.Analyzer.MinHardWordLength),
	}
	if opts.top > 0 {
		svcOpts = append(svcOpts, service.WithTopHardWords(opts.top))
	}
	a.svc, err = service.NewAnalyzer(service.Resources{
		Stopwords:   stop,
		Lexicon:     cached,
		Readability: readability.Flesch{},
		Sentiment:   sentiment.New(),
	}, adapter, log, svcOpts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	log.Debug("analyzer ready", "lexicon", cfg.Lexicon.Type, "delegate", adapter != nil)
	return a, nil
}

func (a *app) newDelegate() (*delegate.Adapter, error) {
	switch a.cfg.Delegate.Type {
	case "none", "":
		return nil, fmt.Errorf("no delegate configured")
	case "openai":
		oc := a.cfg.Delegate.OpenAI
		client, err := openai.NewClient(openai.Config{
			BaseURL:     oc.BaseURL,
			APIKeyEnv:   oc.APIKeyEnv,
			Model:       oc.Model,
			Timeout:     time.Duration(oc.TimeoutSecs) * time.Second,
			MaxRetries:  oc.Retries(),
			Temperature: oc.Temperature,
			MaxTokens:   oc.MaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("openai delegate init failed: %w", err)
		}
		return delegate.NewAdapter(client), nil
	default:
		return nil, fmt.Errorf("unknown delegate: %s", a.cfg.Delegate.Type)
	}
}

// delegateTimeout bounds one AI call including its retries.
func (a *app) delegateTimeout() time.Duration {
	oc := a.cfg.Delegate.OpenAI
	if oc == nil {
		return 0
	}
	return time.Duration(oc.TimeoutSecs*(oc.Retries()+1)) * time.Second
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn("close failed", "err", err)
		}
	}
	a.closers = nil
}
