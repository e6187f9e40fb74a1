package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AnalyzerConfig tunes the rule-based pipeline.
type AnalyzerConfig struct {
	TopHardWords      int `yaml:"top_hard_words" validate:"gte=1"`
	MinHardWordLength int `yaml:"min_hard_word_length" validate:"gte=1"`
}

// StopwordsConfig points at a custom stopword list. Empty means the embedded
// English list.
type StopwordsConfig struct {
	Path string `yaml:"path,omitempty"`
}

// SQLiteLexiconConfig locates the sense database.
type SQLiteLexiconConfig struct {
	Path string `yaml:"path"`
}

// LexiconConfig selects and configures the dictionary used for glosses.
// The memory lexicon is a seed of common passage vocabulary; for full
// coverage import a glossary with "rcanalyzer lexicon import" and use sqlite.
type LexiconConfig struct {
	Type      string               `yaml:"type" validate:"oneof=memory sqlite"`
	CacheSize int                  `yaml:"cache_size" validate:"gte=0"`
	SQLite    *SQLiteLexiconConfig `yaml:"sqlite,omitempty" validate:"required_if=Type sqlite"`
}

// OpenAIDelegateConfig holds configuration for the OpenAI-compatible
// chat completions endpoint.
type OpenAIDelegateConfig struct {
	BaseURL     string  `yaml:"base_url" validate:"omitempty,url"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Model       string  `yaml:"model"`
	TimeoutSecs int     `yaml:"timeout_secs" validate:"gte=0"`
	MaxRetries  *int    `yaml:"max_retries,omitempty" validate:"omitempty,gte=0,lte=10"`
	Temperature float64 `yaml:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `yaml:"max_tokens" validate:"gte=0"`
}

// DelegateConfig selects the optional AI analysis backend.
type DelegateConfig struct {
	Type   string                `yaml:"type" validate:"oneof=none openai"`
	OpenAI *OpenAIDelegateConfig `yaml:"openai,omitempty" validate:"required_if=Type openai"`
}

// Retries returns the configured retry count.
func (c *OpenAIDelegateConfig) Retries() int {
	if c.MaxRetries == nil {
		return defaultMaxRetries
	}
	return *c.MaxRetries
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Stopwords StopwordsConfig `yaml:"stopwords"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	Delegate  DelegateConfig  `yaml:"delegate"`
	Log       LogConfig       `yaml:"log"`
}

const defaultMaxRetries = 3

var validate = validator.New()

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault tries ./rcanalyzer.yaml first, then ~/.config/rcanalyzer/config.yaml.
// If neither exists, it writes defaults to ~/.config/rcanalyzer/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "rcanalyzer.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks field constraints after defaults are applied.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rcanalyzer", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Analyzer: AnalyzerConfig{TopHardWords: 10, MinHardWordLength: 7},
		Lexicon:  LexiconConfig{Type: "memory", CacheSize: 1024},
		Delegate: DelegateConfig{Type: "none"},
		Log:      LogConfig{Level: "info"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Analyzer.TopHardWords == 0 {
		cfg.Analyzer.TopHardWords = def.Analyzer.TopHardWords
	}
	if cfg.Analyzer.MinHardWordLength == 0 {
		cfg.Analyzer.MinHardWordLength = def.Analyzer.MinHardWordLength
	}
	if cfg.Lexicon.Type == "" {
		cfg.Lexicon.Type = def.Lexicon.Type
	}
	if cfg.Lexicon.CacheSize == 0 {
		cfg.Lexicon.CacheSize = def.Lexicon.CacheSize
	}
	if cfg.Delegate.Type == "" {
		cfg.Delegate.Type = def.Delegate.Type
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Delegate.Type == "openai" && cfg.Delegate.OpenAI != nil {
		if cfg.Delegate.OpenAI.BaseURL == "" {
			cfg.Delegate.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Delegate.OpenAI.APIKeyEnv == "" {
			cfg.Delegate.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Delegate.OpenAI.Model == "" {
			cfg.Delegate.OpenAI.Model = "gpt-4o-mini"
		}
		if cfg.Delegate.OpenAI.TimeoutSecs == 0 {
			cfg.Delegate.OpenAI.TimeoutSecs = 60
		}
		// Zero disables retries, so only a missing key gets the default.
		if cfg.Delegate.OpenAI.MaxRetries == nil {
			retries := defaultMaxRetries
			cfg.Delegate.OpenAI.MaxRetries = &retries
		}
	}
}
