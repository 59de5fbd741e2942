package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_BASE_URL"

	DefaultBaseURL = "https://api.openai.com/v1"
)

// ErrMissingAPIKey is returned by Validate when no credential was found.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " is not set (environment or .env file)")

type Config struct {
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summary       SummaryConfig       `yaml:"summary"`
	Log           LogConfig           `yaml:"log"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type TranscriptionConfig struct {
	Model          string        `yaml:"model"`
	Language       string        `yaml:"language"`
	ResponseFormat string        `yaml:"response_format"`
	Timeout        time.Duration `yaml:"timeout"`
}

type SummaryConfig struct {
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Prompt      string        `yaml:"prompt"`
	Timeout     time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Options selects where configuration is read from. Both fields are optional.
type Options struct {
	ConfigPath string
	EnvFile    string
}

// Load applies the dotenv file, reads the optional YAML file and lets the
// process environment override both. The result is not validated.
func Load(opts Options) (*Config, error) {
	if err := loadDotEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	var cfg Config
	if opts.ConfigPath != "" {
		data, err := os.ReadFile(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.OpenAI.BaseURL = v
	}

	cfg.setDefaults()

	return &cfg, nil
}

// loadDotEnv never overrides variables already present in the environment.
// A missing default .env is fine, a missing explicit one is not.
func loadDotEnv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading .env file: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = DefaultBaseURL
	}
	if c.Transcription.Model == "" {
		c.Transcription.Model = "whisper-1"
	}
	if c.Transcription.ResponseFormat == "" {
		c.Transcription.ResponseFormat = "json"
	}
	if c.Transcription.Timeout == 0 {
		c.Transcription.Timeout = 30 * time.Minute
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gpt-4o-mini"
	}
	if c.Summary.Temperature == 0 {
		c.Summary.Temperature = 0.2
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return ErrMissingAPIKey
	}

	switch c.Transcription.ResponseFormat {
	case "json", "text", "vtt":
	default:
		return fmt.Errorf("transcription.response_format %q is not supported (json, text, vtt)", c.Transcription.ResponseFormat)
	}

	if c.Transcription.Timeout < 0 {
		return fmt.Errorf("transcription.timeout must not be negative")
	}
	if c.Summary.Timeout < 0 {
		return fmt.Errorf("summary.timeout must not be negative")
	}

	return nil
}
