// Package config loads LearningHub settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	envConfig  = "LEARNINGHUB_CONFIG"
	envProfile = "LEARNINGHUB_PROFILE"
	envDB      = "LEARNINGHUB_DB"
)

// Server modes, mirroring gin's.
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)

// Config is the full application configuration.
type Config struct {
	Profile    string           `yaml:"profile"`
	DB         string           `yaml:"db"`
	LLM        LLMConfig        `yaml:"llm"`
	Limits     LimitsConfig     `yaml:"limits"`
	Generation GenerationConfig `yaml:"generation"`
	Server     ServerConfig     `yaml:"server"`
}

// LLMConfig overrides provider settings discovered from the environment.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

// LimitsConfig holds the per-profile allowances assigned on first use.
type LimitsConfig struct {
	Quizzes    int `yaml:"quizzes"`
	Flashcards int `yaml:"flashcards"`
}

type GenerationConfig struct {
	MaxQuestions  int     `yaml:"max_questions"`
	MaxFlashcards int     `yaml:"max_flashcards"`
	Temperature   float64 `yaml:"temperature"`
	MaxTokens     int     `yaml:"max_tokens"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	Mode          string `yaml:"mode"`
	LogFile       string `yaml:"log_file"`
	RatePerMinute int    `yaml:"rate_per_minute"`
	Burst         int    `yaml:"burst"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Profile: "default",
		Limits: LimitsConfig{
			Quizzes:    15,
			Flashcards: 120,
		},
		Generation: GenerationConfig{
			MaxQuestions:  15,
			MaxFlashcards: 15,
			Temperature:   0.4,
			MaxTokens:     4096,
		},
		Server: ServerConfig{
			Addr:          "127.0.0.1:8080",
			Mode:          ModeRelease,
			RatePerMinute: 6,
			Burst:         3,
		},
	}
}

// Path returns the config file location: explicit, then LEARNINGHUB_CONFIG,
// then the XDG config directory.
func Path(explicit string) string {
	path, _ := locate(explicit)
	return path
}

// locate resolves the config path and reports whether the user named it,
// either with --config or LEARNINGHUB_CONFIG. Only the XDG default may be
// absent.
func locate(explicit string) (path string, named bool) {
	if explicit != "" {
		return explicit, true
	}
	if p := os.Getenv(envConfig); p != "" {
		return p, true
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "learninghub", "config.yaml"), false
}

// Load builds the configuration from defaults, the file at Path(explicit)
// and environment overrides. A missing file is not an error unless it was
// named by flag or LEARNINGHUB_CONFIG.
func Load(explicit string) (Config, error) {
	cfg := Default()

	path, named := locate(explicit)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := Parse(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("%s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !named:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, leaving fields the document omits untouched.
// Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config: %w", err)
	}
	// Any second document, whatever its keys, is an error.
	var extra yaml.Node
	switch err := decoder.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err == nil:
		return fmt.Errorf("parse config: multiple YAML documents are not supported")
	default:
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envProfile); v != "" {
		c.Profile = v
	}
	if v := os.Getenv(envDB); v != "" {
		c.DB = v
	}
}

// Validate checks that limits and server settings are usable.
func (c Config) Validate() error {
	if c.Profile == "" {
		return fmt.Errorf("profile is required")
	}
	if c.Limits.Quizzes <= 0 {
		return fmt.Errorf("limits.quizzes must be positive, got %d", c.Limits.Quizzes)
	}
	if c.Limits.Flashcards <= 0 {
		return fmt.Errorf("limits.flashcards must be positive, got %d", c.Limits.Flashcards)
	}
	if c.Generation.MaxQuestions <= 0 {
		return fmt.Errorf("generation.max_questions must be positive, got %d", c.Generation.MaxQuestions)
	}
	if c.Generation.MaxFlashcards <= 0 {
		return fmt.Errorf("generation.max_flashcards must be positive, got %d", c.Generation.MaxFlashcards)
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 1 {
		return fmt.Errorf("generation.temperature must be within 0..1, got %g", c.Generation.Temperature)
	}
	switch c.Server.Mode {
	case ModeDebug, ModeRelease, ModeTest:
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Server.RatePerMinute <= 0 || c.Server.Burst <= 0 {
		return fmt.Errorf("server.rate_per_minute and server.burst must be positive")
	}
	return nil
}
