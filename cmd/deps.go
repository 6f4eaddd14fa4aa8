package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learninghub/internal/config"
	"github.com/abhisek/learninghub/internal/generate"
	"github.com/abhisek/learninghub/internal/library"
	"github.com/abhisek/learninghub/internal/llm"
	"github.com/abhisek/learninghub/internal/logging"
	"github.com/abhisek/learninghub/internal/store"
)

// deps is everything a command needs, built from flags and config.
type deps struct {
	cfg     config.Config
	profile string
	store   *store.Store
	log     *zap.Logger
	library *library.Service

	// providerErr explains why generation is unavailable; nil when a
	// provider is configured.
	providerErr error
}

// depsOptions tunes how openDeps builds logging and the LLM provider.
type depsOptions struct {
	// console receives log output; nil sends logs only to the configured file.
	console io.Writer

	// requireLLM fails instead of running without generation.
	requireLLM bool
}

// loadConfig reads the config file and applies --profile.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("profile"); p != "" {
		cfg.Profile = p
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file or LEARNINGHUB_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the database without building an LLM
// provider.
func openStore(cmd *cobra.Command) (config.Config, *store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, st, nil
}

func openDeps(cmd *cobra.Command, opts depsOptions) (*deps, error) {
	cfg, st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	console := opts.console
	if console == nil && debug {
		console = os.Stderr
	}
	log := logging.New(logging.Options{Debug: debug, File: cfg.Server.LogFile, Console: console})

	d := &deps{cfg: cfg, profile: cfg.Profile, store: st, log: log}

	provider, err := buildProvider(cmd, cfg, st, log)
	if err != nil {
		if opts.requireLLM {
			d.Close()
			return nil, fmt.Errorf("LLM provider: %w", err)
		}
		d.providerErr = err
		log.Debug("generation unavailable", zap.Error(err))
	}

	var gen library.Generator
	if provider != nil {
		genCfg := generate.DefaultConfig()
		genCfg.MaxQuestions = cfg.Generation.MaxQuestions
		genCfg.MaxFlashcards = cfg.Generation.MaxFlashcards
		genCfg.Temperature = cfg.Generation.Temperature
		genCfg.MaxTokens = cfg.Generation.MaxTokens
		gen = generate.New(provider, genCfg, log)
	}

	d.library = library.NewService(st, gen, library.Config{
		Defaults: store.Limits{
			QuizLimit:      cfg.Limits.Quizzes,
			FlashcardLimit: cfg.Limits.Flashcards,
		},
		MaxQuestions:  cfg.Generation.MaxQuestions,
		MaxFlashcards: cfg.Generation.MaxFlashcards,
	}, log)
	return d, nil
}

// buildProvider resolves LLM settings from the environment, applies the
// config file's llm section on top, and wraps the provider with retry and
// event logging.
func buildProvider(cmd *cobra.Command, cfg config.Config, st *store.Store, log *zap.Logger) (llm.Provider, error) {
	llmCfg, err := llm.ResolveConfig()
	if err != nil {
		if cfg.LLM.Provider == "" {
			return nil, err
		}
		llmCfg = llm.ConfigFromEnv()
	}
	llmCfg.Override(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.BaseURL)
	if err := llmCfg.Validate(); err != nil {
		return nil, err
	}
	return llm.NewProvider(cmd.Context(), llmCfg, st.EventRepo(), log)
}

func (d *deps) Close() {
	_ = d.log.Sync()
	_ = d.store.Close()
}
