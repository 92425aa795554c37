package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/history"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/semantic"
)

// app holds the collaborators shared by every command.
type app struct {
	cfg     config.Config
	logger  zerolog.Logger
	history *history.History
	closers []func() error
}

// loadConfig reads --config when given, fills defaults and the environment, and validates.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	cfg.ApplyEnv()
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newApp loads configuration and opens the history store. Logs go to logOut.
func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, logger, err := setup(logOut)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	hist, err := history.Open(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	logger.Debug().Str("backend", cfg.HistoryBackend).Int("records", hist.Len()).Msg("history loaded")

	return &app{
		cfg:     cfg,
		logger:  logger,
		history: hist,
		closers: []func() error{hist.Close},
	}, nil
}

// setup loads configuration and builds the logger.
func setup(logOut io.Writer) (config.Config, zerolog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, observability.NewLogger(logOut, cfg.LogFormat, cfg.Verbose), nil
}

// openStore opens the configured backend without reading it.
func openStore(ctx context.Context, cfg config.Config) (history.Store, error) {
	store, err := history.OpenStore(ctx, history.Options{
		Backend:     cfg.HistoryBackend,
		Path:        cfg.HistoryPath,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}

// unreadableHistory reports whether err means the stored history exists but cannot be decoded.
func unreadableHistory(err error) bool {
	var corrupt *history.CorruptHistoryError
	var future *history.UnsupportedVersionError
	return errors.As(err, &corrupt) || errors.As(err, &future)
}

// analyzer builds the embedder, probes it once and wires the analysis pipeline.
// An unreachable model fails here, before any input is read.
func (a *app) analyzer(ctx context.Context) (*analysis.Analyzer, error) {
	embedder, err := a.embedder(ctx)
	if err != nil {
		return nil, err
	}

	scorer, err := semantic.NewScorer(ctx, embedder, a.logger)
	if err != nil {
		return nil, err
	}

	return analysis.New(extraction.NewRegistry(), scorer, a.history, a.logger), nil
}

func (a *app) embedder(ctx context.Context) (semantic.Embedder, error) {
	switch a.cfg.EmbeddingProvider {
	case semantic.ProviderHashing:
		a.logger.Warn().Msg("using offline hashing embedder; semantic scores are approximate")
		return semantic.HashingEmbedder{}, nil
	default:
		g, err := semantic.NewGeminiEmbedder(ctx, a.cfg.APIKey, a.cfg.EmbeddingModel)
		if err != nil {
			return nil, &semantic.ModelUnavailableError{Model: a.cfg.EmbeddingModel, Cause: err}
		}
		a.closers = append(a.closers, g.Close)
		return g, nil
	}
}

// jobFetcher returns a fetcher honoring the use_browser setting.
func (a *app) jobFetcher() *fetch.JobFetcher {
	opts := fetch.DefaultOptions()
	opts.UseBrowser = a.cfg.UseBrowser
	return &fetch.JobFetcher{Options: opts, Logger: a.logger}
}

// Close releases every resource in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn().Err(err).Msg("close failed")
		}
	}
}
