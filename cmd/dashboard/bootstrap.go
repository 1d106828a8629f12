package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"social-sentiment-dashboard/internal/feed"
	"social-sentiment-dashboard/internal/feed/feedobs"
	"social-sentiment-dashboard/internal/interfaces"
	"social-sentiment-dashboard/internal/logger"
	"social-sentiment-dashboard/internal/pipeline"
	"social-sentiment-dashboard/internal/sentiment"
	"social-sentiment-dashboard/internal/store"
	"social-sentiment-dashboard/internal/trace"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// initializeSystem initializes logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(version); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig reads CONFIG_PATH, falling back to config.yaml
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// initializeFetcher builds the configured fetch strategy with observability
func initializeFetcher(ctx context.Context, cfg *store.Config) (interfaces.PostFetcher, error) {
	fetcher, err := feed.NewFetcher(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Post fetcher ready",
		"source", fetcher.Source(),
		"base_url", cfg.Fetch.BaseURL,
		"timeout", cfg.FetchTimeout().String(),
		"concurrency", cfg.Fetch.Concurrency)
	return feedobs.Wrap(fetcher), nil
}

// initializePipeline wires the fetcher to a scorer backed by one shared analyzer
func initializePipeline(cfg *store.Config, fetcher interfaces.PostFetcher) *pipeline.Pipeline {
	analyzer := sentiment.NewAnalyzer()
	scorer := sentiment.NewScorer(analyzer)

	return pipeline.New(fetcher, scorer, pipeline.Options{
		FetchTimeout: cfg.FetchTimeout(),
		Concurrency:  cfg.Fetch.Concurrency,
		Limits: pipeline.Limits{
			Min:     cfg.Dashboard.LimitMin,
			Max:     cfg.Dashboard.LimitMax,
			Step:    cfg.Dashboard.LimitStep,
			Default: cfg.Dashboard.LimitDefault,
		},
	})
}

// shutdownSystem flushes spans
func shutdownSystem(ctx context.Context) {
	if err := trace.Shutdown(ctx); err != nil {
		logger.WarnWithErr(ctx, "Tracer shutdown failed", err)
	}
}
