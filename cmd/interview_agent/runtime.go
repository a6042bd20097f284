package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/interview-scorer/internal/config"
	"github.com/jonathan/interview-scorer/internal/embedding"
	"github.com/jonathan/interview-scorer/internal/llm"
	"github.com/jonathan/interview-scorer/internal/logging"
	"github.com/jonathan/interview-scorer/internal/matching"
)

// components bundles the shared runtime pieces commands build from
// configuration. client and matcher stay nil without an API key; the
// session manager then runs on curated questions and heuristic scoring.
type components struct {
	cfg      *config.Config
	logger   *zap.Logger
	client   llm.Client
	matcher  *matching.Matcher
	embedder *embedding.GeminiEmbedder
}

// buildComponents loads configuration and constructs the model client and
// matcher when an API key is configured.
func buildComponents(ctx context.Context) (*components, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.JSON, cfg.Log.Level == "debug")
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	c := &components{cfg: cfg, logger: logger}
	if cfg.LLM.APIKey == "" {
		return c, nil
	}

	client, err := llm.NewClient(ctx, nil, cfg.LLM.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	c.client = client

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.LLM.APIKey, cfg.Embedding.Model)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	c.embedder = embedder

	cache := embedding.NewCache(embedder, embedding.CacheOptions{
		Dir:      cfg.Embedding.CacheDir,
		Capacity: cfg.Embedding.CacheSize,
		Logger:   logger,
	})
	c.matcher = matching.NewMatcher(cache)

	return c, nil
}

// Close releases the provider clients.
func (c *components) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.embedder != nil {
		_ = c.embedder.Close()
	}
	_ = c.logger.Sync()
}
