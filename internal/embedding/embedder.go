// Package embedding produces and caches the dense text vectors used for
// semantic similarity between candidate profiles and job descriptions.
package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the embedding model used unless configured otherwise.
const DefaultModel = "text-embedding-004"

// maxEmbedChars bounds the text sent to the embedding API (roughly 10000 tokens).
const maxEmbedChars = 40000

// Embedder produces a dense vector for a piece of text.
type Embedder interface {
	// Embed returns the embedding vector for text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// ModelID identifies the underlying model. Cache keys include it so
	// vectors from different models never mix.
	ModelID() string
}

// GeminiEmbedder implements Embedder using the Gemini embedding API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates a Gemini-backed embedder.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client: client,
		model:  model,
	}, nil
}

// Embed returns the embedding vector for text.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	model := e.client.EmbeddingModel(e.model)
	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &ProviderError{
			Model:   e.model,
			Message: "embed request failed",
			Cause:   err,
		}
	}
	if resp == nil || resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, &ProviderError{
			Model:   e.model,
			Message: "empty embedding response",
		}
	}

	return resp.Embedding.Values, nil
}

// ModelID identifies the underlying model.
func (e *GeminiEmbedder) ModelID() string {
	return e.model
}

// Close releases resources held by the underlying client.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
