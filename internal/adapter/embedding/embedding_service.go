// Package embedding turns answer text into vectors for the answer cache.
package embedding

import (
	"context"
	"fmt"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Service implements domain.EmbeddingService with a langchaingo embedder.
type Service struct {
	embedder embeddings.Embedder
}

var _ domain.EmbeddingService = (*Service)(nil)

// NewService builds the embedder selected by cfg.Provider.
func NewService(cfg config.EmbeddingConfig) (*Service, error) {
	var client embeddings.EmbedderClient
	switch cfg.Provider {
	case "ollama":
		if cfg.ServerURL == "" {
			return nil, fmt.Errorf("ollama server URL cannot be empty")
		}
		if cfg.Model == "" {
			return nil, fmt.Errorf("ollama model name cannot be empty")
		}
		llm, err := ollama.New(
			ollama.WithModel(cfg.Model),
			ollama.WithServerURL(cfg.ServerURL),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create LangchainGo Ollama LLM client for embedder: %w", err)
		}
		client = llm
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai API key cannot be empty")
		}
		model := cfg.Model
		if model == "" {
			model = "text-embedding-3-small"
		}
		llm, err := openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithEmbeddingModel(model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create LangchainGo OpenAI LLM client for embedder: %w", err)
		}
		client = llm
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %q", cfg.Provider)
	}

	embedder, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	return &Service{embedder: embedder}, nil
}

// Generate embeds text. Empty text is rejected.
func (s *Service) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}
	vec, err := s.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	return vec, nil
}
