package domain

import (
	"context"
)

// EmbeddingService turns text into a vector for similarity lookups.
type EmbeddingService interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}
