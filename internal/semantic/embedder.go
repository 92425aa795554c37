// Package semantic scores how close two texts are in meaning using sentence embeddings.
package semantic

import "context"

// Embedder turns text into a fixed-size dense vector.
type Embedder interface {
	// Embed returns the embedding of text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Name identifies the underlying model in logs and errors.
	Name() string
}

// Supported embedding providers
const (
	ProviderGemini  = "gemini"
	ProviderHashing = "hashing"
)

// DefaultGeminiModel is the embedding model used when none is configured.
const DefaultGeminiModel = "text-embedding-004"
