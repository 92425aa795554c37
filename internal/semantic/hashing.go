package semantic

import (
	"context"
	"hash/fnv"

	"github.com/jonathan/resume-analyzer/internal/keywords"
)

// DefaultHashingDimensions is the vector size of a zero-valued HashingEmbedder.
const DefaultHashingDimensions = 512

// HashingEmbedder is a deterministic, offline bag-of-words embedder using the
// hashing trick. It needs no network and is meant for local use and tests; it
// is only used when configured explicitly.
type HashingEmbedder struct {
	Dimensions int
}

// Embed hashes each cleaned token of text into a signed bucket.
func (h HashingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	dims := h.Dimensions
	if dims <= 0 {
		dims = DefaultHashingDimensions
	}

	vec := make([]float32, dims)
	for _, tok := range keywords.Tokenize(text) {
		hasher := fnv.New64a()
		_, _ = hasher.Write([]byte(tok))
		sum := hasher.Sum64()

		idx := sum % uint64(dims)
		sign := float32(1)
		if sum>>63 == 1 {
			sign = -1
		}
		vec[idx] += sign
	}
	return vec, nil
}

// Name returns "hashing".
func (h HashingEmbedder) Name() string {
	return ProviderHashing
}
