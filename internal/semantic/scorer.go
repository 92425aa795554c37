package semantic

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// probeText is embedded once at startup to prove the model answers.
const probeText = "resume analyzer readiness probe"

// Scorer computes semantic similarity percentages with a probed Embedder.
type Scorer struct {
	embedder Embedder
	logger   zerolog.Logger
}

// NewScorer probes the embedder once and returns a ready Scorer.
// Any probe failure is reported as *ModelUnavailableError.
func NewScorer(ctx context.Context, embedder Embedder, logger zerolog.Logger) (*Scorer, error) {
	vec, err := embedder.Embed(ctx, probeText)
	if err != nil {
		return nil, &ModelUnavailableError{Model: embedder.Name(), Cause: err}
	}
	if len(vec) == 0 {
		return nil, &ModelUnavailableError{Model: embedder.Name()}
	}

	logger.Debug().Str("model", embedder.Name()).Int("dimensions", len(vec)).Msg("embedding model ready")
	return &Scorer{embedder: embedder, logger: logger}, nil
}

// Model returns the name of the embedding model in use.
func (s *Scorer) Model() string {
	return s.embedder.Name()
}

// Similarity embeds both texts concurrently and returns their cosine
// similarity rescaled to [0,100]. A blank text scores 0 without reaching the model.
func (s *Scorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		s.logger.Debug().Msg("blank text, semantic score is 0")
		return 0, nil
	}

	var vecA, vecB []float32

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vecA, err = s.embedder.Embed(gctx, a)
		return err
	})
	g.Go(func() error {
		var err error
		vecB, err = s.embedder.Embed(gctx, b)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	score := toPercent(CosineSimilarity(vecA, vecB))
	s.logger.Debug().Float64("semantic_score", score).Msg("semantic similarity computed")
	return score, nil
}
