// Package analysis runs one resume-vs-job comparison end to end and builds
// highlighted comparison views of past analyses.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}

// SimilarityScorer returns a semantic similarity in [0,100].
type SimilarityScorer interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Recorder persists completed analyses.
type Recorder interface {
	Append(ctx context.Context, record types.AnalysisRecord) error
}

// Request is one resume/job pair to analyze.
type Request struct {
	Filename string
	Resume   []byte
	JobText  string
}

// Analyzer runs analyses one at a time.
type Analyzer struct {
	mu        sync.Mutex
	extractor TextExtractor
	scorer    SimilarityScorer
	recorder  Recorder
	logger    zerolog.Logger
	now       func() time.Time
}

// New returns an Analyzer wired to its collaborators.
func New(extractor TextExtractor, scorer SimilarityScorer, recorder Recorder, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		extractor: extractor,
		scorer:    scorer,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// Analyze extracts the resume text, scores it against the job text and
// appends the resulting record to history. Nothing is persisted on error.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*types.AnalysisRecord, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	log := a.logger.With().Str("filename", req.Filename).Logger()
	start := a.now()

	resumeText, err := a.extractor.Extract(req.Filename, req.Resume)
	if err != nil {
		log.Warn().Err(err).Msg("resume extraction failed")
		return nil, err
	}
	log.Debug().Int("chars", len(resumeText)).Msg("resume text extracted")

	resumeKeywords := keywords.Extract(resumeText)
	jobKeywords := keywords.Extract(req.JobText)
	matchScore := keywords.MatchScore(resumeKeywords, jobKeywords)

	semanticScore, err := a.scorer.Similarity(ctx, resumeText, req.JobText)
	if err != nil {
		log.Error().Err(err).Msg("semantic scoring failed")
		return nil, fmt.Errorf("semantic scoring failed: %w", err)
	}

	record := types.AnalysisRecord{
		ID:            uuid.New(),
		CreatedAt:     a.now().UTC().Truncate(time.Microsecond),
		Filename:      req.Filename,
		MatchScore:    matchScore,
		SemanticScore: semanticScore,
		Suggestions:   keywords.Suggestions(resumeKeywords, req.JobText),
		ResumeText:    resumeText,
		JobText:       req.JobText,
	}

	if err := a.recorder.Append(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to record analysis")
		return nil, err
	}

	log.Info().
		Str("id", record.ID.String()).
		Float64("match_score", record.MatchScore).
		Float64("semantic_score", record.SemanticScore).
		Int("suggestions", len(record.Suggestions)).
		Dur("elapsed", a.now().Sub(start)).
		Msg("analysis complete")

	return &record, nil
}

func (r Request) validate() error {
	switch {
	case strings.TrimSpace(r.Filename) == "":
		return &EmptyInputError{Field: "resume filename"}
	case len(r.Resume) == 0:
		return &EmptyInputError{Field: "resume file"}
	case strings.TrimSpace(r.JobText) == "":
		return &EmptyInputError{Field: "job description"}
	}
	return nil
}
