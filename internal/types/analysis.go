// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

import (
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalysisRecord is one completed resume-vs-job comparison.
// Records are immutable once appended to the history.
type AnalysisRecord struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Filename      string    `json:"filename" validate:"required"`
	MatchScore    float64   `json:"match_score" validate:"gte=0,lte=100"`
	SemanticScore float64   `json:"semantic_score" validate:"gte=0,lte=100"`
	Suggestions   []string  `json:"suggestions" validate:"max=10,unique"`
	ResumeText    string    `json:"resume_text"`
	JobText       string    `json:"job_text"`
}

// Validate validates the AnalysisRecord using the validator.
func (r *AnalysisRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Clone returns a deep copy so callers cannot mutate stored records.
func (r AnalysisRecord) Clone() AnalysisRecord {
	r.Suggestions = slices.Clone(r.Suggestions)
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	return r
}

// HistoryGroup holds every record that shares a resume filename, in insertion order.
type HistoryGroup struct {
	Filename string           `json:"filename"`
	Records  []AnalysisRecord `json:"records"`
}
