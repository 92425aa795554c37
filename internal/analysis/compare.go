package analysis

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/highlight"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Layout is how the resume and job text are arranged in a comparison view.
type Layout string

// Supported layouts
const (
	LayoutSideBySide Layout = "side-by-side"
	LayoutStacked    Layout = "stacked"
)

// ParseLayout accepts "side-by-side" or "stacked" (case-insensitive). Empty selects side-by-side.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(LayoutSideBySide):
		return LayoutSideBySide, nil
	case string(LayoutStacked):
		return LayoutStacked, nil
	default:
		return "", &ParseLayoutError{Value: s}
	}
}

// Comparison is a past analysis with both texts highlighted.
type Comparison struct {
	Record types.AnalysisRecord
	// Resume is the resume text with every job keyword marked.
	Resume string
	// Job is the job text with only the keywords the resume shares marked.
	Job            string
	CommonKeywords []string
	Layout         Layout
}

// Compare highlights record's texts with m.
func Compare(record types.AnalysisRecord, layout Layout, m highlight.Marker) Comparison {
	jobKeywords := keywords.Extract(record.JobText)
	common := jobKeywords.Intersect(keywords.Extract(record.ResumeText)).Sorted()

	return Comparison{
		Record:         record.Clone(),
		Resume:         highlight.Highlight(record.ResumeText, jobKeywords.Sorted(), m),
		Job:            highlight.Highlight(record.JobText, common, m),
		CommonKeywords: common,
		Layout:         layout,
	}
}
