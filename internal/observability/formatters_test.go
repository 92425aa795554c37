package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func record(filename string, match float64, suggestions ...string) types.AnalysisRecord {
	return types.AnalysisRecord{
		ID:            uuid.New(),
		CreatedAt:     time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
		Filename:      filename,
		MatchScore:    match,
		SemanticScore: 64.321,
		Suggestions:   suggestions,
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := record("resume.pdf", 50, "looking", "docker", "experience")
	p.PrintAnalysis(&rec)
	output := buf.String()

	assert.Contains(t, output, "MATCH ANALYSIS")
	assert.Contains(t, output, "resume.pdf")
	assert.Contains(t, output, "Keyword Match:  50.00%")
	assert.Contains(t, output, "Semantic Match: 64.32%")
	assert.Contains(t, output, "looking, docker, experience")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_NoSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := record("resume.pdf", 100)
	p.PrintAnalysis(&rec)

	assert.Contains(t, buf.String(), "already covers most key terms")
}

func TestPrintAnalysis_WrapsLongSuggestionLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := record("resume.pdf", 10, "kubernetes", "terraform", "observability", "postgresql",
		"microservices", "leadership", "mentoring", "architecture", "scalability", "reliability")
	p.PrintAnalysis(&rec)

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.NotContains(t, line, "...", "suggestions should wrap, not truncate")
	}
	assert.Contains(t, buf.String(), "reliability")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	first := record("a.pdf", 10, "go")
	second := record("a.pdf", 20)
	p.PrintHistory([]types.HistoryGroup{
		{Filename: "a.pdf", Records: []types.AnalysisRecord{first, second}},
		{Filename: "b.docx", Records: []types.AnalysisRecord{record("b.docx", 30)}},
	})
	output := buf.String()

	assert.Contains(t, output, "a.pdf (2 records)")
	assert.Contains(t, output, "b.docx (1 records)")
	assert.Less(t, strings.Index(output, "Record 2"), strings.Index(output, "Record 1"), "newest first")
	assert.Contains(t, output, first.ID.String())
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHistory(nil)
	assert.Equal(t, "No analysis history.\n", buf.String())
}

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	rec := record("cv.docx", 75.5, "docker")
	NewPrinter(&buf).PrintRecord(rec)
	output := buf.String()

	assert.Contains(t, output, "ANALYSIS "+rec.ID.String()[:20])
	assert.Contains(t, output, "2026-10-18 09:30:00 UTC")
	assert.Contains(t, output, "75.50%")
}

func TestPrintComparison(t *testing.T) {
	for _, layout := range []analysis.Layout{analysis.LayoutSideBySide, analysis.LayoutStacked} {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintComparison(analysis.Comparison{Resume: "[Go] dev", Job: "need [Go]", Layout: layout})
		output := buf.String()

		assert.Contains(t, output, "Resume Text\n[Go] dev\n")
		assert.Contains(t, output, "Job Description\nneed [Go]\n")
		assert.Equal(t, layout == analysis.LayoutStacked, strings.Contains(output, "────"))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}
