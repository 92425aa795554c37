package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/highlight"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in   string
		want Layout
	}{
		{"", LayoutSideBySide},
		{"side-by-side", LayoutSideBySide},
		{"Side-By-Side", LayoutSideBySide},
		{"stacked", LayoutStacked},
		{" STACKED ", LayoutStacked},
	}
	for _, tt := range tests {
		got, err := ParseLayout(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLayout("grid")
	var ple *ParseLayoutError
	require.True(t, errors.As(err, &ple))
	assert.Contains(t, err.Error(), "side-by-side")
}

func TestCompare(t *testing.T) {
	rec := types.AnalysisRecord{
		Filename:   "cv.pdf",
		ResumeText: resumeText,
		JobText:    jobText,
	}

	c := Compare(rec, LayoutStacked, highlight.Brackets)

	assert.Equal(t, "Experienced [Python] [developer] with [AWS] skills", c.Resume)
	assert.Equal(t, "Looking for [Python] [developer] with Docker and [AWS] experience", c.Job)
	assert.Equal(t, []string{"aws", "developer", "python"}, c.CommonKeywords)
	assert.Equal(t, LayoutStacked, c.Layout)
	assert.Equal(t, []string{}, c.Record.Suggestions)
}

func TestCompare_ResumeMarksAllJobKeywords(t *testing.T) {
	rec := types.AnalysisRecord{
		ResumeText: "Docker and Kubernetes",
		JobText:    "docker docker helm",
	}

	c := Compare(rec, LayoutSideBySide, highlight.Brackets)
	assert.Equal(t, "[Docker] and Kubernetes", c.Resume)
	assert.Equal(t, "[docker] [docker] helm", c.Job)
}
