package rendering

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/highlight"
	"github.com/jonathan/resume-analyzer/internal/types"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func rec(filename string, match float64, suggestions ...string) types.AnalysisRecord {
	return types.AnalysisRecord{
		ID:            uuid.New(),
		Filename:      filename,
		MatchScore:    match,
		SemanticScore: 42,
		Suggestions:   suggestions,
		ResumeText:    "Python <developer>",
		JobText:       "Python developer & Docker",
	}
}

func TestNewIndexData_SelectsGroupNewestFirst(t *testing.T) {
	a1, a2 := rec("a.pdf", 1), rec("a.pdf", 2)
	b1 := rec("b.pdf", 3)
	groups := []types.HistoryGroup{
		{Filename: "a.pdf", Records: []types.AnalysisRecord{a1, a2}},
		{Filename: "b.pdf", Records: []types.AnalysisRecord{b1}},
	}

	data := NewIndexData(nil, groups, "", "")
	require.NotNil(t, data.Selected)
	assert.Equal(t, "a.pdf", data.Selected.Filename)
	require.Len(t, data.Selected.Records, 2)
	assert.Equal(t, 2, data.Selected.Records[0].Number)
	assert.Equal(t, a2.ID, data.Selected.Records[0].Record.ID)

	data = NewIndexData(nil, groups, "b.pdf", "")
	assert.Equal(t, "b.pdf", data.Selected.Filename)

	data = NewIndexData(nil, groups, "missing.pdf", "")
	assert.Equal(t, "a.pdf", data.Selected.Filename)

	data = NewIndexData(nil, nil, "a.pdf", "")
	assert.Nil(t, data.Selected)
}

func TestRenderIndex(t *testing.T) {
	current := rec("cv.pdf", 50, "looking", "docker")
	groups := []types.HistoryGroup{{Filename: "cv.pdf", Records: []types.AnalysisRecord{current}}}

	var buf bytes.Buffer
	require.NoError(t, RenderIndex(&buf, NewIndexData(&current, groups, "", "")))
	page := buf.String()

	assert.Contains(t, page, `enctype="multipart/form-data"`)
	assert.Contains(t, page, "50.00%")
	assert.Contains(t, page, "looking, docker")
	assert.Contains(t, page, "/analyses/"+current.ID.String()+"/report.pdf")
	assert.Contains(t, page, "cv.pdf (1 records)")
	assert.Contains(t, page, "Clear All Analysis History")
}

func TestRenderIndex_EmptyHistoryAndError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderIndex(&buf, NewIndexData(nil, nil, "", `unsupported file type for "<x>.txt"`)))
	page := buf.String()

	assert.Contains(t, page, "&lt;x&gt;.txt")
	assert.NotContains(t, page, "Resume Analysis History")
	assert.NotContains(t, page, "Match Analysis")
}

func TestRenderComparison(t *testing.T) {
	r := rec("cv.pdf", 50)

	for _, layout := range []analysis.Layout{analysis.LayoutSideBySide, analysis.LayoutStacked} {
		var buf bytes.Buffer
		c := analysis.Compare(r, layout, highlight.HTML)
		require.NoError(t, RenderComparison(&buf, NewComparisonData(c)))
		page := buf.String()

		assert.Contains(t, page, "<title>cv.pdf - Resume Analyzer</title>")
		assert.Contains(t, page, highlight.HTML.Open+"Python"+highlight.HTML.Close)
		assert.Contains(t, page, "&lt;"+highlight.HTML.Open+"developer"+highlight.HTML.Close+"&gt;")
		assert.Contains(t, page, "&amp; Docker")
		assert.Equal(t, layout == analysis.LayoutSideBySide, strings.Contains(page, `class="columns"`))
	}
}

func TestRender_WriterFailure(t *testing.T) {
	err := RenderIndex(failingWriter{}, IndexData{})

	var re *RenderError
	assert.True(t, errors.As(err, &re))
}
