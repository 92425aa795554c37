package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func sample() types.AnalysisRecord {
	return types.AnalysisRecord{
		ID:            uuid.MustParse("6f1c2a4e-8b1d-4c55-9d3e-0a7b2c9e1f00"),
		Filename:      "résumé.pdf",
		MatchScore:    50,
		SemanticScore: 71.256,
		Suggestions:   []string{"looking", "docker", "experience"},
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sample()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	r, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 1, r.NumPage())
}

func TestWritePDF_NoSuggestions(t *testing.T) {
	rec := sample()
	rec.Suggestions = nil

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, rec))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWritePDF_WriterFailure(t *testing.T) {
	err := WritePDF(failingWriter{}, sample())

	var re *RenderError
	require.True(t, errors.As(err, &re))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "resume_report_6f1c2a4e-8b1d-4c55-9d3e-0a7b2c9e1f00.pdf", FileName(sample()))
}
