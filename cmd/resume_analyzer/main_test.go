package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}

const (
	resumeText = "Experienced Python developer with AWS skills"
	jobText    = "Looking for Python developer with Docker and AWS experience"
)

// writeDOCX writes a minimal one-paragraph DOCX file.
func writeDOCX(t *testing.T, dir, name, text string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			`<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for fname, content := range files {
		w, err := zw.Create(fname)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

// writeConfig writes a config using the offline embedder and a file history in dir.
func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	cfg := map[string]any{
		"history_backend":    "file",
		"history_path":       filepath.Join(dir, "history.json"),
		"embedding_provider": "hashing",
		"log_format":         "json",
	}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// resetFlags restores every flag to its default so commands can run repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeHistoryReportClear(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	resume := writeDOCX(t, dir, "resume.docx", resumeText)

	out, err := execute(t, "analyze", "--config", cfg, "--resume", resume, "--job-text", jobText, "--json")
	require.NoError(t, err)

	var rec types.AnalysisRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "resume.docx", rec.Filename)
	assert.InDelta(t, 50.0, rec.MatchScore, 1e-9)
	assert.Equal(t, []string{"looking", "docker", "experience"}, rec.Suggestions)
	assert.Equal(t, resumeText, rec.ResumeText)

	out, err = execute(t, "history", "list", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "resume.docx (1 records)")
	assert.Contains(t, out, rec.ID.String())

	out, err = execute(t, "history", "show", rec.ID.String(), "--config", cfg, "--compare", "--layout", "stacked")
	require.NoError(t, err)
	assert.Contains(t, out, "ANALYSIS "+rec.ID.String())
	assert.Contains(t, out, "[Python]")
	assert.Contains(t, out, "─")

	reportPath := filepath.Join(dir, "out", "report.pdf")
	out, err = execute(t, "report", rec.ID.String(), "--config", cfg, "--out", reportPath)
	require.NoError(t, err)
	assert.Contains(t, out, reportPath)
	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	out, err = execute(t, "history", "clear", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 1 analyses")

	out, err = execute(t, "history", "list", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "No analysis history.")
}

func TestAnalyze_PrintsBox(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	resume := writeDOCX(t, dir, "cv.docx", resumeText)
	job := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(job, []byte(jobText), 0o644))

	out, err := execute(t, "analyze", "--config", cfg, "--resume", resume, "--job", job)
	require.NoError(t, err)
	assert.Contains(t, out, "MATCH ANALYSIS")
	assert.Contains(t, out, "50.00%")
}

func TestAnalyze_RequiresJobSource(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	resume := writeDOCX(t, dir, "cv.docx", resumeText)

	_, err := execute(t, "analyze", "--config", cfg, "--resume", resume)
	assert.ErrorContains(t, err, "--job-text")
}

func TestAnalyze_JobSourcesAreExclusive(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	resume := writeDOCX(t, dir, "cv.docx", resumeText)

	_, err := execute(t, "analyze", "--config", cfg, "--resume", resume,
		"--job-text", jobText, "--job-url", "https://example.com/job")
	assert.Error(t, err)
}

func TestAnalyze_UnsupportedFormatRecordsNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	resume := filepath.Join(dir, "cv.txt")
	require.NoError(t, os.WriteFile(resume, []byte(resumeText), 0o644))

	_, err := execute(t, "analyze", "--config", cfg, "--resume", resume, "--job-text", jobText)
	assert.ErrorContains(t, err, "use PDF or DOCX")

	_, statErr := os.Stat(filepath.Join(dir, "history.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestHistoryShow_InvalidID(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())

	_, err := execute(t, "history", "show", "nope", "--config", cfg)
	assert.ErrorContains(t, err, "invalid analysis id")
}

func TestHistoryShow_BadLayout(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())

	_, err := execute(t, "history", "show", "6f1c2b1e-8d1a-4c55-9d0f-3a3c8f0e2b11", "--config", cfg, "--layout", "grid")
	assert.ErrorContains(t, err, "unknown layout")
}

func TestLoadConfig_RejectsInvalidBackend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"history_backend": "redis"}`), 0o644))

	resetFlags(rootCmd)
	configPath = path
	_, err := loadConfig()
	assert.ErrorContains(t, err, "history_backend")
}

func TestHistoryClear_UnreadableHistory(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"corrupt", `{"version": 1, "records": [`},
		{"newer version", `{"version": 99, "records": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := writeConfig(t, dir)
			historyPath := filepath.Join(dir, "history.json")
			require.NoError(t, os.WriteFile(historyPath, []byte(tt.content), 0o644))

			_, err := execute(t, "history", "list", "--config", cfg)
			require.Error(t, err)

			out, err := execute(t, "history", "clear", "--config", cfg)
			require.NoError(t, err)
			assert.Contains(t, out, "Cleared 0 analyses")

			_, statErr := os.Stat(historyPath)
			assert.True(t, os.IsNotExist(statErr))

			out, err = execute(t, "history", "list", "--config", cfg)
			require.NoError(t, err)
			assert.Contains(t, out, "No analysis history.")
		})
	}
}
