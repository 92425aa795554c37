package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: "Extract text from a PDF or DOCX resume, compare it with a job description, " +
		"print the keyword and semantic match scores with suggestions, and record the result in history.",
	RunE: runAnalyze,
}

var (
	analyzeResume  string
	analyzeJobFile string
	analyzeJobText string
	analyzeJobURL  string
	analyzeReport  string
	analyzeJSON    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.pdf or .docx)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to a plain-text job description")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "Job description text")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "Job posting URL to fetch the description from")
	analyzeCmd.Flags().StringVar(&analyzeReport, "report", "", "Also write a PDF report to this path")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the record as JSON")

	_ = analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagsMutuallyExclusive("job", "job-text", "job-url")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeJobFile == "" && analyzeJobText == "" && analyzeJobURL == "" {
		return fmt.Errorf("one of --job, --job-text or --job-url is required")
	}

	ctx := commandContext(cmd)

	a, err := newApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	analyzer, err := a.analyzer(ctx)
	if err != nil {
		return err
	}

	resume, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobText, err := resolveJobText(ctx, a)
	if err != nil {
		return err
	}

	record, err := analyzer.Analyze(ctx, analysis.Request{
		Filename: filepath.Base(analyzeResume),
		Resume:   resume,
		JobText:  jobText,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	} else {
		observability.NewPrinter(out).PrintAnalysis(record)
	}

	if analyzeReport != "" {
		if err := writeReport(analyzeReport, *record); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", analyzeReport)
	}

	return nil
}

// resolveJobText reads the job description from whichever source flag was given.
func resolveJobText(ctx context.Context, a *app) (string, error) {
	switch {
	case analyzeJobText != "":
		return analyzeJobText, nil
	case analyzeJobFile != "":
		data, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	default:
		text, err := a.jobFetcher().JobText(ctx, strings.TrimSpace(analyzeJobURL))
		if err != nil {
			return "", err
		}
		return text, nil
	}
}

// writeReport renders record as a PDF at path. The file is only created once rendering succeeded.
func writeReport(path string, record types.AnalysisRecord) error {
	var buf bytes.Buffer
	if err := report.WritePDF(&buf, record); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
