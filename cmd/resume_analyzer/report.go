package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report ID",
	Short: "Export one analysis as a PDF report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

var reportOut string

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Output path (default resume_report_<id>.pdf)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid analysis id %q: %w", args[0], err)
	}

	a, err := newApp(commandContext(cmd), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	record, err := a.history.Get(id)
	if err != nil {
		return err
	}

	out := reportOut
	if out == "" {
		out = report.FileName(record)
	}
	if err := writeReport(out, record); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
	return nil
}
