package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/highlight"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear past analyses",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past analyses grouped by resume filename",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one analysis, optionally with highlighted resume and job text",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded analysis",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var (
	showCompare bool
	showLayout  string
	showColor   bool
)

func init() {
	historyShowCmd.Flags().BoolVar(&showCompare, "compare", false, "Print resume and job text with matched keywords highlighted")
	historyShowCmd.Flags().StringVar(&showLayout, "layout", string(analysis.LayoutSideBySide), "Comparison layout: side-by-side or stacked")
	historyShowCmd.Flags().BoolVar(&showColor, "color", false, "Highlight with terminal colors instead of brackets")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(commandContext(cmd), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	observability.NewPrinter(cmd.OutOrStdout()).PrintHistory(a.history.Groups())
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid analysis id %q: %w", args[0], err)
	}
	layout, err := analysis.ParseLayout(showLayout)
	if err != nil {
		return err
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

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintRecord(record)

	if showCompare {
		marker := highlight.Brackets
		if showColor {
			marker = highlight.ANSI
		}
		printer.PrintComparison(analysis.Compare(record, layout, marker))
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)

	cfg, logger, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	// A corrupt or newer-version history can still be cleared.
	n := 0
	if records, err := store.Load(ctx); err == nil {
		n = len(records)
	} else if unreadableHistory(err) {
		logger.Warn().Err(err).Msg("history is unreadable, clearing it")
	} else {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d analyses\n", n)
	return nil
}
