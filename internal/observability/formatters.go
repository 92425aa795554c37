// Package observability provides terminal output formatting and logger construction.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// dividerWidth is the width of the rule between stacked comparison texts
	dividerWidth = 40
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		pad := boxWidth - 4 - utf8.RuneCountInString(line)
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// scoreLines formats the two scores the way every view shows them.
func scoreLines(rec types.AnalysisRecord) string {
	return fmt.Sprintf("Keyword Match:  %.2f%%\nSemantic Match: %.2f%%", rec.MatchScore, rec.SemanticScore)
}

// suggestionLines wraps the suggestion list to fit the box.
func suggestionLines(suggestions []string) string {
	if len(suggestions) == 0 {
		return "Your resume already covers most key terms."
	}

	var sb strings.Builder
	sb.WriteString("Consider including keywords like:\n")
	line := ""
	for i, s := range suggestions {
		item := s
		if i < len(suggestions)-1 {
			item += ","
		}
		if line != "" && utf8.RuneCountInString(line)+1+utf8.RuneCountInString(item) > boxWidth-6 {
			sb.WriteString("  " + line + "\n")
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += item
	}
	sb.WriteString("  " + line)
	return sb.String()
}

// PrintAnalysis outputs the scores and suggestions of one completed analysis.
func (p *Printer) PrintAnalysis(rec *types.AnalysisRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume: %s\n", rec.Filename))
	sb.WriteString(fmt.Sprintf("ID:     %s\n\n", rec.ID))
	sb.WriteString(scoreLines(*rec))
	sb.WriteString("\n\n")
	sb.WriteString(suggestionLines(rec.Suggestions))

	p.printBox("MATCH ANALYSIS", sb.String())
}

// PrintHistory outputs every group with its records, newest record first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHistory(groups []types.HistoryGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(p.out, "No analysis history.")
		return
	}

	for _, g := range groups {
		var sb strings.Builder
		n := len(g.Records)
		for i := n - 1; i >= 0; i-- {
			rec := g.Records[i]
			sb.WriteString(fmt.Sprintf("Record %d  %s\n", i+1, rec.ID))
			sb.WriteString(fmt.Sprintf("  Keyword %.2f%%  Semantic %.2f%%\n", rec.MatchScore, rec.SemanticScore))
			if len(rec.Suggestions) > 0 {
				sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(rec.Suggestions, ", ")))
			}
			if i > 0 {
				sb.WriteString("\n")
			}
		}
		p.printBox(fmt.Sprintf("%s (%d records)", g.Filename, n), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintRecord outputs one stored analysis with its scores and suggestions.
func (p *Printer) PrintRecord(rec types.AnalysisRecord) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume:  %s\n", rec.Filename))
	if !rec.CreatedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Created: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05 MST")))
	}
	sb.WriteString("\n")
	sb.WriteString(scoreLines(rec))
	sb.WriteString("\n\n")
	sb.WriteString(suggestionLines(rec.Suggestions))

	p.printBox(fmt.Sprintf("ANALYSIS %s", rec.ID), sb.String())
}

// PrintComparison outputs highlighted resume and job texts. Terminals cannot
// show true columns for free text, so side-by-side prints the texts as
// labelled paragraphs while stacked separates them with a rule.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintComparison(c analysis.Comparison) {
	fmt.Fprintln(p.out, "Resume Text")
	fmt.Fprintln(p.out, c.Resume)
	if c.Layout == analysis.LayoutStacked {
		fmt.Fprintln(p.out, strings.Repeat("─", dividerWidth))
	} else {
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out, "Job Description")
	fmt.Fprintln(p.out, c.Job)
}
