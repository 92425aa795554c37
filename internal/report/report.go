// Package report renders a single analysis as a one-page PDF.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// Title is printed centered at the top of every report.
	Title = "Resume Match Report"
	// Footer is printed centered at the bottom of every report.
	Footer = "Generated by Resume Analyzer"
)

// RenderError represents a failure while producing the PDF document.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report render failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("report render failed: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// WritePDF writes the report for record to w.
func WritePDF(w io.Writer, record types.AnalysisRecord) error {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetTitle(Title, true)
	doc.SetHeaderFunc(func() {
		doc.SetFont("Helvetica", "B", 14)
		doc.CellFormat(0, 10, Title, "", 1, "C", false, 0, "")
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.CellFormat(0, 10, Footer, "", 0, "C", false, 0, "")
	})

	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Ln(10)
	doc.CellFormat(0, 10, tr("Resume: "+record.Filename), "", 1, "", false, 0, "")
	doc.CellFormat(0, 10, fmt.Sprintf("Keyword Match Score: %.2f%%", record.MatchScore), "", 1, "", false, 0, "")
	doc.CellFormat(0, 10, fmt.Sprintf("Semantic Match Score: %.2f%%", record.SemanticScore), "", 1, "", false, 0, "")
	doc.Ln(10)
	if len(record.Suggestions) > 0 {
		doc.MultiCell(0, 10, tr("Suggestions:\n"+strings.Join(record.Suggestions, ", ")), "", "", false)
	} else {
		doc.MultiCell(0, 10, "Your resume already covers most key terms.", "", "", false)
	}

	if err := doc.Output(w); err != nil {
		return &RenderError{Message: "failed to write pdf", Cause: err}
	}
	return nil
}

// FileName is the suggested download name for a record's report.
func FileName(record types.AnalysisRecord) string {
	return fmt.Sprintf("resume_report_%s.pdf", record.ID)
}
