package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"percent": func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
	"join":    strings.Join,
}

var (
	indexTemplate   = mustParse("index.html")
	compareTemplate = mustParse("compare.html")
)

func mustParse(page string) *template.Template {
	tmpl, err := parsePage(page)
	if err != nil {
		panic(err)
	}
	return tmpl
}

func parsePage(page string) (*template.Template, error) {
	tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+page)
	if err != nil {
		return nil, &TemplateError{Message: fmt.Sprintf("failed to parse %s", page), Cause: err}
	}
	return tmpl, nil
}

// RecordView is a history entry numbered by its position in its group (1 = oldest).
type RecordView struct {
	Number int
	Record types.AnalysisRecord
}

// GroupView is one filename group with records newest first.
type GroupView struct {
	Filename string
	Records  []RecordView
}

// IndexData is the model of the upload page.
type IndexData struct {
	Current  *types.AnalysisRecord
	Error    string
	Groups   []types.HistoryGroup
	Selected *GroupView
}

// NewIndexData builds the upload page model. selected names the history
// group to expand; when empty or unknown the first group is shown.
func NewIndexData(current *types.AnalysisRecord, groups []types.HistoryGroup, selected, errMsg string) IndexData {
	data := IndexData{Current: current, Error: errMsg, Groups: groups}
	if len(groups) == 0 {
		return data
	}

	chosen := groups[0]
	for _, g := range groups {
		if g.Filename == selected {
			chosen = g
			break
		}
	}

	view := &GroupView{Filename: chosen.Filename}
	for i := len(chosen.Records) - 1; i >= 0; i-- {
		view.Records = append(view.Records, RecordView{Number: i + 1, Record: chosen.Records[i]})
	}
	data.Selected = view
	return data
}

// ComparisonData is the model of the comparison page.
type ComparisonData struct {
	Filename string
	Record   types.AnalysisRecord
	Resume   template.HTML
	Job      template.HTML
	Stacked  bool
}

// NewComparisonData wraps a comparison whose texts were highlighted with highlight.HTML.
func NewComparisonData(c analysis.Comparison) ComparisonData {
	return ComparisonData{
		Filename: c.Record.Filename,
		Record:   c.Record,
		// #nosec G203 -- every segment is escaped by highlight.HTML before markers are inserted
		Resume:  template.HTML(c.Resume),
		Job:     template.HTML(c.Job),
		Stacked: c.Layout == analysis.LayoutStacked,
	}
}

// RenderIndex writes the upload form, latest result and grouped history.
func RenderIndex(w io.Writer, data IndexData) error {
	return execute(w, indexTemplate, data)
}

// RenderComparison writes the highlighted resume/job comparison page.
func RenderComparison(w io.Writer, data ComparisonData) error {
	return execute(w, compareTemplate, data)
}

// execute renders into a buffer first so a failing template never writes a partial page.
func execute(w io.Writer, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return &TemplateError{Message: fmt.Sprintf("failed to execute %s", tmpl.Name()), Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Message: "failed to write page", Cause: err}
	}
	return nil
}
