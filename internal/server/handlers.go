package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/highlight"
	"github.com/jonathan/resume-analyzer/internal/rendering"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// handleIndex renders the upload form, the selected result and grouped history.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var current *types.AnalysisRecord
	if raw := r.URL.Query().Get("id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			if rec, err := s.history.Get(id); err == nil {
				current = &rec
			}
		}
	}

	data := rendering.NewIndexData(current, s.history.Groups(), r.URL.Query().Get("group"), "")
	s.htmlResponse(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return rendering.RenderIndex(buf, data)
	})
}

// handleAnalyze runs one analysis from a multipart upload.
// Browsers are redirected to the index page; API clients receive the record.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	var record *types.AnalysisRecord
	req, err := s.parseAnalysisRequest(r)
	if err == nil {
		record, err = s.analyzer.Analyze(r.Context(), req)
	}

	if wantsHTML(r) {
		if err != nil {
			s.renderIndexError(w, err)
			return
		}
		target := "/?id=" + record.ID.String() + "&group=" + url.QueryEscape(record.Filename)
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, record)
}

// parseAnalysisRequest reads the resume upload and resolves the job text,
// fetching it from job_url when job_description is blank.
func (s *Server) parseAnalysisRequest(r *http.Request) (analysis.Request, error) {
	var req analysis.Request

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, err
		}
		return req, &BadRequestError{Message: "invalid multipart form", Cause: err}
	}

	file, header, err := r.FormFile("resume")
	if errors.Is(err, http.ErrMissingFile) {
		return req, &analysis.EmptyInputError{Field: "resume file"}
	}
	if err != nil {
		return req, &BadRequestError{Message: "invalid resume upload", Cause: err}
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return req, &BadRequestError{Message: "failed to read resume upload", Cause: err}
	}
	req.Filename = header.Filename
	req.Resume = data

	req.JobText = r.FormValue("job_description")
	if strings.TrimSpace(req.JobText) == "" {
		if jobURL := strings.TrimSpace(r.FormValue("job_url")); jobURL != "" {
			if s.jobs == nil {
				return req, &BadRequestError{Message: "job_url is not enabled on this server"}
			}
			text, err := s.jobs.JobText(r.Context(), jobURL)
			if err != nil {
				return req, err
			}
			req.JobText = text
		}
	}

	return req, nil
}

// handleListAnalyses returns every record in insertion order.
func (s *Server) handleListAnalyses(w http.ResponseWriter, _ *http.Request) {
	records := s.history.Records()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"records": records,
		"count":   len(records),
	})
}

// handleListGroups returns history grouped by resume filename.
func (s *Server) handleListGroups(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"groups": s.history.Groups(),
	})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	record, err := s.lookupRecord(r)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// handleCompare renders the highlighted resume/job comparison for one record.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	record, err := s.lookupRecord(r)
	if err != nil {
		s.handleError(w, err)
		return
	}
	layout, err := analysis.ParseLayout(r.URL.Query().Get("layout"))
	if err != nil {
		s.handleError(w, err)
		return
	}

	data := rendering.NewComparisonData(analysis.Compare(record, layout, highlight.HTML))
	s.htmlResponse(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return rendering.RenderComparison(buf, data)
	})
}

// handleReport streams the PDF report of one record as a download.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	record, err := s.lookupRecord(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, record); err != nil {
		s.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName(record)+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn().Err(err).Msg("failed to write report")
	}
}

// handleClearHistory deletes every record.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(r.Context()); err != nil {
		if wantsHTML(r) {
			s.renderIndexError(w, err)
			return
		}
		s.handleError(w, err)
		return
	}
	s.logger.Info().Msg("history cleared")

	if wantsHTML(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookupRecord(r *http.Request) (types.AnalysisRecord, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return types.AnalysisRecord{}, &BadRequestError{Message: "invalid analysis id", Cause: err}
	}
	return s.history.Get(id)
}

// renderIndexError shows the index page with err in place of a result.
func (s *Server) renderIndexError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
		message = "Analysis failed. Please try again."
	}

	data := rendering.NewIndexData(nil, s.history.Groups(), "", message)
	s.htmlResponse(w, status, func(buf *bytes.Buffer) error {
		return rendering.RenderIndex(buf, data)
	})
}

// htmlResponse renders a page into memory and writes it with status.
func (s *Server) htmlResponse(w http.ResponseWriter, status int, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.logger.Error().Err(err).Msg("failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
