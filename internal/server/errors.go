package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/history"
)

// BadRequestError indicates a malformed request
type BadRequestError struct {
	Message string
	Cause   error
}

func (e *BadRequestError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *BadRequestError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		badRequest  *BadRequestError
		emptyInput  *analysis.EmptyInputError
		badLayout   *analysis.ParseLayoutError
		unsupported *extraction.UnsupportedFormatError
		fetchErr    *fetch.Error
		extractErr  *extraction.ExtractionError
		notFound    *history.NotFoundError
		tooLarge    *http.MaxBytesError
	)

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &badRequest), errors.As(err, &emptyInput), errors.As(err, &badLayout),
		errors.As(err, &unsupported), errors.As(err, &fetchErr):
		return http.StatusBadRequest
	case errors.As(err, &extractErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
