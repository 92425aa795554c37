// Package extraction converts uploaded resume documents into plain text.
package extraction

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the document kind, resolved once from the filename.
type Format int

// Supported formats. FormatUnsupported is the zero value.
const (
	FormatUnsupported Format = iota
	FormatPDF
	FormatDOCX
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	default:
		return "unsupported"
	}
}

// DetectFormat resolves the document format from the file extension (case-insensitive).
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatUnsupported
	}
}

// Extractor turns the raw bytes of one document format into plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(data []byte) (string, error)

// Extract calls f(data).
func (f ExtractorFunc) Extract(data []byte) (string, error) {
	return f(data)
}

// Registry dispatches documents to the extractor registered for their format.
type Registry struct {
	extractors map[Format]Extractor
}

// NewRegistry returns a registry with the PDF and DOCX extractors installed.
func NewRegistry() *Registry {
	return &Registry{
		extractors: map[Format]Extractor{
			FormatPDF:  ExtractorFunc(extractPDF),
			FormatDOCX: ExtractorFunc(extractDOCX),
		},
	}
}

// Register installs or replaces the extractor for a format.
func (r *Registry) Register(f Format, e Extractor) {
	r.extractors[f] = e
}

// Extract returns the plain text of the named document.
// Unknown extensions yield *UnsupportedFormatError; parser failures yield *ExtractionError.
func (r *Registry) Extract(filename string, data []byte) (text string, err error) {
	format := DetectFormat(filename)
	e, ok := r.extractors[format]
	if !ok {
		return "", &UnsupportedFormatError{Filename: filename}
	}

	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = &ExtractionError{Format: format, Message: "parser panicked", Cause: fmt.Errorf("%v", rec)}
		}
	}()

	text, err = e.Extract(data)
	if err != nil {
		var ee *ExtractionError
		if !errors.As(err, &ee) {
			err = &ExtractionError{Format: format, Message: "failed to read document", Cause: err}
		}
		return "", err
	}
	return text, nil
}
