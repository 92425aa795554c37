package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultFileName is the history document name inside the system temp directory.
const DefaultFileName = "resume_analysis_history.json"

// DefaultPath returns the well-known history location.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), DefaultFileName)
}

// FileStore keeps the whole history as one JSON document. Every Append
// rewrites the file atomically.
type FileStore struct {
	path string
}

// NewFileStore returns a store at path, or at DefaultPath when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

// Path returns the document location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the document. A missing file is an empty history.
func (s *FileStore) Load(_ context.Context) ([]types.AnalysisRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []types.AnalysisRecord{}, nil
	}
	if err != nil {
		return nil, &StoreError{Backend: BackendFile, Op: "read", Cause: err}
	}
	return decodeDocument(s.path, data)
}

// Append reads the current document, adds record and writes it back.
func (s *FileStore) Append(ctx context.Context, record types.AnalysisRecord) error {
	records, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.write(append(records, record))
}

// Clear deletes the document.
func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &StoreError{Backend: BackendFile, Op: "remove", Cause: err}
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}

// write replaces the document via temp file, fsync and rename in the same directory.
func (s *FileStore) write(records []types.AnalysisRecord) error {
	data, err := encodeDocument(records)
	if err != nil {
		return &StoreError{Backend: BackendFile, Op: "encode", Cause: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StoreError{Backend: BackendFile, Op: "mkdir", Cause: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &StoreError{Backend: BackendFile, Op: "create temp", Cause: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &StoreError{Backend: BackendFile, Op: "write", Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &StoreError{Backend: BackendFile, Op: "sync", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &StoreError{Backend: BackendFile, Op: "close", Cause: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return &StoreError{Backend: BackendFile, Op: "rename", Cause: fmt.Errorf("%s -> %s: %w", tmpName, s.path, err)}
	}
	committed = true
	return nil
}
