// Package history persists completed analyses and serves them back grouped by resume filename.
package history

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Store is the durable backend behind a History.
type Store interface {
	// Load returns every persisted record in insertion order. A store that
	// has never been written returns an empty slice.
	Load(ctx context.Context) ([]types.AnalysisRecord, error)
	// Append persists one record after all existing ones.
	Append(ctx context.Context, record types.AnalysisRecord) error
	// Clear removes every record.
	Clear(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// Supported backends
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Options selects and configures a backend for OpenStore.
type Options struct {
	Backend     string
	Path        string
	DatabaseURL string
}

// OpenStore constructs the store named by opts.Backend. An empty backend selects the file store.
func OpenStore(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Path), nil
	case BackendSQLite:
		return OpenSQLiteStore(ctx, opts.Path)
	case BackendPostgres:
		return ConnectPostgresStore(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown history backend %q", opts.Backend)
	}
}
