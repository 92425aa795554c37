package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// History is the in-memory view of a Store. It is loaded once, appended to
// after each successful analysis and safe for concurrent use.
type History struct {
	mu      sync.Mutex
	store   Store
	records []types.AnalysisRecord
}

// Open loads every record from store.
func Open(ctx context.Context, store Store) (*History, error) {
	records, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return &History{store: store, records: records}, nil
}

// Records returns a copy of every record in insertion order.
func (h *History) Records() []types.AnalysisRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]types.AnalysisRecord, len(h.records))
	for i, rec := range h.records {
		out[i] = rec.Clone()
	}
	return out
}

// Len returns the number of records.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// Get returns the record with the given ID, or *NotFoundError.
func (h *History) Get(id uuid.UUID) (types.AnalysisRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, rec := range h.records {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return types.AnalysisRecord{}, &NotFoundError{ID: id}
}

// Groups returns records grouped by filename. Groups appear in order of the
// filename's first record; records keep insertion order within a group.
func (h *History) Groups() []types.HistoryGroup {
	h.mu.Lock()
	defer h.mu.Unlock()

	index := make(map[string]int)
	groups := []types.HistoryGroup{}
	for _, rec := range h.records {
		i, ok := index[rec.Filename]
		if !ok {
			i = len(groups)
			index[rec.Filename] = i
			groups = append(groups, types.HistoryGroup{Filename: rec.Filename})
		}
		groups[i].Records = append(groups[i].Records, rec.Clone())
	}
	return groups
}

// Filenames returns the distinct filenames in first-appearance order.
func (h *History) Filenames() []string {
	groups := h.Groups()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Filename
	}
	return names
}

// Append validates record, persists it and then adds it to memory.
// Memory is unchanged when validation or persistence fails.
func (h *History) Append(ctx context.Context, record types.AnalysisRecord) error {
	rec := record.Clone()
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid analysis record: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Append(ctx, rec); err != nil {
		return fmt.Errorf("failed to persist analysis: %w", err)
	}
	h.records = append(h.records, rec)
	return nil
}

// Clear empties both the durable store and memory.
func (h *History) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	h.records = nil
	return nil
}

// Close releases the underlying store.
func (h *History) Close() error {
	return h.store.Close()
}
