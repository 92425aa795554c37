package history

import (
	"fmt"

	"github.com/google/uuid"
)

// UnsupportedVersionError indicates a history document written by a newer version of the program.
type UnsupportedVersionError struct {
	Version   int
	Supported int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("history document version %d is newer than supported version %d", e.Version, e.Supported)
}

// CorruptHistoryError represents a history document that cannot be decoded or fails schema validation.
type CorruptHistoryError struct {
	Source  string
	Message string
	Cause   error
}

func (e *CorruptHistoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt history %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("corrupt history %s: %s", e.Source, e.Message)
}

func (e *CorruptHistoryError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates no record with the given ID exists.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("analysis %s not found", e.ID)
}

// StoreError wraps a failure of the durable backend.
type StoreError struct {
	Backend string
	Op      string
	Cause   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store: %s: %v", e.Backend, e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
