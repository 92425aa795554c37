package semantic

import "fmt"

// ModelUnavailableError indicates the embedding model could not be reached or loaded.
// It is fatal at startup: semantic scoring has no fallback.
type ModelUnavailableError struct {
	Model string
	Cause error
}

func (e *ModelUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding model %q unavailable: %v", e.Model, e.Cause)
	}
	return fmt.Sprintf("embedding model %q unavailable", e.Model)
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Cause
}

// EmbeddingError represents a failed embedding call after the model was probed successfully.
type EmbeddingError struct {
	Model   string
	Message string
	Cause   error
}

func (e *EmbeddingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding with %q failed: %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding with %q failed: %s", e.Model, e.Message)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Cause
}
