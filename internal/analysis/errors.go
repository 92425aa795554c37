package analysis

import "fmt"

// EmptyInputError indicates a required input was missing or blank.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ParseLayoutError indicates an unknown comparison layout name.
type ParseLayoutError struct {
	Value string
}

func (e *ParseLayoutError) Error() string {
	return fmt.Sprintf("unknown layout %q: use %s or %s", e.Value, LayoutSideBySide, LayoutStacked)
}
