package domain

import (
	"fmt"
	"strings"
)

// SchemaError reports every required column absent from a batch table.
// It is raised before any row is processed.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// RowError reports an invalid value in a batch row. A single bad row
// aborts the whole batch before any invoice is built.
type RowError struct {
	Row     int
	Field   string
	Message string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// FieldError reports missing required fields on a single-invoice request.
type FieldError struct {
	Missing []string
}

func (e *FieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// RenderError wraps a failure from the document renderer collaborator.
type RenderError struct {
	Invoice string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering invoice %s: %v", e.Invoice, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
