package reader

import "fmt"

// FormatError is a document-format error: unknown, missing or ill-typed
// fields, an unknown task type, or a missing required capability. It is
// always raised during the read phase, before any task runs.
type FormatError struct {
	Line   int
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("document format error at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("document format error: %s", e.Reason)
}

// formatErrorf builds a FormatError pointing at the given source line.
func formatErrorf(line int, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
