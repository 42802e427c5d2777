// Package apperr defines application-level error types shared across features.
package apperr

import "strings"

// ValidationError aggregates field-level violation messages so that a single
// response can report every violation at once instead of failing on the first.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Add appends a violation message.
func (e *ValidationError) Add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// HasErrors reports whether any violation was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Messages) > 0
}
