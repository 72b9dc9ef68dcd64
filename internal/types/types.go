// Package types provides shared types used across the stackpick codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import "errors"

// ErrInvalidInput is returned by the recommendation engine when a catalog or
// preset violates a precondition. It is always raised before any scoring
// arithmetic runs.
var ErrInvalidInput = errors.New("invalid input")

// ValidationIssue represents a problem found while checking a catalog file.
type ValidationIssue struct {
	File     string `json:"file"`
	Message  string `json:"message"`
	Severity string `json:"severity"`         // error, warning
	Source   string `json:"source,omitempty"` // schema, loader
}

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue source constants.
const (
	SourceSchema = "schema" // CUE catalog schema
	SourceLoader = "loader" // catalog loader checks (duplicates, decoding)
)

