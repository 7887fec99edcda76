// Package errors provides sentinel errors and error types for chesskit.
// It defines common error conditions and a structured parse error that
// preserves context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed algebraic coordinate.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrGameNotFound indicates a saved game id that does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrCorruptSave indicates a saved game record that cannot be replayed.
	ErrCorruptSave = errors.New("corrupt saved game")

	// ErrPlyOutOfRange indicates a history index outside the move list.
	ErrPlyOutOfRange = errors.New("ply index out of range")
)

// ParseError represents a FEN (or coordinate) parsing error with the
// offending input and field context. It unwraps to ErrInvalidFEN so callers
// can test the class of failure without inspecting the message.
type ParseError struct {
	Err      error  // The underlying error (usually ErrInvalidFEN)
	Input    string // The full input that failed to parse
	Field    string // The FEN field being parsed ("placement", "clocks", ...)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with field and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
