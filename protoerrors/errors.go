package protoerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a parent reference failure.
	ErrReference = errors.New("reference error")

	// ErrInheritanceCycle indicates a cyclic parent chain was detected.
	ErrInheritanceCycle = errors.New("inheritance cycle")

	// ErrNotFound indicates a prototype id was not found in the store.
	ErrNotFound = errors.New("prototype not found")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a prototype file.
// Per-file parse errors are recoverable: the load batch records them
// and continues with the remaining files.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a failure while walking a prototype's parent
// chain. This covers inheritance cycles and exhausted depth limits.
// Unresolved parent ids are deliberately NOT errors; they are reported as
// warnings and the affected branch contributes nothing.
type ReferenceError struct {
	// ID is the prototype id whose parent chain failed
	ID string
	// Path is the chain of prototype ids walked to reach the failure
	Path []string
	// IsCircular is true if this error is due to an inheritance cycle
	IsCircular bool
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "inheritance cycle"
	}
	if e.ID != "" {
		msg += ": " + e.ID
	}
	if len(e.Path) > 0 {
		msg += fmt.Sprintf(" (chain: %v)", e.Path)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrInheritanceCycle when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrInheritanceCycle && e.IsCircular
}

// NotFoundError indicates that the requested prototype id is absent from
// the document store.
type NotFoundError struct {
	// ID is the prototype id that was requested
	ID string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("prototype not found: %s", e.ID)
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
