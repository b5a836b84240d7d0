// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/nbascores/lib/nba"
	"github.com/bureau-foundation/nbascores/lib/nbafeed"
)

// ErrorCategory classifies command errors so that the exit code and
// hint can be chosen without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates bad input: an unparseable flag, a
	// malformed date, an invalid config file.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a feed document or game that does not
	// exist. Retrying with the same arguments will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout, 5xx from the feed server.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected failure, including feed
	// documents that do not decode.
	CategoryInternal ErrorCategory = "internal"
)

// ExitCode returns the process exit code for the category.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 3
	case CategoryTransient:
		return 4
	default:
		return 1
	}
}

// ToolError is a categorised error returned by the command. It wraps an
// inner error, preserving the chain for errors.Is and errors.As.
type ToolError struct {
	Category ErrorCategory
	Err      error

	// Hint is an optional suggestion printed after the message.
	Hint string
}

// Error returns the message, followed by the hint after a blank line
// when one is set.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode implements the interface main checks for.
func (e *ToolError) ExitCode() int { return e.Category.ExitCode() }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Classify wraps a feed-layer error in a ToolError of the matching
// category. ToolErrors pass through unchanged and nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return err
	}

	var decodeErr *nba.DecodeError
	switch {
	case nbafeed.IsNotFound(err):
		return NotFound("%w", err).
			WithHint("The feed has no such document. Check the date with -d and the game id with --game.")
	case nbafeed.IsTransient(err):
		return Transient("%w", err).
			WithHint("The feed server did not answer. Try again shortly, or read saved feeds with --feed-dir.")
	case errors.As(err, &decodeErr):
		return Internal("%w", err).
			WithHint("The feed document did not have the expected shape.")
	default:
		return Internal("%w", err)
	}
}
