// Package apperr defines the sentinel error kinds from the system's error
// handling design: a small set of fatal conditions the CLIs surface and
// exit non-zero on, versus recoverable ones that are logged and skipped.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOpen means the index file is missing, unreadable, or its
	// magic number does not match. Fatal: the caller cannot proceed.
	ErrIndexOpen = errors.New("index open failed")

	// ErrIndexIO means a read was truncated mid-record while loading the
	// forward or inverted region. Fatal.
	ErrIndexIO = errors.New("index i/o error")

	// ErrSourceConnect means the document store could not be reached at
	// build start. Fatal.
	ErrSourceConnect = errors.New("document source unreachable")

	// ErrOutOfRange means an offset landed at or past total_count. Not
	// fatal: callers translate it into an empty result page.
	ErrOutOfRange = errors.New("offset past end of results")
)

// AppError wraps a sentinel with operator-facing context, matching the
// shape used across the retrieved corpus for distinguishing "what kind of
// failure" (via errors.Is on the sentinel) from "what happened" (Message).
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New wraps sentinel with a formatted message.
func New(sentinel error, format string, args ...any) *AppError {
	return &AppError{Err: sentinel, Message: fmt.Sprintf(format, args...)}
}

// Fatal reports whether err should cause a CLI to exit 1, per the error
// handling design: index-file and source-connect failures are global and
// surfaced; row-level and pagination failures are local and recovered.
func Fatal(err error) bool {
	return errors.Is(err, ErrIndexOpen) || errors.Is(err, ErrIndexIO) || errors.Is(err, ErrSourceConnect)
}
