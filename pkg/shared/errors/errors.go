package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the command line.
const (
	ExitUsage  = 1
	ExitFetch  = 2
	ExitFormat = 3
	ExitIO     = 4
)

// FetchError reports a transport failure while reaching an upstream source.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %q: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %q: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewFetchError creates a FetchError for a transport failure.
func NewFetchError(url string, err error) *FetchError {
	return &FetchError{URL: url, Err: err}
}

// NewFetchStatusError creates a FetchError for a non-successful HTTP status.
func NewFetchStatusError(url string, statusCode int) *FetchError {
	return &FetchError{URL: url, StatusCode: statusCode}
}

// FormatError reports a source payload that lacks an expected structural element.
// Line is 1-based and zero when the position is unknown.
type FormatError struct {
	Source string
	Line   int
	Detail string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Source + ": " + e.Detail
	if e.Line > 0 {
		msg = fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Detail)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// NewFormatError creates a FormatError without position information.
func NewFormatError(source, detail string, err error) *FormatError {
	return &FormatError{Source: source, Detail: detail, Err: err}
}

// NewFormatErrorAt creates a FormatError pointing at a 1-based line.
func NewFormatErrorAt(source string, line int, detail string, err error) *FormatError {
	return &FormatError{Source: source, Line: line, Detail: detail, Err: err}
}

// IOError reports a failure to access the target configuration file.
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError creates an IOError for operation op on path.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// CommandError represents an error that occurred during command execution, storing the exit code.
type CommandError struct {
	ExitCode int
	Err      error
}

// Error implements the error interface, returning the message from the wrapped error.
func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error { return e.Err }

// NewCommandError creates a new CommandError with an explicit exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{ExitCode: code, Err: err}
}

// ExitCodeFor maps an error from the taxonomy to the process exit code.
func ExitCodeFor(err error) int {
	var (
		cmdErr    *CommandError
		fetchErr  *FetchError
		formatErr *FormatError
		ioErr     *IOError
	)
	switch {
	case err == nil:
		return 0
	case errors.As(err, &cmdErr):
		return cmdErr.ExitCode
	case errors.As(err, &fetchErr):
		return ExitFetch
	case errors.As(err, &formatErr):
		return ExitFormat
	case errors.As(err, &ioErr):
		return ExitIO
	default:
		return ExitUsage
	}
}
