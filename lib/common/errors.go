package common

import (
	"errors"
	"fmt"
	"os/exec"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the error type returned by all maintenance operations. It wraps a
// failure classification (of type Kind) and a short diagnostic message.
type Error struct {
	Kind   Kind   // The failure classification
	Msg    string // The diagnostic message
	Err    error  // Optional underlying cause
	Status int    // Exit status of a failed external command (KindExternal only, -1 if unknown)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given kind and message.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// WrapError creates a new Error with the given kind and message that wraps an
// underlying cause.
func WrapError(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

// ExternalError creates a new Error for a failed external command. The exit
// status of the command is extracted from err if it wraps an *exec.ExitError.
func ExternalError(err error, format string, args ...interface{}) *Error {
	status := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status = exitErr.ExitCode()
	}
	return &Error{
		Kind:   KindExternal,
		Msg:    fmt.Sprintf(format, args...),
		Err:    err,
		Status: status,
	}
}

// --------------------------------------------------------------------------
// Failure Kinds
// --------------------------------------------------------------------------

type Kind uint64

const (
	KindUsage        Kind = iota + 1 // 1: Invalid arguments or flags.
	KindEnvironment                  // 2: Required environment variable, directory or binary is missing.
	KindPrecondition                 // 3: A filesystem precondition does not hold.
	KindExternal                     // 4: A delegated external command failed.
	KindAborted                      // 5: The user declined an interactive confirmation.
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "Usage"
	case KindEnvironment:
		return "Environment"
	case KindPrecondition:
		return "Precondition"
	case KindExternal:
		return "External"
	case KindAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Exit Status Mapping
// --------------------------------------------------------------------------

// Exit statuses of the utility. Failed external commands propagate their own
// exit status instead when it is known.
const (
	ExitOK          = 0
	ExitFailure     = 1 // usage errors, failed preconditions, user aborts
	ExitEnvironment = 2 // missing environment variable, directory or binary
	ExitExternal    = 3 // external command failed with unknown status
)

// ExitStatus returns the process exit status for an error returned by an
// operation. A nil error maps to ExitOK, errors without a classification map
// to ExitFailure.
func ExitStatus(err error) int {
	if err == nil {
		return ExitOK
	}

	var opErr *Error
	if !errors.As(err, &opErr) {
		return ExitFailure
	}

	switch opErr.Kind {
	case KindEnvironment:
		return ExitEnvironment
	case KindExternal:
		// propagate the exit status of the failed command
		if opErr.Status > 0 {
			return opErr.Status
		}
		return ExitExternal
	default:
		return ExitFailure
	}
}
