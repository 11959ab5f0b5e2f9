// Package apperr defines the error taxonomy shared by the stores: malformed
// input, missing entities, duplicate membership, and remote backend failures.
// Callers branch on category with the Is* predicates; messages pass through
// verbatim.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed user input: empty names, malformed
// invite codes, short passwords. Raised before any remote call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports a lookup that resolved to nothing.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// ConflictError reports a mutation that would duplicate existing state,
// such as joining a household the caller already belongs to.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// RemoteError wraps a failure reported by the remote store. The underlying
// message is preserved verbatim for display and diagnostics.
type RemoteError struct {
	Err error
}

func (e *RemoteError) Error() string { return e.Err.Error() }
func (e *RemoteError) Unwrap() error { return e.Err }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

func Remote(err error) error {
	if err == nil {
		return nil
	}
	return &RemoteError{Err: err}
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsRemote(err error) bool {
	var e *RemoteError
	return errors.As(err, &e)
}
