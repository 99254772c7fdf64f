// Package errors provides coded errors shared by the showcase CLI, the HTTP
// API and the pipeline.
//
// Codes are machine-readable and stable, so the API can map them to status
// codes and the CLI can decide whether a failure is worth a retry:
//
//	err := errors.Wrap(errors.ErrCodeFetchFailed, cause, "list repositories for %s", owner)
//	if errors.Is(err, errors.ErrCodeFetchFailed) {
//	    // degrade to the fallback project list
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidOwner  Code = "INVALID_OWNER"
	ErrCodeInvalidName   Code = "INVALID_PROJECT_NAME"

	// Remote API errors
	ErrCodeFetchFailed  Code = "FETCH_FAILED"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeNetwork      Code = "NETWORK_ERROR"
	ErrCodeRateLimited  Code = "RATE_LIMITED"
	ErrCodeUnauthorized Code = "UNAUTHORIZED"

	// Contact form errors
	ErrCodeSubmissionFailed Code = "SUBMISSION_FAILED"
	ErrCodeStoreUnavailable Code = "STORE_UNAVAILABLE"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code, or "" for uncoded errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix or cause chain.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// FetchError reports a non-success status from the repository list call.
type FetchError struct {
	StatusCode int
	Owner      string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("GitHub API error: %d (owner %s)", e.StatusCode, e.Owner)
}

// StatusCode extracts the HTTP status from a FetchError in err's chain.
// Returns 0 if there is none.
func StatusCode(err error) int {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.StatusCode
	}
	return 0
}
