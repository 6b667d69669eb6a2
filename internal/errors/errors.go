package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents an AstroScan error code.
type ErrorCode string

const (
	ErrInvalidInput    ErrorCode = "INVALID_INPUT"    // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrSessionState    ErrorCode = "SESSION_STATE"    // 409
	ErrExternalService ErrorCode = "EXTERNAL_SERVICE" // 502
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// ReadingError represents a structured error with code, status, and details.
type ReadingError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ReadingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidInput creates a 400 error for malformed input such as an
// unparseable birth date or time.
func NewInvalidInput(msg string) *ReadingError {
	return &ReadingError{
		Code:    ErrInvalidInput,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a session or reading cannot be found.
func NewNotFound(identifier string) *ReadingError {
	return &ReadingError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewSessionState creates a 409 error for an operation that does not match
// the session's current step (e.g. submitting cards before birth data).
func NewSessionState(step, operation string) *ReadingError {
	return &ReadingError{
		Code:    ErrSessionState,
		Status:  409,
		Message: fmt.Sprintf("operation %q not valid in step %q", operation, step),
		Details: map[string]any{"step": step, "operation": operation},
	}
}

// NewExternalService creates a 502 error for an unreachable or misbehaving
// collaborator (card catalog, narrative generator). Callers degrade to a
// builtin fallback rather than surfacing this to the end user.
func NewExternalService(service string, err error) *ReadingError {
	msg := fmt.Sprintf("%s unavailable", service)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", service, err)
	}
	return &ReadingError{
		Code:    ErrExternalService,
		Status:  502,
		Message: msg,
		Details: map[string]any{"service": service},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *ReadingError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ReadingError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is (or wraps) a ReadingError with the given code.
func Is(err error, code ErrorCode) bool {
	var rErr *ReadingError
	if stderrors.As(err, &rErr) {
		return rErr.Code == code
	}
	return false
}
