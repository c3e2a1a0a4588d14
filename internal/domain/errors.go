package domain

import "fmt"

// ValidationError reports a field that failed its rule. Maps to HTTP 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a missing row. Maps to HTTP 404.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports a uniqueness violation. Maps to HTTP 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(msg string) error { return &ConflictError{Msg: msg} }

// AuthorizationError reports an owner mismatch. Maps to HTTP 403.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

func Unauthorized(msg string) error { return &AuthorizationError{Msg: msg} }

// UnexpectedError wraps storage failures we cannot classify. Maps to HTTP 500;
// the wrapped cause stays in logs, never in responses.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return "unexpected error: " + e.Err.Error() }
func (e *UnexpectedError) Unwrap() error { return e.Err }

func Unexpected(err error) error { return &UnexpectedError{Err: err} }
