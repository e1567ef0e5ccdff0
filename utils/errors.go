package utils

import (
	"net/http"

	"github.com/logtide-backend/lib/result"
)

// ErrorKind classifies every expected failure a core operation can return.
type ErrorKind string

const (
	KindValidation          ErrorKind = "validation"
	KindConflict            ErrorKind = "conflict"
	KindNotFoundOrForbidden ErrorKind = "not_found_or_forbidden"
	KindUnauthorized        ErrorKind = "unauthorized"
	KindInternal            ErrorKind = "internal"
)

// AppError is the error payload carried by core Results. The message is
// safe to return to clients; it never reveals more than the kind implies.
type AppError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// StatusCode maps the kind to its fixed HTTP status category.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFoundOrForbidden:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError reports a malformed field.
func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// ConflictError reports a uniqueness violation.
func ConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NotFoundOrForbiddenError deliberately conflates "absent" and "not yours"
// so callers cannot probe for resource existence. The message is the same
// in both cases.
func NotFoundOrForbiddenError(resource string) *AppError {
	return &AppError{Kind: KindNotFoundOrForbidden, Message: resource + " not found or access denied"}
}

// UnauthorizedError reports a bad, missing, or expired credential. All
// verification failures collapse to this one kind.
func UnauthorizedError() *AppError {
	return &AppError{Kind: KindUnauthorized, Message: "could not validate credentials"}
}

// InternalError hides an unexpected store failure behind a generic message.
func InternalError() *AppError {
	return &AppError{Kind: KindInternal, Message: "internal server error"}
}

// OpResult is the result type shared by all core operations.
type OpResult[T any] = result.Result[T, *AppError]

// Ok wraps a success value as an OpResult.
func Ok[T any](value T) OpResult[T] {
	return result.Ok[T, *AppError](value)
}

// Fail wraps an AppError as an OpResult.
func Fail[T any](err *AppError) OpResult[T] {
	return result.Err[T, *AppError](err)
}
