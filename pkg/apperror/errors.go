package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies a business-rule failure. Every kind carries a fixed HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
	KindForbidden
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// Status returns the transport status code carried by the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrNotFound          = &AppError{Kind: KindNotFound, Message: "resource not found"}
	ErrConflict          = &AppError{Kind: KindConflict, Message: "resource already exists"}
	ErrInvalidInput      = &AppError{Kind: KindValidation, Message: "invalid input"}
	ErrUnauthorized      = &AppError{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrForbidden         = &AppError{Kind: KindForbidden, Message: "forbidden"}
	ErrRateLimitExceeded = &AppError{Kind: KindRateLimited, Message: "rate limit exceeded"}
)

// AppError is a taxonomy error. Message and Details are safe to show to callers, Err is not.
type AppError struct {
	Kind       Kind
	Message    string
	Details    []string
	RetryAfter time.Duration
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same kind, so errors.Is(err, ErrNotFound) works
// for every not-found error regardless of its message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Status returns the HTTP status code for the error.
func (e *AppError) Status() int {
	return e.Kind.Status()
}

// Wrap attaches an internal cause without changing the caller-visible message.
func (e *AppError) Wrap(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func Validation(message string, details ...string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func RateLimited(message string, retryAfter time.Duration) *AppError {
	return &AppError{Kind: KindRateLimited, Message: message, RetryAfter: retryAfter}
}

// As extracts the taxonomy error from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the kind of err. Errors outside the taxonomy are KindInternal.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// MapErrorToStatus maps errors to HTTP status codes
func MapErrorToStatus(err error) int {
	return KindOf(err).Status()
}
