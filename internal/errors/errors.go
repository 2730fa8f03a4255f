package errors

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies an APIError. Every kind maps to exactly one HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	// KindUnauthenticated means no credentials or session were presented.
	KindUnauthenticated
	// KindForbidden means the caller is authenticated but holds the wrong role.
	KindForbidden
	// KindBlocked and KindInactive are the account-state failures.
	KindBlocked
	KindInactive
	KindValidation
	KindNotFound
	KindConflict
	KindUnavailable
)

// String returns a stable name for logs.
func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindBlocked:
		return "blocked"
	case KindInactive:
		return "inactive"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code used for the kind.
func (k Kind) Status() int {
	switch k {
	case KindUnauthenticated, KindForbidden:
		return http.StatusUnauthorized
	case KindInactive:
		return http.StatusNotAcceptable
	case KindBlocked:
		return http.StatusExpectationFailed
	case KindValidation, KindNotFound, KindConflict:
		return http.StatusUnprocessableEntity
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// APIError represents a standardized API error response
type APIError struct {
	Kind    Kind   `json:"-"`
	Title   string `json:"title"`
	Message string `json:"message"`
	// Field names the input that failed validation, when there is one.
	Field string `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Title + ": " + e.Message
}

// Status returns the HTTP status code for the error.
func (e *APIError) Status() int {
	return e.Kind.Status()
}

// WithField returns a copy of e that records the offending field.
func (e *APIError) WithField(field string) *APIError {
	cp := *e
	cp.Field = field
	return &cp
}

// NewAPIError creates a new APIError
func NewAPIError(kind Kind, title, message string) *APIError {
	return &APIError{
		Kind:    kind,
		Title:   title,
		Message: message,
	}
}

// Validation builds a malformed or missing field error.
func Validation(title, message string) *APIError {
	return NewAPIError(KindValidation, title, message)
}

// NotFound builds a referenced-entity-absent error.
func NotFound(title, message string) *APIError {
	return NewAPIError(KindNotFound, title, message)
}

// Conflict builds a uniqueness conflict error.
func Conflict(title, message string) *APIError {
	return NewAPIError(KindConflict, title, message)
}

// Unavailable builds a dependency-not-configured error.
func Unavailable(title, message string) *APIError {
	return NewAPIError(KindUnavailable, title, message)
}

// Predefined errors
var (
	ErrUnauthenticated = NewAPIError(KindUnauthenticated, "UnAuthenticated", "Not Authenticated")
	ErrInvalidToken    = NewAPIError(KindUnauthenticated, "UnAuthenticated", "Token is invalid or expired")
	ErrAccountBlocked  = NewAPIError(KindBlocked, "Account Blocked", "Account Blocked")
	ErrAccountInactive = NewAPIError(KindInactive, "Account Inactive", "Account Not Active")
	ErrInternal        = NewAPIError(KindInternal, "Server Error", "Internal server error")
)

// KindOf returns the kind carried by err, or KindInternal when err is not an APIError.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(err.Status(), err)
}

// Respond writes err as a {title, message} body. Errors that are not APIErrors are
// logged and hidden behind a generic 500.
func Respond(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		RespondWithError(c, apiErr)
		return
	}

	slog.Error("unhandled error",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	RespondWithError(c, ErrInternal)
}
