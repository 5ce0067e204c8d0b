package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument  = "invalid_argument"
	categoryResourceConflict = "resource_conflict"
	categoryUpstream         = "upstream_unavailable"
	categoryInternal         = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusBadRequest,
	}
}

// NewResourceConflictError creates a new ServiceError with category resource_conflict.
func NewResourceConflictError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryResourceConflict,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusConflict,
	}
}

// NewUpstreamError creates a ServiceError for a dependency (event store, catalog database)
// that could not serve a read. The cause is kept as-is so callers can still match it.
func NewUpstreamError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryUpstream,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusServiceUnavailable,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: http.StatusInternalServerError,
	}
}

// NewInternalErrorUndefined wraps an error that carries no service code (SYS_9001).
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError extracts a ServiceError from the error chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// CodeOf returns the service code carried by err, or SYS_9001 when err has none.
func CodeOf(err error) string {
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr.Code
	}
	return errorCodeInternalUndefined
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // invalid_argument, resource_conflict, upstream_unavailable or internal
	Code           string // service-owned stable code (e.g. ANA_9000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// IsInternalError reports whether the error should be logged as a server-side failure.
// Upstream failures count as internal for logging even though they map to 503.
func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal || e.Category == categoryUpstream
}
