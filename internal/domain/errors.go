package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// Is implementations so the structured errors match their sentinels
func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// HasChildrenError rejects deletion of a category that still has
// subcategories. The message is part of the public API surface.
type HasChildrenError struct {
	CategoryID string
}

func (e *HasChildrenError) Error() string {
	return "Cannot delete category with children"
}

func (e *HasChildrenError) StatusCode() int { return http.StatusConflict }

func (e *HasChildrenError) Is(target error) bool { return target == ErrConflict }

// InUseError rejects deletion of a category referenced by one or more
// items. The message is part of the public API surface.
type InUseError struct {
	CategoryID string
}

func (e *InUseError) Error() string {
	return "Cannot delete category that is used by items"
}

func (e *InUseError) StatusCode() int { return http.StatusConflict }

func (e *InUseError) Is(target error) bool { return target == ErrConflict }

// UpstreamError indicates a failure in an external collaborator (the
// auth key endpoint, the image upload provider).
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Service + ": " + e.Err.Error()
	}
	return e.Service + ": upstream failure"
}

func (e *UpstreamError) StatusCode() int { return http.StatusBadGateway }

func (e *UpstreamError) Unwrap() error { return e.Err }
