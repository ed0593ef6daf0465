// Package apperrors defines the error taxonomy shared by the service and the
// HTTP layer. Errors are wrapped at the point of failure and classified with
// errors.Is at the request boundary.
package apperrors

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Code returns a stable machine-readable code for err, for structured logs.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrAlreadyExists):
		return "ALREADY_EXISTS"
	case errors.Is(err, ErrInsufficientPoints):
		return "INSUFFICIENT_POINTS"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	default:
		return "INTERNAL_ERROR"
	}
}
