package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrOrderNotFound is returned when a print order is not found
	ErrOrderNotFound = errors.New("print order not found")

	// ErrEstimateNotFound is returned when an estimate is not found
	ErrEstimateNotFound = errors.New("estimate not found")

	// ErrArtworkTooLarge is returned when an uploaded artwork file exceeds
	// the configured size limit
	ErrArtworkTooLarge = errors.New("artwork file exceeds size limit")
)
