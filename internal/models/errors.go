package models

import "errors"

// Sentinel error kinds surfaced by the services and repositories.
// Callers match them with errors.Is; the wrapping message carries the
// offending field or ID.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")
)
