// ================== pkg/errors/errors.go =================
package errors

import "errors"

// Sentinel errors shared across features. Services wrap these with a
// human-readable message (fmt.Errorf("...: %w", ErrNotFound)); handlers
// map them to HTTP status codes with errors.Is.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrStorage          = errors.New("storage failure")
	ErrValidation       = errors.New("validation failed")
)
