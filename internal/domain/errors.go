package domain

import "errors"

// Sentinel errors shared across services. Services wrap these with context
// via fmt.Errorf("...: %w", err); the HTTP layer maps them to status codes
// with errors.Is.
var (
	// ErrValidation covers malformed or unsupported request parameters,
	// e.g. a days window outside the supported set.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers lookups for resources that do not exist or are
	// not visible to the requesting tenant.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized covers missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden covers requests with valid credentials but no access,
	// e.g. a track call with a mismatched tracking code.
	ErrForbidden = errors.New("forbidden")

	// ErrTimeout covers aggregations that exceeded their time budget.
	ErrTimeout = errors.New("operation timed out")
)
