package service

import "errors"

// Error taxonomy surfaced to the delivery layer. Handlers map these onto
// HTTP status codes; anything else is an internal error.
var (
	// ErrValidation marks malformed input to a write operation. The operation
	// aborts before any write happens.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks reads for an id or slug that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraint marks a write that would violate a uniqueness invariant in
	// a context expecting a pure insert. Writes normally go through upserts, so
	// this is handled defensively at the boundary.
	ErrConstraint = errors.New("constraint violation")
)
