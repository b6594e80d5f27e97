package service

import "errors"

// Mutation failures surfaced to callers. Every failure carries a typed
// sentinel so transports can map it to a status code and optimistic
// clients can roll their pending state back.
var (
	// ErrUnauthorized is returned when the acting user's role does not
	// permit the operation.
	ErrUnauthorized = errors.New("operation is not permitted")

	// ErrValidationFailed is returned when a draft fails validation. The
	// caller keeps the draft for correction; nothing was persisted.
	ErrValidationFailed = errors.New("draft validation failed")

	// ErrNotFound is returned when a delete targets an item that does not
	// exist or was already removed.
	ErrNotFound = errors.New("item was not found")
)
