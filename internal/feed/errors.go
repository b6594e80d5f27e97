package feed

import "errors"

// Sentinel errors surfaced by the engine. Callers should match against
// these values with [errors.Is]. Nothing here is fatal: cursor problems
// are recovered locally, everything else is surfaced with a well-defined
// rollback of any optimistic state.
var (
	// ErrInvalidCursor is returned when an opaque cursor token cannot be
	// decoded. Callers must treat it as "restart from the beginning of that
	// direction", never as a fatal condition; the engine's own fetch path
	// already recovers this way.
	ErrInvalidCursor = errors.New("invalid pagination cursor")

	// ErrFetchFailed wraps a store or transport failure during a page
	// fetch. The controller's retained page is left untouched.
	ErrFetchFailed = errors.New("page fetch failed")

	// ErrUnauthorized is returned when the acting user is not permitted to
	// perform a mutation. The pending mutation is rolled back before the
	// error is surfaced.
	ErrUnauthorized = errors.New("actor is not authorized")

	// ErrValidationFailed is returned when the server rejects a create's
	// draft. The pending item is removed; the draft itself is the caller's
	// to retain for correction.
	ErrValidationFailed = errors.New("draft validation failed")

	// ErrNotFound is returned when a delete targets an item that no longer
	// exists. The optimistic suppression is reverted first.
	ErrNotFound = errors.New("item not found")

	// ErrSessionClosed is returned by calls on a torn-down session. An
	// in-flight load observing it has been discarded without touching the
	// session's state.
	ErrSessionClosed = errors.New("session is closed")
)
