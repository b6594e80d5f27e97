package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMeetupNotFound is returned when a query or delete targets a meetup
	// that does not exist or is already tombstoned.
	ErrMeetupNotFound = errors.New("meetup was not found")

	// ErrDiscussionNotFound is returned when a query or delete targets a
	// discussion that does not exist or is already tombstoned.
	ErrDiscussionNotFound = errors.New("discussion was not found")

	// ErrCommentNotFound is returned when a query or delete targets a comment
	// that does not exist or is already tombstoned.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrDuplicateIdentifier is returned when an INSERT collides with an
	// existing row's identifier. Creates are idempotent under identifier
	// reuse during reconciliation, so callers may treat the existing row as
	// the result of the create.
	ErrDuplicateIdentifier = errors.New("identifier already exists")

	// ErrNothingSaved is returned when an INSERT completes without error but
	// the number of affected rows is zero.
	ErrNothingSaved = errors.New("no rows were saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
