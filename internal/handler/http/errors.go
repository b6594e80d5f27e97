package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidToken is returned when the bearer token is malformed,
	// expired, or fails signature or issuer verification.
	ErrInvalidToken = errors.New("invalid bearer token")

	// ErrUnknownDirection is returned when the `direction` query parameter
	// is neither "forward" nor "backward".
	ErrUnknownDirection = errors.New("unknown pagination direction")

	// ErrInvalidLimit is returned when the `limit` query parameter is not
	// a positive integer.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)
