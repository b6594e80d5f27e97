// Package validators holds the draft validation rules the services apply
// before any write reaches the store. Validation lives behind a small
// interface so services stay decoupled from the concrete rule set and
// tests can substitute their own.
package validators

import "context"

// Validator checks an arbitrary input value. Passing field names narrows
// the check to those fields; an unknown name is itself an error.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
