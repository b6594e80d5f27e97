package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Identifier is the identity of a collection item. It is a tagged value
// rather than a raw string: an identifier is either Confirmed (assigned by
// the server and stable forever) or Pending (assigned locally when an
// optimistic create is submitted, and replaced during reconciliation).
//
// Modelling the two states as one type with a tag, instead of a string
// prefix convention, makes it impossible for a server-assigned identifier
// to collide with the pending namespace.
type Identifier struct {
	value   string
	pending bool
}

// ConfirmedID wraps a server-assigned identifier.
func ConfirmedID(id string) Identifier {
	return Identifier{value: id}
}

// NewPendingID mints a fresh client-local identifier for an unconfirmed
// create. Every call returns a distinct value, so two concurrent
// submissions can never collide.
func NewPendingID() Identifier {
	return Identifier{value: uuid.NewString(), pending: true}
}

// Value returns the underlying identifier string.
func (id Identifier) Value() string { return id.value }

// Pending reports whether the identifier is still client-local.
func (id Identifier) Pending() bool { return id.pending }

// IsZero reports whether the identifier is unset.
func (id Identifier) IsZero() bool { return id.value == "" }

// String implements [fmt.Stringer]. Pending identifiers are rendered with a
// "pending:" label for log readability; the label is cosmetic and never part
// of the value itself.
func (id Identifier) String() string {
	if id.pending {
		return fmt.Sprintf("pending:%s", id.value)
	}
	return id.value
}

// MarshalJSON serialises the identifier as its bare string value. Pending
// identifiers never cross a server boundary; they are marshalled only for
// client-side presentation.
func (id Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON parses a bare string value as a confirmed identifier.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal identifier: %w", err)
	}
	*id = ConfirmedID(v)
	return nil
}
