package feed

import (
	"fmt"
	"time"
)

// Direction selects which way a page traversal moves relative to the
// collection's display order. Forward continues in display order (later
// meetups, older threads on a newest-first list); Backward moves the
// opposite way. Direction is bound to the fetch call, never stored inside
// a cursor.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String implements [fmt.Stringer] for log fields.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Opposite returns the reverse traversal direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// CollectionKey names one concrete collection instance: the meetups of a
// group, the comments of a discussion. Kind is the collection variant,
// Parent the owning entity's identifier.
type CollectionKey struct {
	Kind   string
	Parent string
}

// String implements [fmt.Stringer] for log fields.
func (k CollectionKey) String() string {
	return k.Kind + "/" + k.Parent
}

// OrderingKey is the composite key every collection is totally ordered by:
// a timestamp (start time for meetups, creation time for discussions and
// comments) with the item identifier as tie-breaker, so two items sharing
// an instant still order deterministically.
type OrderingKey struct {
	At time.Time
	ID string
}

// Compare orders keys by timestamp, then identifier. It returns -1 when k
// sorts before other, +1 when after, and 0 when the keys are equal.
func (k OrderingKey) Compare(other OrderingKey) int {
	if c := k.At.Compare(other.At); c != 0 {
		return c
	}
	switch {
	case k.ID < other.ID:
		return -1
	case k.ID > other.ID:
		return 1
	default:
		return 0
	}
}
