package feed

import (
	"slices"

	"github.com/velikanov/groupsync/models"
)

// Overlay holds the client-local optimistic state of one collection:
// pending creates (visible immediately under a pending identifier) and
// pending deletes (suppressing their target from every merged view), plus
// the permanent record of confirmed deletions. An overlay is owned by
// exactly one session for the lifetime of that session; the session
// serializes access.
type Overlay[T any] struct {
	variant Variant[T]

	// creates holds pending and just-reconciled creates in submission
	// order. A reconciled entry stays merged in until a confirmed page
	// carries its real identifier, then it is purged.
	creates []T

	// deletes suppresses identifiers with an unconfirmed delete.
	deletes map[string]struct{}

	// removed records confirmed deletions. Unlike deletes it is never
	// reverted: once the server confirmed, the identifier stays excluded
	// even after the ledger forgets the mutation.
	removed map[string]struct{}
}

// NewOverlay constructs an empty overlay for one collection variant.
func NewOverlay[T any](variant Variant[T]) *Overlay[T] {
	return &Overlay[T]{
		variant: variant,
		deletes: make(map[string]struct{}),
		removed: make(map[string]struct{}),
	}
}

// SubmitCreate registers a pending create for the draft and returns the
// draft stamped with a fresh pending identifier. Concurrent submissions
// each get a distinct identifier; none is ever reused.
func (o *Overlay[T]) SubmitCreate(draft T) (T, models.Identifier) {
	id := models.NewPendingID()
	item := o.variant.WithIdentifier(draft, id)
	o.creates = append(o.creates, item)
	return item, id
}

// SubmitDelete suppresses the identifier from merged views until the
// delete is confirmed or reverted.
func (o *Overlay[T]) SubmitDelete(id models.Identifier) {
	o.deletes[id.Value()] = struct{}{}
}

// RevertDelete lifts an unconfirmed suppression; the item reappears on the
// next merge.
func (o *Overlay[T]) RevertDelete(id models.Identifier) {
	delete(o.deletes, id.Value())
}

// ConfirmDelete makes the suppression permanent.
func (o *Overlay[T]) ConfirmDelete(id models.Identifier) {
	delete(o.deletes, id.Value())
	o.removed[id.Value()] = struct{}{}
}

// ResolveCreate rewrites the pending create identified by tempID into the
// server's confirmed copy, in place. It reports whether a matching pending
// entry existed.
func (o *Overlay[T]) ResolveCreate(tempID models.Identifier, confirmed T) bool {
	for i, item := range o.creates {
		id := o.variant.IdentifierOf(item)
		if id.Pending() && id.Value() == tempID.Value() {
			o.creates[i] = confirmed
			return true
		}
	}
	return false
}

// DropCreate removes the pending create identified by tempID entirely,
// used when the server rejected the mutation. It reports whether a
// matching entry existed.
func (o *Overlay[T]) DropCreate(tempID models.Identifier) bool {
	for i, item := range o.creates {
		id := o.variant.IdentifierOf(item)
		if id.Pending() && id.Value() == tempID.Value() {
			o.creates = slices.Delete(o.creates, i, i+1)
			return true
		}
	}
	return false
}

// HasCreate reports whether any create entry (pending or reconciled)
// currently carries the given identifier value.
func (o *Overlay[T]) HasCreate(idValue string) bool {
	for _, item := range o.creates {
		if o.variant.IdentifierOf(item).Value() == idValue {
			return true
		}
	}
	return false
}

// PendingCreates returns the number of unconfirmed create entries.
func (o *Overlay[T]) PendingCreates() int {
	n := 0
	for _, item := range o.creates {
		if o.variant.IdentifierOf(item).Pending() {
			n++
		}
	}
	return n
}

// PendingDeletes returns the number of unconfirmed delete suppressions.
func (o *Overlay[T]) PendingDeletes() int { return len(o.deletes) }

// Merge overlays the pending state onto a confirmed page set, in display
// order. Reconciled creates whose identifier already appears in the
// confirmed set are purged (the server copy is authoritative), suppressed
// and removed identifiers are excluded wherever they occur, and no logical
// entity ever appears twice. Merging the same confirmed set twice yields
// the same sequence.
func (o *Overlay[T]) Merge(confirmed []T) []T {
	present := make(map[string]struct{}, len(confirmed))
	for _, item := range confirmed {
		present[o.variant.IdentifierOf(item).Value()] = struct{}{}
	}

	// Reconciliation completed: the confirmed set now carries the real
	// identifier, so the overlay's copy retires.
	o.creates = slices.DeleteFunc(o.creates, func(item T) bool {
		id := o.variant.IdentifierOf(item)
		if id.Pending() {
			return false
		}
		_, merged := present[id.Value()]
		return merged
	})

	seen := make(map[string]struct{}, len(confirmed)+len(o.creates))
	merged := make([]T, 0, len(confirmed)+len(o.creates))
	for _, item := range confirmed {
		idValue := o.variant.IdentifierOf(item).Value()
		if o.excluded(idValue, seen) {
			continue
		}
		seen[idValue] = struct{}{}
		merged = append(merged, item)
	}

	for _, item := range o.creates {
		idValue := o.variant.IdentifierOf(item).Value()
		if o.excluded(idValue, seen) {
			continue
		}
		seen[idValue] = struct{}{}

		if o.variant.NewestFirst() {
			// Prepending in submission order leaves the latest submission
			// on top of a newest-first collection.
			merged = slices.Insert(merged, 0, item)
			continue
		}

		// Time-ordered collections insert at the sorted position, using
		// the same key comparison the cursor codec is built on.
		at, _ := slices.BinarySearchFunc(merged, item, func(a, b T) int {
			return o.variant.OrderingKeyOf(a).Compare(o.variant.OrderingKeyOf(b))
		})
		merged = slices.Insert(merged, at, item)
	}

	return merged
}

func (o *Overlay[T]) excluded(idValue string, seen map[string]struct{}) bool {
	if _, dup := seen[idValue]; dup {
		return true
	}
	if _, pendingDelete := o.deletes[idValue]; pendingDelete {
		return true
	}
	_, removed := o.removed[idValue]
	return removed
}
