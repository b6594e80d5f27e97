package feed

import (
	"fmt"

	"github.com/velikanov/groupsync/models"
)

// Ledger tracks in-flight mutations and reconciles their outcome into the
// overlay: a confirmed create rewrites every occurrence of the pending
// identifier to the server-assigned one, a failed mutation rolls the
// optimistic state back. The ledger only drives transitions; the overlay
// is authoritative for what stays excluded after a confirmed delete.
//
// A ledger is mutated only by the session that owns the corresponding
// in-flight mutation; no two components race to resolve the same pending
// identifier.
type Ledger[T any] struct {
	overlay *Overlay[T]

	// resolved maps a pending identifier value to the confirmed one until
	// the merge cycle that carries the real identifier completes.
	resolved map[string]string
}

// NewLedger constructs a ledger bound to the overlay it reconciles into.
func NewLedger[T any](overlay *Overlay[T]) *Ledger[T] {
	return &Ledger[T]{
		overlay:  overlay,
		resolved: make(map[string]string),
	}
}

// CreateConfirmed rewrites the pending create identified by tempID into
// the server's confirmed copy, including the assigned identifier and any
// server-computed fields. The mapping is retained until a merge carries
// the confirmed identifier, then purged by [Ledger.Compact].
func (l *Ledger[T]) CreateConfirmed(tempID models.Identifier, confirmed T) {
	if l.overlay.ResolveCreate(tempID, confirmed) {
		l.resolved[tempID.Value()] = l.overlay.variant.IdentifierOf(confirmed).Value()
	}
}

// CreateFailed removes the pending item entirely and returns the error to
// surface. There is no automatic retry of user-authored content; retrying
// is an explicit caller decision.
func (l *Ledger[T]) CreateFailed(tempID models.Identifier, cause error) error {
	l.overlay.DropCreate(tempID)
	return fmt.Errorf("create %s rolled back: %w", tempID, cause)
}

// DeleteConfirmed makes the suppression of id permanent. The exclusion
// survives even after the ledger itself forgets the mutation.
func (l *Ledger[T]) DeleteConfirmed(id models.Identifier) {
	l.overlay.ConfirmDelete(id)
}

// DeleteFailed reverts the suppression, so the item reappears on the
// next merge, and returns the error to surface.
func (l *Ledger[T]) DeleteFailed(id models.Identifier, cause error) error {
	l.overlay.RevertDelete(id)
	return fmt.Errorf("delete %s reverted: %w", id, cause)
}

// Resolve translates a pending identifier that has already been confirmed
// into its server-assigned form. Identifiers the ledger does not know are
// returned unchanged.
func (l *Ledger[T]) Resolve(id models.Identifier) models.Identifier {
	if !id.Pending() {
		return id
	}
	if real, ok := l.resolved[id.Value()]; ok {
		return models.ConfirmedID(real)
	}
	return id
}

// Compact retires resolved entries whose reconciled item has left the
// overlay, which happens once a confirmed page carried the real
// identifier and the merge completed.
func (l *Ledger[T]) Compact() {
	for temp, real := range l.resolved {
		if !l.overlay.HasCreate(real) {
			delete(l.resolved, temp)
		}
	}
}
