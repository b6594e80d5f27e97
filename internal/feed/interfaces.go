package feed

import (
	"context"
	"time"

	"github.com/velikanov/groupsync/models"
)

// PageQuery is the bounded, ordered store query one page fetch issues.
// After is the decoded cursor key, nil on an initial load; Now anchors the
// initial window of time-ordered collections (forward means "after now",
// backward "before now"). Implementations return up to Limit+1 rows in
// traversal order so the caller can detect that more pages exist.
type PageQuery struct {
	Collection CollectionKey
	Direction  Direction
	After      *OrderingKey
	Limit      int
	Now        time.Time
}

// PageSource is the store-side query interface a local fetcher runs on.
// FindPage must issue a bounded, small number of queries regardless of
// page size; per-item lookups belong in a batched [Annotator], not here.
type PageSource[T any] interface {
	FindPage(ctx context.Context, q PageQuery) ([]T, error)
	FindRole(ctx context.Context, actorID string, collection CollectionKey) (models.Role, error)
}

// Variant supplies the per-collection behavior the generic engine is
// parameterized over: how to read an item's ordering key and identity, and
// which way the collection naturally displays.
type Variant[T any] interface {
	// OrderingKeyOf extracts the composite ordering key of an item. The
	// same comparison backs both cursor derivation and overlay insertion,
	// so pending and confirmed items always agree on order.
	OrderingKeyOf(item T) OrderingKey

	// IdentifierOf extracts the item's identity.
	IdentifierOf(item T) models.Identifier

	// WithIdentifier returns a copy of the item carrying the given
	// identity. Used during reconciliation to rewrite pending items.
	WithIdentifier(item T, id models.Identifier) T

	// NewestFirst reports whether the collection displays most recent
	// first (discussions, comments) rather than in ascending key order
	// (meetups).
	NewestFirst() bool
}

// VisibilityPolicy removes items the acting role may not see.
type VisibilityPolicy[T any] interface {
	// Apply filters a fetched page down to what the role is permitted to
	// observe. Items are returned in their incoming order.
	Apply(items []T, role models.Role) []T

	// DeniedUpstream reports whether the role's access to the whole
	// collection is denied before any rows are fetched. A denied actor
	// receives an empty page with no cursors, so the collection's size
	// cannot be probed by cursoring.
	DeniedUpstream(role models.Role) bool
}

// Annotator computes actor-relative and time-relative fields that are not
// stored verbatim. Implementations batch their lookups: one call per page,
// never one per item. All items of a page are judged against the single
// now snapshot taken by the fetch.
type Annotator[T any] interface {
	Annotate(ctx context.Context, items []T, actorID string, now time.Time) ([]T, error)
}

// PageProvider is what the pagination controller traverses. The local
// implementation is [Fetcher]; a remote client substitutes an HTTP-backed
// provider that returns pages the server already filtered and annotated.
type PageProvider[T any] interface {
	FetchPage(ctx context.Context, req PageRequest) (Page[T], error)
}

// Mutator is the external write interface. Create receives the full draft
// item (its identifier still pending) and returns the server's confirmed
// copy, including the assigned identifier and any server-computed fields.
// Failures must be distinguishable via [ErrUnauthorized],
// [ErrValidationFailed] and [ErrNotFound].
type Mutator[T any] interface {
	Create(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Notifier is invoked after a confirmed create. Implementations are
// fire-and-forget: they must not block and are never awaited by the
// session's public contract.
type Notifier[T any] interface {
	CreateConfirmed(item T)
}
