package feed

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/velikanov/groupsync/internal/logger"
)

// defaultLimit bounds uncapped page requests.
const defaultLimit = 20

// Fetcher is the local [PageProvider]: it runs the full read pipeline for
// one collection and one acting user: decode the cursor, look up the
// actor's role, issue the bounded store query, trim the overflow row,
// derive the resume cursor, filter by visibility and annotate derived
// fields. One FetchPage call issues a bounded number of store queries
// regardless of page size.
type Fetcher[T any] struct {
	collection CollectionKey
	actorID    string
	source     PageSource[T]
	variant    Variant[T]
	policy     VisibilityPolicy[T]
	annotator  Annotator[T]
	now        func() time.Time
}

// NewFetcher constructs a Fetcher for the given collection and actor.
func NewFetcher[T any](
	collection CollectionKey,
	actorID string,
	source PageSource[T],
	variant Variant[T],
	policy VisibilityPolicy[T],
	annotator Annotator[T],
) *Fetcher[T] {
	return &Fetcher[T]{
		collection: collection,
		actorID:    actorID,
		source:     source,
		variant:    variant,
		policy:     policy,
		annotator:  annotator,
		now:        time.Now,
	}
}

// WithClock overrides the now-snapshot source. Intended for tests.
func (f *Fetcher[T]) WithClock(now func() time.Time) *Fetcher[T] {
	f.now = now
	return f
}

// FetchPage implements [PageProvider].
//
// A malformed cursor is recovered locally by restarting the traversal from
// the beginning of the requested direction. An actor denied upstream by
// the visibility policy receives an empty page with no cursors. Store
// failures surface as a wrapped [ErrFetchFailed] with nothing retained
// from the partial fetch.
func (f *Fetcher[T]) FetchPage(ctx context.Context, req PageRequest) (Page[T], error) {
	log := logger.FromContext(ctx)

	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	var after *OrderingKey
	if req.Cursor != nil {
		key, err := DecodeCursor(*req.Cursor)
		if err != nil {
			log.Warn().
				Str("func", "Fetcher.FetchPage").
				Str("collection", f.collection.String()).
				Str("direction", req.Direction.String()).
				Msg("malformed cursor, restarting traversal from the beginning")
		} else {
			after = &key
		}
	}

	role, err := f.source.FindRole(ctx, f.actorID, f.collection)
	if err != nil {
		log.Err(err).
			Str("func", "Fetcher.FetchPage").
			Str("collection", f.collection.String()).
			Str("actor_id", f.actorID).
			Msg("failed to resolve actor role")
		return Page[T]{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if f.policy.DeniedUpstream(role) {
		// No rows are fetched and no cursors are derived: a denied actor
		// must not be able to probe the collection's size by cursoring.
		log.Debug().
			Str("func", "Fetcher.FetchPage").
			Str("collection", f.collection.String()).
			Str("actor_id", f.actorID).
			Str("role", string(role)).
			Msg("collection access denied upstream, returning empty page")
		return Page[T]{}, nil
	}

	// One now snapshot per page: every item of the page is judged against
	// the same instant.
	now := f.now()

	rows, err := f.source.FindPage(ctx, PageQuery{
		Collection: f.collection,
		Direction:  req.Direction,
		After:      after,
		Limit:      req.Limit,
		Now:        now,
	})
	if err != nil {
		log.Err(err).
			Str("func", "Fetcher.FetchPage").
			Str("collection", f.collection.String()).
			Str("direction", req.Direction.String()).
			Msg("page query failed")
		return Page[T]{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	page := Page[T]{More: len(rows) > req.Limit}
	if page.More {
		rows = rows[:req.Limit]
	}

	// The resume cursor comes from the last retained traversal row; the
	// trimmed overflow row only proved that further data exists. Only the
	// requested direction gets a cursor; an uncursored initial load never
	// fabricates a resume position for the direction it did not run.
	if len(rows) > 0 {
		boundary := cursorOf(f.variant.OrderingKeyOf(rows[len(rows)-1]))
		if req.Direction == Forward {
			page.Next = boundary
		} else {
			page.Prev = boundary
		}
	}

	visible := f.policy.Apply(rows, role)

	items, err := f.annotator.Annotate(ctx, visible, f.actorID, now)
	if err != nil {
		log.Err(err).
			Str("func", "Fetcher.FetchPage").
			Str("collection", f.collection.String()).
			Int("items", len(visible)).
			Msg("annotating page failed")
		return Page[T]{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	// Rows arrive in traversal order; backward pages are flipped into the
	// collection's display order.
	if req.Direction == Backward {
		slices.Reverse(items)
	}
	page.Items = items

	return page, nil
}
