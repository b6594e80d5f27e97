package feed

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

// SessionConfig wires one [Session]. Provider and Mutator are required;
// Notifier is optional. Direction is the primary traversal of the initial
// load (backward for a past-meetups view, forward for upcoming ones or a
// newest-first thread list).
type SessionConfig[T any] struct {
	Collection CollectionKey
	Variant    Variant[T]
	Provider   PageProvider[T]
	Mutator    Mutator[T]
	Notifier   Notifier[T]
	Direction  Direction
	Limit      int
	Logger     *logger.Logger
}

// Session is the per-collection object an interactive client holds. Reads
// traverse pages through the controller and are merged with the overlay's
// pending mutations; writes go through the overlay first, then the
// external mutator, with the ledger reconciling the outcome.
//
// The merged item sequence never contains a logical entity twice (by
// real identifier once reconciled, by pending identifier before) and its
// ordering always follows the collection's natural order, pending items
// included. Reads and writes are linearized in submission order: a create
// is reflected in the merged result before any later page's confirmed
// rows are considered, because the merge always runs against the latest
// loaded page set.
type Session[T any] struct {
	mu     sync.Mutex
	closed atomic.Bool

	collection CollectionKey
	variant    Variant[T]
	mutator    Mutator[T]
	notifier   Notifier[T]
	log        *logger.Logger

	controller *Controller[T]
	overlay    *Overlay[T]
	ledger     *Ledger[T]

	items []T
}

// NewSession constructs a session from its configuration. The overlay and
// ledger are scoped to the session: no state is shared with any other
// session, for this collection or another.
func NewSession[T any](cfg SessionConfig[T]) *Session[T] {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := &Session[T]{
		collection: cfg.Collection,
		variant:    cfg.Variant,
		mutator:    cfg.Mutator,
		notifier:   cfg.Notifier,
		log:        log,
	}
	s.overlay = NewOverlay(cfg.Variant)
	s.ledger = NewLedger(s.overlay)
	s.controller = NewController[T](&guardedProvider[T]{session: s, inner: cfg.Provider}, cfg.Direction, cfg.Limit)

	return s
}

// guardedProvider discards fetch completions that arrive after the
// session was torn down: the controller sees an error and restores its
// previous state, so a destroyed session's item list is never touched.
type guardedProvider[T any] struct {
	session *Session[T]
	inner   PageProvider[T]
}

func (g *guardedProvider[T]) FetchPage(ctx context.Context, req PageRequest) (Page[T], error) {
	if g.session.closed.Load() {
		return Page[T]{}, ErrSessionClosed
	}

	page, err := g.inner.FetchPage(ctx, req)
	if err != nil {
		return Page[T]{}, err
	}
	if g.session.closed.Load() {
		return Page[T]{}, ErrSessionClosed
	}
	return page, nil
}

// LoadInitial runs the uncursored first fetch and computes the merged view.
func (s *Session[T]) LoadInitial(ctx context.Context) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.LoadInitial(ctx); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// LoadNext pages forward. A no-op when the direction is exhausted.
func (s *Session[T]) LoadNext(ctx context.Context) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.LoadNext(ctx); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// LoadPrevious pages backward. A no-op when the direction is exhausted.
func (s *Session[T]) LoadPrevious(ctx context.Context) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.LoadPrevious(ctx); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// Items returns the merged read model: the loaded confirmed rows overlaid
// with pending mutations, in the collection's natural order. The slice is
// a copy; mutating it does not affect the session.
func (s *Session[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// HasNextPage reports whether further confirmed data exists forward.
func (s *Session[T]) HasNextPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.HasNext()
}

// HasPreviousPage reports whether further confirmed data exists backward.
func (s *Session[T]) HasPreviousPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.HasPrev()
}

// Create submits an optimistic create. The draft becomes visible in the
// merged view immediately under a fresh pending identifier, then the
// external mutation runs. On confirmation every occurrence of the pending
// identifier is rewritten to the server-assigned one and the notifier, if
// any, is told; on failure the pending item is removed and the error
// surfaced; the caller decides about retrying.
//
// The returned identifier is the pending one; once a later read shows the
// item it carries the confirmed identifier instead.
func (s *Session[T]) Create(ctx context.Context, draft T) (models.Identifier, error) {
	if s.closed.Load() {
		return models.Identifier{}, ErrSessionClosed
	}

	s.mu.Lock()
	item, tempID := s.overlay.SubmitCreate(draft)
	s.recompute()
	s.mu.Unlock()

	confirmed, err := s.mutator.Create(ctx, item)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return models.Identifier{}, ErrSessionClosed
	}

	if err != nil {
		s.log.Err(err).
			Str("func", "Session.Create").
			Str("collection", s.collection.String()).
			Str("temp_id", tempID.String()).
			Msg("create rejected, rolling back pending item")
		surfaced := s.ledger.CreateFailed(tempID, err)
		s.recompute()
		return models.Identifier{}, surfaced
	}

	s.ledger.CreateConfirmed(tempID, confirmed)
	s.recompute()

	if s.notifier != nil {
		s.notifier.CreateConfirmed(confirmed)
	}

	return tempID, nil
}

// Delete submits an optimistic delete. The item disappears from the
// merged view immediately; confirmation makes the exclusion permanent,
// failure reverts it and surfaces the error (a delete of an already
// removed item surfaces [ErrNotFound] the same way).
func (s *Session[T]) Delete(ctx context.Context, id models.Identifier) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}

	s.mu.Lock()
	id = s.ledger.Resolve(id)
	s.overlay.SubmitDelete(id)
	s.recompute()
	s.mu.Unlock()

	err := s.mutator.Delete(ctx, id.Value())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return ErrSessionClosed
	}

	if err != nil {
		s.log.Err(err).
			Str("func", "Session.Delete").
			Str("collection", s.collection.String()).
			Str("id", id.String()).
			Msg("delete rejected, reverting suppression")
		surfaced := s.ledger.DeleteFailed(id, err)
		s.recompute()
		return surfaced
	}

	s.ledger.DeleteConfirmed(id)
	s.recompute()
	return nil
}

// Close tears the session down. Fetch or mutation completions still in
// flight are discarded; every later call returns [ErrSessionClosed].
func (s *Session[T]) Close() {
	s.closed.Store(true)
}

// recompute rebuilds the merged view. Callers hold s.mu.
func (s *Session[T]) recompute() {
	s.items = s.overlay.Merge(s.controller.Items())
	s.ledger.Compact()
}
