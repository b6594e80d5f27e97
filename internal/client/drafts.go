package client

import (
	"context"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/store"
)

// draftingMutator persists every submitted create in the local draft
// cache before the remote call runs. A confirmed draft is removed; a
// rejected or undelivered one stays cached so the user can correct and
// resubmit it.
type draftingMutator[T any] struct {
	inner      feed.Mutator[T]
	drafts     *store.DraftCache
	variant    feed.Variant[T]
	collection feed.CollectionKey
	log        *logger.Logger
}

func (m *draftingMutator[T]) Create(ctx context.Context, item T) (T, error) {
	id := m.variant.IdentifierOf(item)
	if err := m.drafts.SaveDraft(ctx, id, m.collection, item); err != nil {
		m.log.Err(err).
			Str("func", "draftingMutator.Create").
			Str("collection", m.collection.String()).
			Msg("error caching draft, submitting anyway")
	}

	confirmed, err := m.inner.Create(ctx, item)
	if err != nil {
		return confirmed, err
	}

	if err := m.drafts.DeleteDraft(ctx, id); err != nil {
		m.log.Err(err).
			Str("func", "draftingMutator.Create").
			Str("id", id.String()).
			Msg("error removing confirmed draft")
	}
	return confirmed, nil
}

func (m *draftingMutator[T]) Delete(ctx context.Context, id string) error {
	return m.inner.Delete(ctx, id)
}
