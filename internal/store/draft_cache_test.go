package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

func newTestDraftCache(t *testing.T) *DraftCache {
	t.Helper()

	cache, err := NewDraftCache("", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache
}

func TestDraftCache_SaveAndList(t *testing.T) {
	cache := newTestDraftCache(t)
	ctx := context.Background()

	discussions := feed.CollectionKey{Kind: "discussions", Parent: "g1"}
	comments := feed.CollectionKey{Kind: "comments", Parent: "d1"}

	first := models.NewPendingID()
	second := models.NewPendingID()
	other := models.NewPendingID()

	require.NoError(t, cache.SaveDraft(ctx, first, discussions, models.Discussion{GroupID: "g1", Title: "first"}))
	require.NoError(t, cache.SaveDraft(ctx, second, discussions, models.Discussion{GroupID: "g1", Title: "second"}))
	require.NoError(t, cache.SaveDraft(ctx, other, comments, models.Comment{DiscussionID: "d1", Body: "aside"}))

	drafts, err := cache.ListDrafts(ctx, discussions)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	ids := []string{drafts[0].ID, drafts[1].ID}
	assert.Contains(t, ids, first.Value())
	assert.Contains(t, ids, second.Value())
	for _, d := range drafts {
		assert.Equal(t, discussions, d.Collection)
		assert.NotEmpty(t, d.Payload)
	}
}

func TestDraftCache_SaveDraft_ReplacesByID(t *testing.T) {
	cache := newTestDraftCache(t)
	ctx := context.Background()

	collection := feed.CollectionKey{Kind: "comments", Parent: "d1"}
	id := models.NewPendingID()

	require.NoError(t, cache.SaveDraft(ctx, id, collection, models.Comment{DiscussionID: "d1", Body: "typo"}))
	require.NoError(t, cache.SaveDraft(ctx, id, collection, models.Comment{DiscussionID: "d1", Body: "corrected"}))

	drafts, err := cache.ListDrafts(ctx, collection)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Contains(t, string(drafts[0].Payload), "corrected")
}

func TestDraftCache_DeleteDraft(t *testing.T) {
	cache := newTestDraftCache(t)
	ctx := context.Background()

	collection := feed.CollectionKey{Kind: "discussions", Parent: "g1"}
	id := models.NewPendingID()

	require.NoError(t, cache.SaveDraft(ctx, id, collection, models.Discussion{GroupID: "g1", Title: "gone soon"}))
	require.NoError(t, cache.DeleteDraft(ctx, id))

	drafts, err := cache.ListDrafts(ctx, collection)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestDraftCache_DeleteDraft_UnknownID(t *testing.T) {
	cache := newTestDraftCache(t)

	require.NoError(t, cache.DeleteDraft(context.Background(), models.NewPendingID()))
}
