package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velikanov/groupsync/models"
)

func newTestSession(provider PageProvider[testItem], mutator Mutator[testItem]) *Session[testItem] {
	return NewSession(SessionConfig[testItem]{
		Collection: CollectionKey{Kind: "items", Parent: "group-1"},
		Variant:    testVariant{newestFirst: true},
		Provider:   provider,
		Mutator:    mutator,
		Direction:  Forward,
		Limit:      10,
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Optimistic create lifecycle
// ─────────────────────────────────────────────────────────────────────────────

func TestSession_Create_OptimisticThenReconciled(t *testing.T) {
	provider := &stubProvider{pages: []Page[testItem]{{}}}
	mutator := &stubMutator{confirmID: "abc123", serverNote: "server copy"}
	s := newTestSession(provider, mutator)

	require.NoError(t, s.LoadInitial(context.Background()))
	require.Empty(t, s.Items())

	tempID, err := s.Create(context.Background(), testItem{at: baseTime, note: "draft"})
	require.NoError(t, err)
	assert.True(t, tempID.Pending())

	// After the mutation round-trip the merged view carries the confirmed
	// identifier and the server-computed fields, with no duplicate.
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "abc123", items[0].id.Value())
	assert.False(t, items[0].id.Pending())
	assert.Equal(t, "server copy", items[0].note)
}

func TestSession_Create_FailureLeavesNoTrace(t *testing.T) {
	provider := &stubProvider{pages: []Page[testItem]{{}}}
	cause := errors.New("validation failed")
	mutator := &stubMutator{createErr: cause}
	s := newTestSession(provider, mutator)

	require.NoError(t, s.LoadInitial(context.Background()))

	_, err := s.Create(context.Background(), testItem{at: baseTime, note: "draft"})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, s.Items(), "a rejected create leaves zero items behind")
}

func TestSession_Create_NotifierToldOnConfirmation(t *testing.T) {
	provider := &stubProvider{pages: []Page[testItem]{{}}}
	mutator := &stubMutator{confirmID: "abc123"}

	var notified []testItem
	s := NewSession(SessionConfig[testItem]{
		Collection: CollectionKey{Kind: "items", Parent: "group-1"},
		Variant:    testVariant{newestFirst: true},
		Provider:   provider,
		Mutator:    mutator,
		Notifier:   notifierFunc(func(item testItem) { notified = append(notified, item) }),
		Direction:  Forward,
		Limit:      10,
	})

	require.NoError(t, s.LoadInitial(context.Background()))
	_, err := s.Create(context.Background(), testItem{at: baseTime})
	require.NoError(t, err)

	require.Len(t, notified, 1)
	assert.Equal(t, "abc123", notified[0].id.Value(), "notifier sees the confirmed copy, not the draft")
}

type notifierFunc func(testItem)

func (f notifierFunc) CreateConfirmed(item testItem) { f(item) }

// ─────────────────────────────────────────────────────────────────────────────
// Optimistic delete lifecycle
// ─────────────────────────────────────────────────────────────────────────────

func TestSession_Delete_SuppressesImmediately(t *testing.T) {
	provider := &stubProvider{pages: []Page[testItem]{{
		Items: []testItem{item("a", baseTime), item("b", baseTime.Add(time.Hour))},
	}}}
	mutator := &stubMutator{}
	s := newTestSession(provider, mutator)

	require.NoError(t, s.LoadInitial(context.Background()))
	require.NoError(t, s.Delete(context.Background(), models.ConfirmedID("a")))

	assert.Equal(t, []string{"b"}, ids(s.Items()))
	assert.Equal(t, []string{"a"}, mutator.deleted)
}

func TestSession_Delete_FailureRestoresItem(t *testing.T) {
	provider := &stubProvider{pages: []Page[testItem]{{
		Items: []testItem{item("a", baseTime)},
	}}}
	cause := errors.New("forbidden")
	mutator := &stubMutator{deleteErr: cause}
	s := newTestSession(provider, mutator)

	require.NoError(t, s.LoadInitial(context.Background()))

	err := s.Delete(context.Background(), models.ConfirmedID("a"))

	require.ErrorIs(t, err, cause)
	assert.Equal(t, []string{"a"}, ids(s.Items()), "a failed delete reappears in the merged view")
}

// Deleting an item the user just created, before a page refresh, routes
// the delete through the reconciled identifier.
func TestSession_Delete_ResolvesJustCreatedIdentifier(t *testing.T) {
	provider := &stubProvider{pages: []Page[testItem]{{}}}
	mutator := &stubMutator{confirmID: "abc123"}
	s := newTestSession(provider, mutator)

	require.NoError(t, s.LoadInitial(context.Background()))

	tempID, err := s.Create(context.Background(), testItem{at: baseTime})
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), tempID))

	assert.Equal(t, []string{"abc123"}, mutator.deleted, "the server is asked by confirmed identifier")
	assert.Empty(t, s.Items())
}

// ─────────────────────────────────────────────────────────────────────────────
// Merged reads
// ─────────────────────────────────────────────────────────────────────────────

func TestSession_Items_ReturnsACopy(t *testing.T) {
	provider := &stubProvider{pages: []Page[testItem]{{
		Items: []testItem{item("a", baseTime)},
	}}}
	s := newTestSession(provider, &stubMutator{})

	require.NoError(t, s.LoadInitial(context.Background()))

	got := s.Items()
	got[0].note = "mutated"

	assert.Empty(t, s.Items()[0].note)
}

func TestSession_PendingCreateSurvivesPageLoads(t *testing.T) {
	provider := &stubProvider{pages: []Page[testItem]{
		{
			Items: []testItem{item("a", baseTime)},
			Next:  cursorFor("a", baseTime),
			More:  true,
		},
		{
			Items: []testItem{item("b", baseTime.Add(time.Hour))},
		},
	}}
	mutator := &stubMutator{confirmID: "real-1"}
	s := newTestSession(provider, mutator)

	require.NoError(t, s.LoadInitial(context.Background()))
	_, err := s.Create(context.Background(), testItem{at: baseTime.Add(2 * time.Hour)})
	require.NoError(t, err)

	require.NoError(t, s.LoadNext(context.Background()))

	// Newest-first collection: the reconciled create stays on top until a
	// confirmed page carries it.
	assert.Equal(t, []string{"real-1", "a", "b"}, ids(s.Items()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Teardown
// ─────────────────────────────────────────────────────────────────────────────

func TestSession_Close_RejectsLaterCalls(t *testing.T) {
	provider := &stubProvider{pages: []Page[testItem]{{}}}
	s := newTestSession(provider, &stubMutator{})

	require.NoError(t, s.LoadInitial(context.Background()))
	s.Close()

	assert.ErrorIs(t, s.LoadInitial(context.Background()), ErrSessionClosed)
	assert.ErrorIs(t, s.LoadNext(context.Background()), ErrSessionClosed)
	assert.ErrorIs(t, s.Delete(context.Background(), models.ConfirmedID("a")), ErrSessionClosed)

	_, err := s.Create(context.Background(), testItem{})
	assert.ErrorIs(t, err, ErrSessionClosed)
}

// A fetch completing after Close must not touch the session's item list.
func TestSession_Close_DiscardsInFlightFetch(t *testing.T) {
	s := newTestSession(nil, &stubMutator{})

	// The provider closes the session mid-fetch, emulating a teardown that
	// races a slow network response.
	provider := &closingProvider{session: s, page: Page[testItem]{
		Items: []testItem{item("late", baseTime)},
	}}
	s.controller = NewController[testItem](&guardedProvider[testItem]{session: s, inner: provider}, Forward, 10)

	err := s.LoadInitial(context.Background())

	require.ErrorIs(t, err, ErrSessionClosed)
	assert.Empty(t, s.items, "a completion arriving after teardown is discarded")
	assert.Equal(t, StateIdle, s.controller.State())
}

type closingProvider struct {
	session *Session[testItem]
	page    Page[testItem]
}

func (p *closingProvider) FetchPage(_ context.Context, _ PageRequest) (Page[testItem], error) {
	p.session.Close()
	return p.page, nil
}
