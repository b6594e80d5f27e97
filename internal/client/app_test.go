package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikanov/groupsync/internal/collections"
	"github.com/velikanov/groupsync/internal/config"
	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

func newTestApp(t *testing.T, serverURL string) *App {
	t.Helper()

	app, err := NewApp(config.ClientConfig{
		ServerAddress:  serverURL,
		Token:          "test-token",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app
}

func TestDiscussions_LoadAndCreate(t *testing.T) {
	existing := models.Discussion{
		ID:        models.ConfirmedID("d1"),
		GroupID:   "g1",
		Title:     "welcome thread",
		CreatedAt: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(feed.Page[models.Discussion]{Items: []models.Discussion{existing}})
		case http.MethodPost:
			var draft models.DiscussionDraft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))

			created := models.Discussion{
				ID:        models.ConfirmedID("d2"),
				GroupID:   draft.GroupID,
				AuthorID:  "u1",
				Title:     draft.Title,
				Body:      draft.Body,
				Status:    models.DiscussionActive,
				CreatedAt: time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC),
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(created)
		}
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	session := app.Discussions("g1", 10)
	defer session.Close()

	ctx := context.Background()
	require.NoError(t, session.LoadInitial(ctx))
	require.Len(t, session.Items(), 1)

	_, err := session.Create(ctx, models.Discussion{
		GroupID:   "g1",
		Title:     "autumn plans",
		CreatedAt: time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	items := session.Items()
	require.Len(t, items, 2)

	// confirmed drafts leave the local cache
	drafts, err := app.PendingDrafts(ctx, collections.DiscussionsOf("g1"))
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestDiscussions_RejectedCreateKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(feed.Page[models.Discussion]{})
		case http.MethodPost:
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte("empty title"))
		}
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	session := app.Discussions("g1", 10)
	defer session.Close()

	ctx := context.Background()
	require.NoError(t, session.LoadInitial(ctx))

	_, err := session.Create(ctx, models.Discussion{GroupID: "g1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrValidationFailed)

	// the rejected item is rolled back from the merged view
	assert.Empty(t, session.Items())

	// but its draft stays behind for correction
	drafts, err := app.PendingDrafts(ctx, collections.DiscussionsOf("g1"))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
}

func TestMeetups_AttendanceThroughAPI(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	err := app.API().MeetupsOf("g1").SetAttendance(context.Background(), "m1", models.AttendanceMaybe)

	require.NoError(t, err)
	assert.Equal(t, "/api/meetups/m1/attendance", gotPath)
}
