package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikanov/groupsync/internal/config"
	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/models"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.ClientConfig{
		ServerAddress:  serverURL,
		Token:          "test-token",
		RequestTimeout: 5 * time.Second,
	})
}

// ── FetchPage ────────────────────────────────────────────────────────────────

func TestFetchPage_Success(t *testing.T) {
	want := feed.Page[models.Meetup]{
		Items: []models.Meetup{
			{
				ID:        models.ConfirmedID("m1"),
				GroupID:   "g1",
				Title:     "go meetup",
				StartTime: time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
			},
		},
		More: true,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/groups/g1/meetups", r.URL.Path)
		assert.Equal(t, "forward", r.URL.Query().Get("direction"))
		assert.Equal(t, "7", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.MeetupsOf("g1").FetchPage(context.Background(), feed.PageRequest{Direction: feed.Forward, Limit: 7})

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "m1", got.Items[0].ID.Value())
	assert.True(t, got.More)
}

func TestFetchPage_ForwardsCursor(t *testing.T) {
	cursor := feed.EncodeCursor(feed.OrderingKey{
		At: time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
		ID: "d3",
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "backward", r.URL.Query().Get("direction"))
		assert.Equal(t, string(cursor), r.URL.Query().Get("cursor"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(feed.Page[models.Discussion]{})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.DiscussionsOf("g1").FetchPage(context.Background(), feed.PageRequest{
		Direction: feed.Backward,
		Cursor:    &cursor,
		Limit:     10,
	})

	require.NoError(t, err)
}

func TestFetchPage_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("not a member"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.CommentsOf("d1").FetchPage(context.Background(), feed.PageRequest{Limit: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrUnauthorized)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateMeetup_SendsDraftAndDecodesConfirmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/groups/g1/meetups", r.URL.Path)

		var draft models.MeetupDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "go meetup", draft.Title)
		assert.Equal(t, 60, draft.DurationMinutes)

		created := models.Meetup{
			ID:              models.ConfirmedID("m9"),
			GroupID:         "g1",
			AuthorID:        "u1",
			Title:           draft.Title,
			StartTime:       draft.StartTime,
			DurationMinutes: draft.DurationMinutes,
			Status:          models.MeetupActive,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.MeetupsOf("g1").Create(context.Background(), models.Meetup{
		ID:              models.NewPendingID(),
		Title:           "go meetup",
		StartTime:       time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, "m9", got.ID.Value())
	assert.False(t, got.ID.Pending())
}

func TestCreateComment_ValidationRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("empty body"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.CommentsOf("d1").Create(context.Background(), models.Comment{})

	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrValidationFailed)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDeleteDiscussion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/discussions/d1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.DiscussionsOf("g1").Delete(context.Background(), "d1")

	require.NoError(t, err)
}

func TestDeleteMeetup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such meetup"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.MeetupsOf("g1").Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrNotFound)
}

// ── SetAttendance / SetMemberRole ────────────────────────────────────────────

func TestSetAttendance_SendsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/meetups/m1/attendance", r.URL.Path)

		var body struct {
			Status models.AttendanceStatus `json:"status"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.AttendanceGoing, body.Status)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.MeetupsOf("g1").SetAttendance(context.Background(), "m1", models.AttendanceGoing)

	require.NoError(t, err)
}

func TestSetMemberRole_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/groups/g1/members/u2/role", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("admin required"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.SetMemberRole(context.Background(), "g1", "u2", models.RoleModerator)

	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrUnauthorized)
}

// ── token handling ───────────────────────────────────────────────────────────

func TestClient_TokenRefresh(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(feed.Page[models.Comment]{})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.SetToken("rotated-token")

	_, err := c.CommentsOf("d1").FetchPage(context.Background(), feed.PageRequest{Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, "Bearer rotated-token", got)
}
