package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/models"
)

func TestMeetupsPage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	page := feed.Page[models.Meetup]{
		Items: []models.Meetup{
			{
				ID:        models.ConfirmedID("m1"),
				GroupID:   "g1",
				Title:     "go meetup",
				StartTime: time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
				Status:    models.MeetupActive,
			},
		},
		More: true,
	}
	m.meetups.EXPECT().
		Page(gomock.Any(), "u1", "g1", feed.PageRequest{Direction: feed.Forward, Limit: 5}).
		Return(page, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/groups/g1/meetups?limit=5", bearerFor(t, "u1"), "")

	require.Equal(t, http.StatusOK, rec.Code)

	var decoded feed.Page[models.Meetup]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.Len(t, decoded.Items, 1)
	assert.Equal(t, "m1", decoded.Items[0].ID.Value())
	assert.True(t, decoded.More)
}

func TestMeetupsPage_BackwardWithCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	cursor := feed.EncodeCursor(feed.OrderingKey{
		At: time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
		ID: "m3",
	})
	m.meetups.EXPECT().
		Page(gomock.Any(), "u1", "g1", feed.PageRequest{Direction: feed.Backward, Cursor: &cursor, Limit: 2}).
		Return(feed.Page[models.Meetup]{}, nil)

	target := "/api/groups/g1/meetups?direction=backward&limit=2&cursor=" + string(cursor)
	rec := doRequest(t, h, http.MethodGet, target, bearerFor(t, "u1"), "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMeetupsPage_UnknownDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/api/groups/g1/meetups?direction=sideways", bearerFor(t, "u1"), "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeetupsPage_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/api/groups/g1/meetups?limit=zero", bearerFor(t, "u1"), "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeetupsPage_FetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.meetups.EXPECT().
		Page(gomock.Any(), "u1", "g1", gomock.Any()).
		Return(feed.Page[models.Meetup]{}, feed.ErrFetchFailed)

	rec := doRequest(t, h, http.MethodGet, "/api/groups/g1/meetups", bearerFor(t, "u1"), "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDiscussionsPage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.discussions.EXPECT().
		Page(gomock.Any(), "u1", "g1", feed.PageRequest{Direction: feed.Forward}).
		Return(feed.Page[models.Discussion]{
			Items: []models.Discussion{{ID: models.ConfirmedID("d1"), Title: "welcome"}},
		}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/groups/g1/discussions", bearerFor(t, "u1"), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"welcome"`)
}

func TestCommentsPage_ForbiddenThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.comments.EXPECT().
		Page(gomock.Any(), "u1", "d1", gomock.Any()).
		Return(feed.Page[models.Comment]{}, errors.New("boom"))

	rec := doRequest(t, h, http.MethodGet, "/api/discussions/d1/comments", bearerFor(t, "u1"), "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCommentsPage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.comments.EXPECT().
		Page(gomock.Any(), "u1", "d1", gomock.Any()).
		Return(feed.Page[models.Comment]{
			Items: []models.Comment{{ID: models.ConfirmedID("c1"), Body: "hello"}},
		}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/discussions/d1/comments", bearerFor(t, "u1"), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hello"`)
}
