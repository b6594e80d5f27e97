package http

import (
	"errors"
	"net/http"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/internal/service"
	"github.com/velikanov/groupsync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:     http.StatusForbidden,
	service.ErrValidationFailed: http.StatusUnprocessableEntity,
	service.ErrNotFound:         http.StatusNotFound,

	feed.ErrInvalidCursor: http.StatusBadRequest,
	feed.ErrFetchFailed:   http.StatusInternalServerError,

	store.ErrMeetupNotFound:      http.StatusNotFound,
	store.ErrDiscussionNotFound:  http.StatusNotFound,
	store.ErrCommentNotFound:     http.StatusNotFound,
	store.ErrDuplicateIdentifier: http.StatusConflict,
	store.ErrNothingSaved:        http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
