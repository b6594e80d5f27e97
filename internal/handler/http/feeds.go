package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velikanov/groupsync/internal/app"
	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/utils"
)

// parsePageRequest assembles a feed.PageRequest from the query string.
//
//	?direction=forward|backward  traversal direction (default forward)
//	?cursor=<token>              opaque resume position
//	?limit=<n>                   page size cap
//
// A malformed cursor is passed through untouched: the fetcher treats it
// as "restart from the beginning", so the transport never rejects it.
func parsePageRequest(r *http.Request) (feed.PageRequest, error) {
	req := feed.PageRequest{Direction: feed.Forward}

	switch r.URL.Query().Get("direction") {
	case "", "forward":
	case "backward":
		req.Direction = feed.Backward
	default:
		return feed.PageRequest{}, ErrUnknownDirection
	}

	if raw := r.URL.Query().Get("cursor"); raw != "" {
		c := feed.Cursor(raw)
		req.Cursor = &c
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return feed.PageRequest{}, ErrInvalidLimit
		}
		req.Limit = limit
	}

	return req, nil
}

// actorID extracts the authenticated user set by the auth middleware.
func actorID(r *http.Request) (string, bool) {
	return utils.GetUserIDFromContext(r.Context())
}

func (h *Handler) meetupsPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	req, err := parsePageRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	groupID := chi.URLParam(r, "groupID")
	page, err := h.services.MeetupService.Page(r.Context(), actor, groupID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.meetupsPage").Str("group_id", groupID).Msg(app.MsgErrorFetchingMeetups)
		http.Error(w, app.MsgErrorFetchingMeetups, statusFromError(err))
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) discussionsPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	req, err := parsePageRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	groupID := chi.URLParam(r, "groupID")
	page, err := h.services.DiscussionService.Page(r.Context(), actor, groupID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.discussionsPage").Str("group_id", groupID).Msg(app.MsgErrorFetchingDiscussions)
		http.Error(w, app.MsgErrorFetchingDiscussions, statusFromError(err))
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) commentsPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	req, err := parsePageRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	discussionID := chi.URLParam(r, "discussionID")
	page, err := h.services.CommentService.Page(r.Context(), actor, discussionID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.commentsPage").Str("discussion_id", discussionID).Msg(app.MsgErrorFetchingComments)
		http.Error(w, app.MsgErrorFetchingComments, statusFromError(err))
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}
