package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velikanov/groupsync/internal/app"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/utils"
	"github.com/velikanov/groupsync/models"
)

func (h *Handler) createDiscussion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var draft models.DiscussionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.createDiscussion").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.DiscussionService.Create(r.Context(), actor, models.Discussion{
		GroupID: chi.URLParam(r, "groupID"),
		Title:   draft.Title,
		Body:    draft.Body,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDiscussion").Msg(app.MsgErrorCreatingDiscussion)
		http.Error(w, app.MsgErrorCreatingDiscussion, statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteDiscussion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	discussionID := chi.URLParam(r, "discussionID")
	if err := h.services.DiscussionService.Delete(r.Context(), actor, discussionID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDiscussion").Str("discussion_id", discussionID).Msg(app.MsgErrorDeletingDiscussion)
		http.Error(w, app.MsgErrorDeletingDiscussion, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
