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

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var draft models.CommentDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.CommentService.Create(r.Context(), actor, models.Comment{
		DiscussionID: chi.URLParam(r, "discussionID"),
		Body:         draft.Body,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg(app.MsgErrorCreatingComment)
		http.Error(w, app.MsgErrorCreatingComment, statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	commentID := chi.URLParam(r, "commentID")
	if err := h.services.CommentService.Delete(r.Context(), actor, commentID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteComment").Str("comment_id", commentID).Msg(app.MsgErrorDeletingComment)
		http.Error(w, app.MsgErrorDeletingComment, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
