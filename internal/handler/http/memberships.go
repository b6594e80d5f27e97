package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velikanov/groupsync/internal/app"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/models"
)

func (h *Handler) setMemberRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var body struct {
		Role models.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.setMemberRole").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	membership := models.Membership{
		GroupID: chi.URLParam(r, "groupID"),
		UserID:  chi.URLParam(r, "userID"),
		Role:    body.Role,
	}
	if err := h.services.MembershipService.SetRole(r.Context(), actor, membership); err != nil {
		log.Err(err).Str("func", "*Handler.setMemberRole").Str("group_id", membership.GroupID).Msg(app.MsgErrorSettingMemberRole)
		http.Error(w, app.MsgErrorSettingMemberRole, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
