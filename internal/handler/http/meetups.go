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

func (h *Handler) createMeetup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var draft models.MeetupDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.createMeetup").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.MeetupService.Create(r.Context(), actor, models.Meetup{
		GroupID:         chi.URLParam(r, "groupID"),
		Title:           draft.Title,
		Description:     draft.Description,
		StartTime:       draft.StartTime,
		DurationMinutes: draft.DurationMinutes,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.createMeetup").Msg(app.MsgErrorCreatingMeetup)
		http.Error(w, app.MsgErrorCreatingMeetup, statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteMeetup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	meetupID := chi.URLParam(r, "meetupID")
	if err := h.services.MeetupService.Delete(r.Context(), actor, meetupID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteMeetup").Str("meetup_id", meetupID).Msg(app.MsgErrorDeletingMeetup)
		http.Error(w, app.MsgErrorDeletingMeetup, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setAttendance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var body struct {
		Status models.AttendanceStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.setAttendance").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	meetupID := chi.URLParam(r, "meetupID")
	if err := h.services.MeetupService.SetAttendance(r.Context(), actor, meetupID, body.Status); err != nil {
		log.Err(err).Str("func", "*Handler.setAttendance").Str("meetup_id", meetupID).Msg(app.MsgErrorSettingAttendance)
		http.Error(w, app.MsgErrorSettingAttendance, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
