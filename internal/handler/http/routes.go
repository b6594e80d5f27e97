package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/velikanov/groupsync/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/groups/{groupID}/meetups", h.meetupsPage)
		r.Post("/api/groups/{groupID}/meetups", h.createMeetup)
		r.Delete("/api/meetups/{meetupID}", h.deleteMeetup)
		r.Put("/api/meetups/{meetupID}/attendance", h.setAttendance)

		r.Get("/api/groups/{groupID}/discussions", h.discussionsPage)
		r.Post("/api/groups/{groupID}/discussions", h.createDiscussion)
		r.Delete("/api/discussions/{discussionID}", h.deleteDiscussion)

		r.Get("/api/discussions/{discussionID}/comments", h.commentsPage)
		r.Post("/api/discussions/{discussionID}/comments", h.createComment)
		r.Delete("/api/comments/{commentID}", h.deleteComment)

		r.Put("/api/groups/{groupID}/members/{userID}/role", h.setMemberRole)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"status":  "ok",
		"version": h.app.Version,
	}, http.StatusOK)
}
