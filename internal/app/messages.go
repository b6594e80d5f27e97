// Package app contains shared application-layer constants used across the
// groupsync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgErrorCreatingMeetup is returned when a meetup draft is rejected or
	// the write fails.
	MsgErrorCreatingMeetup = "error creating meetup"

	// MsgErrorDeletingMeetup is returned when a meetup delete is rejected
	// or the write fails.
	MsgErrorDeletingMeetup = "error deleting meetup"

	// MsgErrorSettingAttendance is returned when an RSVP cannot be stored.
	MsgErrorSettingAttendance = "error setting attendance"

	// MsgErrorCreatingDiscussion is returned when a discussion draft is
	// rejected or the write fails.
	MsgErrorCreatingDiscussion = "error creating discussion"

	// MsgErrorDeletingDiscussion is returned when a discussion delete is
	// rejected or the write fails.
	MsgErrorDeletingDiscussion = "error deleting discussion"

	// MsgErrorCreatingComment is returned when a comment draft is rejected
	// or the write fails.
	MsgErrorCreatingComment = "error creating comment"

	// MsgErrorDeletingComment is returned when a comment delete is rejected
	// or the write fails.
	MsgErrorDeletingComment = "error deleting comment"

	// MsgErrorSettingMemberRole is returned when a role change is rejected
	// or the write fails.
	MsgErrorSettingMemberRole = "error setting member role"

	// MsgErrorFetchingMeetups is returned when a meetup page cannot be
	// assembled.
	MsgErrorFetchingMeetups = "error fetching meetup page"

	// MsgErrorFetchingDiscussions is returned when a discussion page cannot
	// be assembled.
	MsgErrorFetchingDiscussions = "error fetching discussion page"

	// MsgErrorFetchingComments is returned when a comment page cannot be
	// assembled.
	MsgErrorFetchingComments = "error fetching comment page"
)
