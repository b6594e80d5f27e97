package models

import "time"

// MeetupStatus is the lifecycle/visibility state of a meetup.
type MeetupStatus string

const (
	MeetupActive    MeetupStatus = "active"
	MeetupHidden    MeetupStatus = "hidden"
	MeetupArchived  MeetupStatus = "archived"
	MeetupCancelled MeetupStatus = "cancelled"
)

// AttendanceStatus is the requesting actor's RSVP state for a meetup.
type AttendanceStatus string

const (
	AttendanceGoing    AttendanceStatus = "going"
	AttendanceMaybe    AttendanceStatus = "maybe"
	AttendanceDeclined AttendanceStatus = "declined"
)

// Meetup is a time-ordered collection item: a scheduled event inside a
// group. StartTime is the ordering key; ties are broken by identifier.
//
// The fields below the status block are derived per page fetch and never
// stored verbatim: time-window flags are computed against a single "now"
// snapshot, attendance and attendee counts come from batched lookups.
type Meetup struct {
	ID              Identifier   `json:"id"`
	GroupID         string       `json:"group_id"`
	AuthorID        string       `json:"author_id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	StartTime       time.Time    `json:"start_time"`
	DurationMinutes int          `json:"duration_minutes"`
	Status          MeetupStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	Deleted         bool         `json:"-"`

	IsOngoing      bool              `json:"is_ongoing"`
	IsOver         bool              `json:"is_over"`
	AttendeesCount int64             `json:"attendees_count"`
	Attendance     *AttendanceStatus `json:"attendance,omitempty"`
}

// EndTime returns the instant the meetup is over. Duration is whole minutes.
func (m Meetup) EndTime() time.Time {
	return m.StartTime.Add(time.Duration(m.DurationMinutes) * time.Minute)
}

// Attendee is one RSVP row for a meetup.
type Attendee struct {
	MeetupID  string           `json:"meetup_id"`
	UserID    string           `json:"user_id"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// MeetupDraft carries the caller-authored fields of a meetup create.
type MeetupDraft struct {
	GroupID         string    `json:"group_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
}
