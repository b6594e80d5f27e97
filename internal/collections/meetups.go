package collections

import (
	"context"
	"time"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/models"
)

// MeetupVariant orders meetups by start time ascending, identifier as
// tie-breaker. The collection displays in key order: past meetups behind,
// upcoming ahead.
type MeetupVariant struct{}

func (MeetupVariant) OrderingKeyOf(m models.Meetup) feed.OrderingKey {
	return feed.OrderingKey{At: m.StartTime, ID: m.ID.Value()}
}

func (MeetupVariant) IdentifierOf(m models.Meetup) models.Identifier { return m.ID }

func (MeetupVariant) WithIdentifier(m models.Meetup, id models.Identifier) models.Meetup {
	m.ID = id
	return m
}

func (MeetupVariant) NewestFirst() bool { return false }

// MeetupVisibility filters meetups by the acting role. Banned members see
// only cancelled meetups; hidden meetups require moderator or above;
// archived and cancelled stay visible and carry their status as the mark.
// Tombstoned rows are excluded for everyone.
type MeetupVisibility struct{}

func (MeetupVisibility) Apply(items []models.Meetup, role models.Role) []models.Meetup {
	kept := make([]models.Meetup, 0, len(items))
	for _, m := range items {
		if m.Deleted {
			continue
		}
		switch m.Status {
		case models.MeetupCancelled:
			// Visible to every role, the banned included.
		case models.MeetupHidden:
			if !role.AtLeast(models.RoleModerator) {
				continue
			}
		default:
			if role.Banned() {
				continue
			}
		}
		kept = append(kept, m)
	}
	return kept
}

// DeniedUpstream always reports false: a banned member's meetup view is
// filtered item by item, not blanked. Only the restricted collections
// (discussions, comments) blank the whole page.
func (MeetupVisibility) DeniedUpstream(models.Role) bool { return false }

// AttendanceSource is the batched RSVP lookup the annotator runs on. Both
// calls take every meetup identifier of the page at once.
type AttendanceSource interface {
	CountAttendees(ctx context.Context, meetupIDs []string) (map[string]int64, error)
	FindAttendance(ctx context.Context, actorID string, meetupIDs []string) (map[string]models.AttendanceStatus, error)
}

// MeetupAnnotator computes the derived meetup fields: the time-window
// flags against the page's single now snapshot, the attendee count and
// the acting user's own RSVP from two batched lookups.
type MeetupAnnotator struct {
	source AttendanceSource
}

// NewMeetupAnnotator constructs an annotator over the given RSVP source.
func NewMeetupAnnotator(source AttendanceSource) *MeetupAnnotator {
	return &MeetupAnnotator{source: source}
}

// Annotate implements feed.Annotator. It issues exactly two store
// queries regardless of page size.
func (a *MeetupAnnotator) Annotate(ctx context.Context, items []models.Meetup, actorID string, now time.Time) ([]models.Meetup, error) {
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(items))
	for _, m := range items {
		if !m.ID.Pending() {
			ids = append(ids, m.ID.Value())
		}
	}

	var (
		counts     map[string]int64
		attendance map[string]models.AttendanceStatus
	)
	if len(ids) > 0 {
		var err error
		if counts, err = a.source.CountAttendees(ctx, ids); err != nil {
			return nil, err
		}
		if attendance, err = a.source.FindAttendance(ctx, actorID, ids); err != nil {
			return nil, err
		}
	}

	out := make([]models.Meetup, len(items))
	for i, m := range items {
		end := m.EndTime()
		m.IsOngoing = !m.StartTime.After(now) && now.Before(end)
		m.IsOver = !now.Before(end)
		m.AttendeesCount = counts[m.ID.Value()]
		if status, ok := attendance[m.ID.Value()]; ok {
			s := status
			m.Attendance = &s
		}
		out[i] = m
	}
	return out, nil
}
