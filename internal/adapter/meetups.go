package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/velikanov/groupsync/models"
)

// MeetupCollection binds a [Client] to one group's meetups. It implements
// feed.PageProvider and feed.Mutator for models.Meetup, plus the RSVP
// call that has no feed counterpart.
type MeetupCollection struct {
	remoteFeed[models.Meetup]
	groupID string
}

func (c *Client) MeetupsOf(groupID string) *MeetupCollection {
	return &MeetupCollection{
		remoteFeed: remoteFeed[models.Meetup]{client: c, path: "/api/groups/" + groupID + "/meetups"},
		groupID:    groupID,
	}
}

// Create submits the draft and returns the server's confirmed meetup,
// including the assigned identifier and server-computed fields.
func (m *MeetupCollection) Create(ctx context.Context, item models.Meetup) (models.Meetup, error) {
	draft := models.MeetupDraft{
		GroupID:         m.groupID,
		Title:           item.Title,
		Description:     item.Description,
		StartTime:       item.StartTime,
		DurationMinutes: item.DurationMinutes,
	}

	resp, err := m.client.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post(m.path)
	if err != nil {
		return models.Meetup{}, fmt.Errorf("create meetup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Meetup{}, err
	}

	var created models.Meetup
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Meetup{}, fmt.Errorf("decode create meetup response: %w", err)
	}

	return created, nil
}

func (m *MeetupCollection) Delete(ctx context.Context, id string) error {
	resp, err := m.client.authedRequest(ctx).Delete("/api/meetups/" + id)
	if err != nil {
		return fmt.Errorf("delete meetup request: %w", err)
	}
	return mapHTTPError(resp)
}

// SetAttendance records the caller's RSVP for the meetup.
func (m *MeetupCollection) SetAttendance(ctx context.Context, meetupID string, status models.AttendanceStatus) error {
	body := struct {
		Status models.AttendanceStatus `json:"status"`
	}{Status: status}

	resp, err := m.client.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put("/api/meetups/" + meetupID + "/attendance")
	if err != nil {
		return fmt.Errorf("set attendance request: %w", err)
	}
	return mapHTTPError(resp)
}
