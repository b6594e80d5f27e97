package validators

import (
	"context"
	"fmt"

	"github.com/velikanov/groupsync/models"
)

const (
	FieldGroupID         = "group_id"
	FieldTitle           = "title"
	FieldStartTime       = "start_time"
	FieldDurationMinutes = "duration_minutes"
	FieldDiscussionID    = "discussion_id"
	FieldBody            = "body"
	FieldRole            = "role"
)

var allowedRoles = []models.Role{
	models.RoleBanned,
	models.RoleMember,
	models.RoleModerator,
	models.RoleAdmin,
	models.RoleOwner,
}

var allowedAttendance = []models.AttendanceStatus{
	models.AttendanceGoing,
	models.AttendanceMaybe,
	models.AttendanceDeclined,
}

// DraftValidator validates user-submitted drafts and enum values before
// they reach the store.
type DraftValidator struct {
}

func NewDraftValidator() Validator {
	return &DraftValidator{}
}

func (v *DraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Meetup:
		return v.validateMeetup(ctx, value, fields...)
	case *models.Meetup:
		return v.validateMeetup(ctx, *value, fields...)

	case models.Discussion:
		return v.validateDiscussion(ctx, value, fields...)
	case *models.Discussion:
		return v.validateDiscussion(ctx, *value, fields...)

	case models.Comment:
		return v.validateComment(ctx, value, fields...)
	case *models.Comment:
		return v.validateComment(ctx, *value, fields...)

	case models.Membership:
		return v.validateMembership(ctx, value, fields...)
	case *models.Membership:
		return v.validateMembership(ctx, *value, fields...)

	case models.AttendanceStatus:
		return v.validateAttendance(value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *DraftValidator) validateMeetup(_ context.Context, meetup models.Meetup, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGroupID, FieldTitle, FieldStartTime, FieldDurationMinutes}
	}

	for _, field := range fields {
		switch field {
		case FieldGroupID:
			if meetup.GroupID == "" {
				return ErrEmptyGroupID
			}
		case FieldTitle:
			if meetup.Title == "" {
				return ErrEmptyTitle
			}
		case FieldStartTime:
			if meetup.StartTime.IsZero() {
				return ErrEmptyStartTime
			}
		case FieldDurationMinutes:
			if meetup.DurationMinutes <= 0 {
				return ErrInvalidDuration
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *DraftValidator) validateDiscussion(_ context.Context, discussion models.Discussion, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGroupID, FieldTitle}
	}

	for _, field := range fields {
		switch field {
		case FieldGroupID:
			if discussion.GroupID == "" {
				return ErrEmptyGroupID
			}
		case FieldTitle:
			if discussion.Title == "" {
				return ErrEmptyTitle
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *DraftValidator) validateComment(_ context.Context, comment models.Comment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDiscussionID, FieldBody}
	}

	for _, field := range fields {
		switch field {
		case FieldDiscussionID:
			if comment.DiscussionID == "" {
				return ErrEmptyDiscussionID
			}
		case FieldBody:
			if comment.Body == "" {
				return ErrEmptyBody
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *DraftValidator) validateMembership(_ context.Context, membership models.Membership, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRole}
	}

	for _, field := range fields {
		switch field {
		case FieldRole:
			if !containsRole(membership.Role) {
				return fmt.Errorf("%w: %q", ErrUnknownRole, membership.Role)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *DraftValidator) validateAttendance(status models.AttendanceStatus) error {
	for _, allowed := range allowedAttendance {
		if status == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownAttendance, status)
}

func containsRole(role models.Role) bool {
	for _, allowed := range allowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}
