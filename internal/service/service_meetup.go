package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/velikanov/groupsync/internal/collections"
	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/store"
	"github.com/velikanov/groupsync/internal/validators"
	"github.com/velikanov/groupsync/models"
)

type meetupService struct {
	meetups    store.MeetupRepository
	members    store.MembershipRepository
	dispatcher NotificationDispatcher
	validator  validators.Validator

	logger *logger.Logger
}

func NewMeetupService(meetups store.MeetupRepository, members store.MembershipRepository, dispatcher NotificationDispatcher, logger *logger.Logger) MeetupService {
	return &meetupService{
		meetups:    meetups,
		members:    members,
		dispatcher: dispatcher,
		validator:  validators.NewDraftValidator(),
		logger:     logger,
	}
}

// Page serves one meetup page for the acting user. Role resolution,
// filtering and annotation all happen inside the fetcher against a single
// clock snapshot.
func (s *meetupService) Page(ctx context.Context, actorID, groupID string, req feed.PageRequest) (feed.Page[models.Meetup], error) {
	fetcher := feed.NewFetcher(
		collections.MeetupsOf(groupID),
		actorID,
		collections.NewMeetupSource(s.meetups, s.members),
		collections.MeetupVariant{},
		collections.MeetupVisibility{},
		collections.NewMeetupAnnotator(s.meetups),
	)
	return fetcher.FetchPage(ctx, req)
}

func (s *meetupService) Create(ctx context.Context, actorID string, meetup models.Meetup) (models.Meetup, error) {
	log := logger.FromContext(ctx)

	if err := s.requireMember(ctx, actorID, meetup.GroupID); err != nil {
		return models.Meetup{}, err
	}
	if err := s.validator.Validate(ctx, meetup); err != nil {
		return models.Meetup{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	meetup.ID = models.ConfirmedID(uuid.NewString())
	meetup.AuthorID = actorID
	if meetup.Status == "" {
		meetup.Status = models.MeetupActive
	}

	created, err := s.meetups.CreateMeetup(ctx, meetup)
	if err != nil {
		log.Err(err).Str("func", "*meetupService.Create").Msg("error: create failed")
		return models.Meetup{}, fmt.Errorf("create meetup: %w", err)
	}

	s.dispatcher.Dispatch(models.Notification{
		Kind:      models.NotificationMeetupCreated,
		ItemID:    created.ID.Value(),
		ParentID:  created.GroupID,
		AuthorID:  created.AuthorID,
		Title:     created.Title,
		CreatedAt: created.CreatedAt,
	})

	return created, nil
}

// Delete removes a meetup. The author may delete their own meetup; anyone
// else needs a moderator role or higher within the owning group.
func (s *meetupService) Delete(ctx context.Context, actorID, meetupID string) error {
	meetup, err := s.meetups.GetMeetup(ctx, meetupID)
	if errors.Is(err, store.ErrMeetupNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete meetup: %w", err)
	}

	if err := s.requireAuthorOrModerator(ctx, actorID, meetup.AuthorID, meetup.GroupID); err != nil {
		return err
	}

	if err := s.meetups.DeleteMeetup(ctx, meetupID); err != nil {
		if errors.Is(err, store.ErrMeetupNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete meetup: %w", err)
	}
	return nil
}

func (s *meetupService) SetAttendance(ctx context.Context, actorID, meetupID string, status models.AttendanceStatus) error {
	if err := s.validator.Validate(ctx, status); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	meetup, err := s.meetups.GetMeetup(ctx, meetupID)
	if errors.Is(err, store.ErrMeetupNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}

	if err := s.requireMember(ctx, actorID, meetup.GroupID); err != nil {
		return err
	}

	err = s.meetups.SetAttendance(ctx, models.Attendee{
		MeetupID: meetupID,
		UserID:   actorID,
		Status:   status,
	})
	if errors.Is(err, store.ErrMeetupNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}
	return nil
}

// requireMember enforces the write-side membership rule: unlike reads,
// which serve public content to non-members, every mutation needs an
// actual non-banned membership row.
func (s *meetupService) requireMember(ctx context.Context, actorID, groupID string) error {
	role, err := s.members.FindRole(ctx, actorID, groupID)
	if err != nil {
		return fmt.Errorf("resolve role: %w", err)
	}
	if role == models.RoleNone || role.Banned() {
		return ErrUnauthorized
	}
	return nil
}

func (s *meetupService) requireAuthorOrModerator(ctx context.Context, actorID, authorID, groupID string) error {
	if actorID == authorID {
		return s.requireMember(ctx, actorID, groupID)
	}
	role, err := s.members.FindRole(ctx, actorID, groupID)
	if err != nil {
		return fmt.Errorf("resolve role: %w", err)
	}
	if !role.AtLeast(models.RoleModerator) {
		return ErrUnauthorized
	}
	return nil
}
