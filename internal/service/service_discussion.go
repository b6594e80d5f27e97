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

type discussionService struct {
	discussions store.DiscussionRepository
	comments    store.CommentRepository
	members     store.MembershipRepository
	dispatcher  NotificationDispatcher
	validator   validators.Validator

	logger *logger.Logger
}

func NewDiscussionService(discussions store.DiscussionRepository, comments store.CommentRepository, members store.MembershipRepository, dispatcher NotificationDispatcher, logger *logger.Logger) DiscussionService {
	return &discussionService{
		discussions: discussions,
		comments:    comments,
		members:     members,
		dispatcher:  dispatcher,
		validator:   validators.NewDraftValidator(),
		logger:      logger,
	}
}

func (s *discussionService) Page(ctx context.Context, actorID, groupID string, req feed.PageRequest) (feed.Page[models.Discussion], error) {
	fetcher := feed.NewFetcher(
		collections.DiscussionsOf(groupID),
		actorID,
		collections.NewDiscussionSource(s.discussions, s.members),
		collections.DiscussionVariant{},
		collections.DiscussionVisibility{},
		collections.NewDiscussionAnnotator(s.comments),
	)
	return fetcher.FetchPage(ctx, req)
}

func (s *discussionService) Create(ctx context.Context, actorID string, discussion models.Discussion) (models.Discussion, error) {
	log := logger.FromContext(ctx)

	if err := s.requireMember(ctx, actorID, discussion.GroupID); err != nil {
		return models.Discussion{}, err
	}
	if err := s.validator.Validate(ctx, discussion); err != nil {
		return models.Discussion{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	discussion.ID = models.ConfirmedID(uuid.NewString())
	discussion.AuthorID = actorID
	if discussion.Status == "" {
		discussion.Status = models.DiscussionActive
	}

	created, err := s.discussions.CreateDiscussion(ctx, discussion)
	if err != nil {
		log.Err(err).Str("func", "*discussionService.Create").Msg("error: create failed")
		return models.Discussion{}, fmt.Errorf("create discussion: %w", err)
	}

	s.dispatcher.Dispatch(models.Notification{
		Kind:      models.NotificationDiscussionCreated,
		ItemID:    created.ID.Value(),
		ParentID:  created.GroupID,
		AuthorID:  created.AuthorID,
		Title:     created.Title,
		CreatedAt: created.CreatedAt,
	})

	return created, nil
}

func (s *discussionService) Delete(ctx context.Context, actorID, discussionID string) error {
	discussion, err := s.discussions.GetDiscussion(ctx, discussionID)
	if errors.Is(err, store.ErrDiscussionNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete discussion: %w", err)
	}

	if err := s.requireAuthorOrModerator(ctx, actorID, discussion.AuthorID, discussion.GroupID); err != nil {
		return err
	}

	if err := s.discussions.DeleteDiscussion(ctx, discussionID); err != nil {
		if errors.Is(err, store.ErrDiscussionNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete discussion: %w", err)
	}
	return nil
}

func (s *discussionService) requireMember(ctx context.Context, actorID, groupID string) error {
	role, err := s.members.FindRole(ctx, actorID, groupID)
	if err != nil {
		return fmt.Errorf("resolve role: %w", err)
	}
	if role == models.RoleNone || role.Banned() {
		return ErrUnauthorized
	}
	return nil
}

func (s *discussionService) requireAuthorOrModerator(ctx context.Context, actorID, authorID, groupID string) error {
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
