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

type commentService struct {
	comments    store.CommentRepository
	discussions store.DiscussionRepository
	members     store.MembershipRepository
	dispatcher  NotificationDispatcher
	validator   validators.Validator

	logger *logger.Logger
}

func NewCommentService(comments store.CommentRepository, discussions store.DiscussionRepository, members store.MembershipRepository, dispatcher NotificationDispatcher, logger *logger.Logger) CommentService {
	return &commentService{
		comments:    comments,
		discussions: discussions,
		members:     members,
		dispatcher:  dispatcher,
		validator:   validators.NewDraftValidator(),
		logger:      logger,
	}
}

func (s *commentService) Page(ctx context.Context, actorID, discussionID string, req feed.PageRequest) (feed.Page[models.Comment], error) {
	fetcher := feed.NewFetcher(
		collections.CommentsOf(discussionID),
		actorID,
		collections.NewCommentSource(s.comments, s.members, s.discussions),
		collections.CommentVariant{},
		collections.CommentVisibility{},
		collections.CommentAnnotator{},
	)
	return fetcher.FetchPage(ctx, req)
}

// Create appends a comment to a thread. Membership is checked against the
// thread's owning group, so the discussion must resolve first.
func (s *commentService) Create(ctx context.Context, actorID string, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	groupID, err := s.discussions.GroupOfDiscussion(ctx, comment.DiscussionID)
	if errors.Is(err, store.ErrDiscussionNotFound) {
		return models.Comment{}, ErrNotFound
	}
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	if err := s.requireMember(ctx, actorID, groupID); err != nil {
		return models.Comment{}, err
	}

	comment.ID = models.ConfirmedID(uuid.NewString())
	comment.AuthorID = actorID
	if comment.Moderation == "" {
		comment.Moderation = models.ModerationOK
	}

	created, err := s.comments.CreateComment(ctx, comment)
	if errors.Is(err, store.ErrDiscussionNotFound) {
		return models.Comment{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentService.Create").Msg("error: create failed")
		return models.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	s.dispatcher.Dispatch(models.Notification{
		Kind:      models.NotificationCommentCreated,
		ItemID:    created.ID.Value(),
		ParentID:  created.DiscussionID,
		AuthorID:  created.AuthorID,
		CreatedAt: created.CreatedAt,
	})

	return created, nil
}

func (s *commentService) Delete(ctx context.Context, actorID, commentID string) error {
	comment, err := s.comments.GetComment(ctx, commentID)
	if errors.Is(err, store.ErrCommentNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	groupID, err := s.discussions.GroupOfDiscussion(ctx, comment.DiscussionID)
	if errors.Is(err, store.ErrDiscussionNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if err := s.requireAuthorOrModerator(ctx, actorID, comment.AuthorID, groupID); err != nil {
		return err
	}

	if err := s.comments.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *commentService) requireMember(ctx context.Context, actorID, groupID string) error {
	role, err := s.members.FindRole(ctx, actorID, groupID)
	if err != nil {
		return fmt.Errorf("resolve role: %w", err)
	}
	if role == models.RoleNone || role.Banned() {
		return ErrUnauthorized
	}
	return nil
}

func (s *commentService) requireAuthorOrModerator(ctx context.Context, actorID, authorID, groupID string) error {
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
