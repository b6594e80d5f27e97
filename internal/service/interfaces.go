package service

import (
	"context"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/models"
)

type MeetupService interface {
	Page(ctx context.Context, actorID, groupID string, req feed.PageRequest) (feed.Page[models.Meetup], error)
	Create(ctx context.Context, actorID string, meetup models.Meetup) (models.Meetup, error)
	Delete(ctx context.Context, actorID, meetupID string) error
	SetAttendance(ctx context.Context, actorID, meetupID string, status models.AttendanceStatus) error
}

type DiscussionService interface {
	Page(ctx context.Context, actorID, groupID string, req feed.PageRequest) (feed.Page[models.Discussion], error)
	Create(ctx context.Context, actorID string, discussion models.Discussion) (models.Discussion, error)
	Delete(ctx context.Context, actorID, discussionID string) error
}

type CommentService interface {
	Page(ctx context.Context, actorID, discussionID string, req feed.PageRequest) (feed.Page[models.Comment], error)
	Create(ctx context.Context, actorID string, comment models.Comment) (models.Comment, error)
	Delete(ctx context.Context, actorID, commentID string) error
}

type MembershipService interface {
	SetRole(ctx context.Context, actorID string, membership models.Membership) error
}

// NotificationDispatcher hands a delivery job to the background worker.
// Implementations never block.
type NotificationDispatcher interface {
	Dispatch(n models.Notification)
}
