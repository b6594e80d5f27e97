package store

import (
	"context"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/models"
)

type MeetupRepository interface {
	FindPage(ctx context.Context, q feed.PageQuery) ([]models.Meetup, error)
	GetMeetup(ctx context.Context, id string) (models.Meetup, error)
	CreateMeetup(ctx context.Context, meetup models.Meetup) (models.Meetup, error)
	DeleteMeetup(ctx context.Context, id string) error
	CountAttendees(ctx context.Context, meetupIDs []string) (map[string]int64, error)
	FindAttendance(ctx context.Context, actorID string, meetupIDs []string) (map[string]models.AttendanceStatus, error)
	SetAttendance(ctx context.Context, attendee models.Attendee) error
}

type DiscussionRepository interface {
	FindPage(ctx context.Context, q feed.PageQuery) ([]models.Discussion, error)
	GetDiscussion(ctx context.Context, id string) (models.Discussion, error)
	CreateDiscussion(ctx context.Context, discussion models.Discussion) (models.Discussion, error)
	DeleteDiscussion(ctx context.Context, id string) error
	GroupOfDiscussion(ctx context.Context, discussionID string) (string, error)
}

type CommentRepository interface {
	FindPage(ctx context.Context, q feed.PageQuery) ([]models.Comment, error)
	GetComment(ctx context.Context, id string) (models.Comment, error)
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	CountByDiscussion(ctx context.Context, discussionIDs []string) (map[string]int64, error)
}

type MembershipRepository interface {
	FindRole(ctx context.Context, userID, groupID string) (models.Role, error)
	SetRole(ctx context.Context, membership models.Membership) error
}
