package collections

import (
	"context"
	"fmt"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/models"
)

// RoleFinder resolves the acting user's role within a group. A user with
// no membership row resolves to models.RoleNone.
type RoleFinder interface {
	FindRole(ctx context.Context, userID, groupID string) (models.Role, error)
}

// GroupResolver maps a discussion to its owning group, needed because a
// comment collection's parent key names the discussion while roles live
// on the group.
type GroupResolver interface {
	GroupOfDiscussion(ctx context.Context, discussionID string) (string, error)
}

// MeetupPages is the bounded keyset query over one group's meetups.
type MeetupPages interface {
	FindPage(ctx context.Context, q feed.PageQuery) ([]models.Meetup, error)
}

// DiscussionPages is the bounded keyset query over one group's threads.
type DiscussionPages interface {
	FindPage(ctx context.Context, q feed.PageQuery) ([]models.Discussion, error)
}

// CommentPages is the bounded keyset query over one thread's comments.
type CommentPages interface {
	FindPage(ctx context.Context, q feed.PageQuery) ([]models.Comment, error)
}

// MeetupSource combines the meetup page query with the group role lookup
// into one feed.PageSource.
type MeetupSource struct {
	pages MeetupPages
	roles RoleFinder
}

// NewMeetupSource constructs the meetup page source.
func NewMeetupSource(pages MeetupPages, roles RoleFinder) *MeetupSource {
	return &MeetupSource{pages: pages, roles: roles}
}

func (s *MeetupSource) FindPage(ctx context.Context, q feed.PageQuery) ([]models.Meetup, error) {
	return s.pages.FindPage(ctx, q)
}

func (s *MeetupSource) FindRole(ctx context.Context, actorID string, collection feed.CollectionKey) (models.Role, error) {
	return s.roles.FindRole(ctx, actorID, collection.Parent)
}

// DiscussionSource combines the thread page query with the group role
// lookup into one feed.PageSource.
type DiscussionSource struct {
	pages DiscussionPages
	roles RoleFinder
}

// NewDiscussionSource constructs the discussion page source.
func NewDiscussionSource(pages DiscussionPages, roles RoleFinder) *DiscussionSource {
	return &DiscussionSource{pages: pages, roles: roles}
}

func (s *DiscussionSource) FindPage(ctx context.Context, q feed.PageQuery) ([]models.Discussion, error) {
	return s.pages.FindPage(ctx, q)
}

func (s *DiscussionSource) FindRole(ctx context.Context, actorID string, collection feed.CollectionKey) (models.Role, error) {
	return s.roles.FindRole(ctx, actorID, collection.Parent)
}

// CommentSource combines the comment page query with the role lookup. The
// collection's parent is the discussion, so the role lookup first
// resolves the discussion's owning group.
type CommentSource struct {
	pages    CommentPages
	roles    RoleFinder
	resolver GroupResolver
}

// NewCommentSource constructs the comment page source.
func NewCommentSource(pages CommentPages, roles RoleFinder, resolver GroupResolver) *CommentSource {
	return &CommentSource{pages: pages, roles: roles, resolver: resolver}
}

func (s *CommentSource) FindPage(ctx context.Context, q feed.PageQuery) ([]models.Comment, error) {
	return s.pages.FindPage(ctx, q)
}

func (s *CommentSource) FindRole(ctx context.Context, actorID string, collection feed.CollectionKey) (models.Role, error) {
	groupID, err := s.resolver.GroupOfDiscussion(ctx, collection.Parent)
	if err != nil {
		return models.RoleNone, fmt.Errorf("resolve group of discussion %s: %w", collection.Parent, err)
	}
	return s.roles.FindRole(ctx, actorID, groupID)
}

var (
	_ feed.PageSource[models.Meetup]     = (*MeetupSource)(nil)
	_ feed.PageSource[models.Discussion] = (*DiscussionSource)(nil)
	_ feed.PageSource[models.Comment]    = (*CommentSource)(nil)
)
