package client

import (
	"context"
	"fmt"

	"github.com/velikanov/groupsync/internal/adapter"
	"github.com/velikanov/groupsync/internal/collections"
	"github.com/velikanov/groupsync/internal/config"
	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/store"
	"github.com/velikanov/groupsync/models"
)

const defaultPageLimit = 20

// App owns the client-side plumbing shared by all sessions: the HTTP
// connection and the local draft cache. Sessions opened from one App are
// otherwise independent of each other.
type App struct {
	api    *adapter.Client
	drafts *store.DraftCache
	logger *logger.Logger
}

func NewApp(cfg config.ClientConfig, log *logger.Logger) (*App, error) {
	drafts, err := store.NewDraftCache(cfg.CachePath, log)
	if err != nil {
		return nil, fmt.Errorf("open draft cache: %w", err)
	}

	return &App{
		api:    adapter.NewClient(cfg),
		drafts: drafts,
		logger: log,
	}, nil
}

// API exposes the underlying HTTP client for calls that have no session
// counterpart, such as SetAttendance and SetMemberRole.
func (a *App) API() *adapter.Client { return a.api }

// Meetups opens a session over one group's meetups. Direction selects
// the initial traversal: forward for upcoming meetups, backward for a
// past-meetups view.
func (a *App) Meetups(groupID string, direction feed.Direction, limit int) *feed.Session[models.Meetup] {
	remote := a.api.MeetupsOf(groupID)
	collection := collections.MeetupsOf(groupID)
	variant := collections.MeetupVariant{}

	return feed.NewSession(feed.SessionConfig[models.Meetup]{
		Collection: collection,
		Variant:    variant,
		Provider:   remote,
		Mutator: &draftingMutator[models.Meetup]{
			inner:      remote,
			drafts:     a.drafts,
			variant:    variant,
			collection: collection,
			log:        a.logger,
		},
		Direction: direction,
		Limit:     pageLimit(limit),
		Logger:    a.logger,
	})
}

// Discussions opens a newest-first session over one group's discussions.
func (a *App) Discussions(groupID string, limit int) *feed.Session[models.Discussion] {
	remote := a.api.DiscussionsOf(groupID)
	collection := collections.DiscussionsOf(groupID)
	variant := collections.DiscussionVariant{}

	return feed.NewSession(feed.SessionConfig[models.Discussion]{
		Collection: collection,
		Variant:    variant,
		Provider:   remote,
		Mutator: &draftingMutator[models.Discussion]{
			inner:      remote,
			drafts:     a.drafts,
			variant:    variant,
			collection: collection,
			log:        a.logger,
		},
		Direction: feed.Forward,
		Limit:     pageLimit(limit),
		Logger:    a.logger,
	})
}

// Comments opens a newest-first session over one discussion's comments.
func (a *App) Comments(discussionID string, limit int) *feed.Session[models.Comment] {
	remote := a.api.CommentsOf(discussionID)
	collection := collections.CommentsOf(discussionID)
	variant := collections.CommentVariant{}

	return feed.NewSession(feed.SessionConfig[models.Comment]{
		Collection: collection,
		Variant:    variant,
		Provider:   remote,
		Mutator: &draftingMutator[models.Comment]{
			inner:      remote,
			drafts:     a.drafts,
			variant:    variant,
			collection: collection,
			log:        a.logger,
		},
		Direction: feed.Forward,
		Limit:     pageLimit(limit),
		Logger:    a.logger,
	})
}

// PendingDrafts lists the locally cached drafts of one collection that
// have not been confirmed by the server yet.
func (a *App) PendingDrafts(ctx context.Context, collection feed.CollectionKey) ([]store.Draft, error) {
	return a.drafts.ListDrafts(ctx, collection)
}

func (a *App) Close() error {
	return a.drafts.Close()
}

func pageLimit(limit int) int {
	if limit < 1 {
		return defaultPageLimit
	}
	return limit
}
