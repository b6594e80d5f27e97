package collections

import (
	"context"
	"time"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/models"
)

// DiscussionVariant orders discussions by creation time, identifier as
// tie-breaker, displayed newest-first.
type DiscussionVariant struct{}

func (DiscussionVariant) OrderingKeyOf(d models.Discussion) feed.OrderingKey {
	return feed.OrderingKey{At: d.CreatedAt, ID: d.ID.Value()}
}

func (DiscussionVariant) IdentifierOf(d models.Discussion) models.Identifier { return d.ID }

func (DiscussionVariant) WithIdentifier(d models.Discussion, id models.Identifier) models.Discussion {
	d.ID = id
	return d
}

func (DiscussionVariant) NewestFirst() bool { return true }

// DiscussionVisibility filters threads by the acting role. Hidden threads
// require moderator or above; archived threads stay visible and carry
// their status as the mark. Banned members are denied upstream, so Apply
// never sees a banned role.
type DiscussionVisibility struct{}

func (DiscussionVisibility) Apply(items []models.Discussion, role models.Role) []models.Discussion {
	kept := make([]models.Discussion, 0, len(items))
	for _, d := range items {
		if d.Deleted {
			continue
		}
		if d.Status == models.DiscussionHidden && !role.AtLeast(models.RoleModerator) {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

// DeniedUpstream blanks the whole collection for banned members: they
// receive an empty page with no cursors and cannot learn how many threads
// exist.
func (DiscussionVisibility) DeniedUpstream(role models.Role) bool { return role.Banned() }

// CommentCounter is the batched per-thread comment count lookup.
type CommentCounter interface {
	CountByDiscussion(ctx context.Context, discussionIDs []string) (map[string]int64, error)
}

// DiscussionAnnotator attaches the comment count of every thread on the
// page from one batched query. Discussions carry no time-window flags.
type DiscussionAnnotator struct {
	counter CommentCounter
}

// NewDiscussionAnnotator constructs an annotator over the given counter.
func NewDiscussionAnnotator(counter CommentCounter) *DiscussionAnnotator {
	return &DiscussionAnnotator{counter: counter}
}

// Annotate implements feed.Annotator.
func (a *DiscussionAnnotator) Annotate(ctx context.Context, items []models.Discussion, _ string, _ time.Time) ([]models.Discussion, error) {
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(items))
	for _, d := range items {
		if !d.ID.Pending() {
			ids = append(ids, d.ID.Value())
		}
	}

	var counts map[string]int64
	if len(ids) > 0 {
		var err error
		if counts, err = a.counter.CountByDiscussion(ctx, ids); err != nil {
			return nil, err
		}
	}

	out := make([]models.Discussion, len(items))
	for i, d := range items {
		d.CommentCount = counts[d.ID.Value()]
		out[i] = d
	}
	return out, nil
}
