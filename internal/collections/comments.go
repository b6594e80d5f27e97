package collections

import (
	"context"
	"time"

	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/models"
)

// CommentVariant orders comments by creation time, identifier as
// tie-breaker, displayed newest-first.
type CommentVariant struct{}

func (CommentVariant) OrderingKeyOf(c models.Comment) feed.OrderingKey {
	return feed.OrderingKey{At: c.CreatedAt, ID: c.ID.Value()}
}

func (CommentVariant) IdentifierOf(c models.Comment) models.Identifier { return c.ID }

func (CommentVariant) WithIdentifier(c models.Comment, id models.Identifier) models.Comment {
	c.ID = id
	return c
}

func (CommentVariant) NewestFirst() bool { return true }

// CommentVisibility excludes comments the moderation pipeline flagged,
// for every role without exception, plus tombstoned rows. Banned members
// are denied upstream.
type CommentVisibility struct{}

func (CommentVisibility) Apply(items []models.Comment, _ models.Role) []models.Comment {
	kept := make([]models.Comment, 0, len(items))
	for _, c := range items {
		if c.Deleted || c.Moderation != models.ModerationOK {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// DeniedUpstream blanks the whole collection for banned members.
func (CommentVisibility) DeniedUpstream(role models.Role) bool { return role.Banned() }

// CommentAnnotator is a pass-through: comments carry no derived fields.
type CommentAnnotator struct{}

// Annotate implements feed.Annotator.
func (CommentAnnotator) Annotate(_ context.Context, items []models.Comment, _ string, _ time.Time) ([]models.Comment, error) {
	return items, nil
}

var _ feed.Annotator[models.Comment] = CommentAnnotator{}
