package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/velikanov/groupsync/models"
)

// CommentCollection binds a [Client] to one discussion's comments.
type CommentCollection struct {
	remoteFeed[models.Comment]
	discussionID string
}

func (c *Client) CommentsOf(discussionID string) *CommentCollection {
	return &CommentCollection{
		remoteFeed:   remoteFeed[models.Comment]{client: c, path: "/api/discussions/" + discussionID + "/comments"},
		discussionID: discussionID,
	}
}

func (cc *CommentCollection) Create(ctx context.Context, item models.Comment) (models.Comment, error) {
	draft := models.CommentDraft{
		DiscussionID: cc.discussionID,
		Body:         item.Body,
	}

	resp, err := cc.client.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post(cc.path)
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	var created models.Comment
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Comment{}, fmt.Errorf("decode create comment response: %w", err)
	}

	return created, nil
}

func (cc *CommentCollection) Delete(ctx context.Context, id string) error {
	resp, err := cc.client.authedRequest(ctx).Delete("/api/comments/" + id)
	if err != nil {
		return fmt.Errorf("delete comment request: %w", err)
	}
	return mapHTTPError(resp)
}
