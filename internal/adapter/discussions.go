package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/velikanov/groupsync/models"
)

// DiscussionCollection binds a [Client] to one group's discussions.
type DiscussionCollection struct {
	remoteFeed[models.Discussion]
	groupID string
}

func (c *Client) DiscussionsOf(groupID string) *DiscussionCollection {
	return &DiscussionCollection{
		remoteFeed: remoteFeed[models.Discussion]{client: c, path: "/api/groups/" + groupID + "/discussions"},
		groupID:    groupID,
	}
}

func (d *DiscussionCollection) Create(ctx context.Context, item models.Discussion) (models.Discussion, error) {
	draft := models.DiscussionDraft{
		GroupID: d.groupID,
		Title:   item.Title,
		Body:    item.Body,
	}

	resp, err := d.client.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post(d.path)
	if err != nil {
		return models.Discussion{}, fmt.Errorf("create discussion request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Discussion{}, err
	}

	var created models.Discussion
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Discussion{}, fmt.Errorf("decode create discussion response: %w", err)
	}

	return created, nil
}

func (d *DiscussionCollection) Delete(ctx context.Context, id string) error {
	resp, err := d.client.authedRequest(ctx).Delete("/api/discussions/" + id)
	if err != nil {
		return fmt.Errorf("delete discussion request: %w", err)
	}
	return mapHTTPError(resp)
}
