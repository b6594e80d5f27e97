package adapter

import (
	"context"
	"fmt"

	"github.com/velikanov/groupsync/models"
)

// SetMemberRole changes a member's role within a group. The server
// enforces that the caller is an admin and outranks the assigned role.
func (c *Client) SetMemberRole(ctx context.Context, groupID, userID string, role models.Role) error {
	body := struct {
		Role models.Role `json:"role"`
	}{Role: role}

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put("/api/groups/" + groupID + "/members/" + userID + "/role")
	if err != nil {
		return fmt.Errorf("set member role request: %w", err)
	}
	return mapHTTPError(resp)
}
