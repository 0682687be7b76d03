package hubspot

import (
	"context"
	"fmt"
	"net/http"
)

type roleGrant struct {
	Role string `json:"role"`
}

// GrantTeamPermission grants a team edit access to a piece of
// content.
func (c *Client) GrantTeamPermission(ctx context.Context, teamID, pageID string) error {
	path := fmt.Sprintf("/cms/v3/permissions/teams/%s/content/%s", teamID, pageID)
	return c.do(ctx, http.MethodPost, path, nil, roleGrant{Role: "EDIT_CONTENT"}, nil)
}
