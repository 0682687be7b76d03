package hubspot

import (
	"context"
	"net/http"

	"studentpages/internal/domain"
)

// ListUsers returns the portal's users, capped at whatever the API
// returns by default (no explicit paging is requested). Errors
// propagate; the directory service decides how to degrade.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var env resultsEnvelope[domain.User]
	if err := c.do(ctx, http.MethodGet, "/settings/v3/users", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Results, nil
}
