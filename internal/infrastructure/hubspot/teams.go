package hubspot

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"studentpages/internal/domain"
)

// ListTeams returns every team in the portal. Failures degrade to an
// empty listing; the caller renders an empty dropdown instead of an
// error page.
func (c *Client) ListTeams(ctx context.Context) domain.Listing[domain.Team] {
	var env resultsEnvelope[domain.Team]
	if err := c.do(ctx, http.MethodGet, "/settings/v3/users/teams", nil, nil, &env); err != nil {
		c.log.Error("list teams failed", zap.Error(err))
		return domain.DegradedListing[domain.Team]()
	}
	return domain.ListingOf(env.Results)
}
