package hubspot

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"studentpages/internal/domain"
	"studentpages/internal/domain/assign"
)

const landingPagesPath = "/cms/v3/pages/landing-pages"

// pageSize caps listing calls at the first page. Portals with more
// than 100 landing pages only see the first 100 in the dropdowns; a
// known limitation carried over from the source system.
const pageSize = "100"

// ListPages returns up to the first 100 landing pages. Failures
// degrade to an empty listing.
func (c *Client) ListPages(ctx context.Context) domain.Listing[domain.Page] {
	query := url.Values{"limit": []string{pageSize}}

	var env resultsEnvelope[domain.Page]
	if err := c.do(ctx, http.MethodGet, landingPagesPath, query, nil, &env); err != nil {
		c.log.Error("list pages failed", zap.Error(err))
		return domain.DegradedListing[domain.Page]()
	}
	return domain.ListingOf(env.Results)
}

// ListTemplates lists landing pages for the template dropdown. When a
// default template id is configured the selection step is skipped
// entirely, so no network call is made and the listing is empty.
func (c *Client) ListTemplates(ctx context.Context) domain.Listing[domain.Page] {
	if c.defaultTemplateID != "" {
		return domain.ListingOf([]domain.Page{})
	}
	return c.ListPages(ctx)
}

// FetchPage reads a single landing page in full. Unlike the listing
// calls, failures propagate: the clone flow cannot proceed without
// the template content.
func (c *Client) FetchPage(ctx context.Context, id string) (domain.Page, error) {
	var page domain.Page
	if err := c.do(ctx, http.MethodGet, landingPagesPath+"/"+id, nil, nil, &page); err != nil {
		return domain.Page{}, err
	}
	return page, nil
}

// CreatePage creates a new landing page and returns it with the
// remote-assigned id.
func (c *Client) CreatePage(ctx context.Context, payload domain.Page) (domain.Page, error) {
	var created domain.Page
	if err := c.do(ctx, http.MethodPost, landingPagesPath, nil, payload, &created); err != nil {
		return domain.Page{}, err
	}
	return created, nil
}

// UpdatePage patches a page's metadata.
func (c *Client) UpdatePage(ctx context.Context, id string, fields assign.PageUpdate) error {
	return c.do(ctx, http.MethodPatch, landingPagesPath+"/"+id, nil, fields, nil)
}
