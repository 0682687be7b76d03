package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"studentpages/internal/domain"
)

// Client wraps the HubSpot REST API with a static bearer token. It is
// stateless; one instance is shared by all requests.
type Client struct {
	http              *http.Client
	baseURL           string
	token             string
	defaultTemplateID string
	log               *zap.Logger
}

func NewClient(baseURL, token, defaultTemplateID string, log *zap.Logger) *Client {
	return &Client{
		http:              &http.Client{Timeout: 30 * time.Second},
		baseURL:           strings.TrimRight(baseURL, "/"),
		token:             token,
		defaultTemplateID: defaultTemplateID,
		log:               log,
	}
}

type resultsEnvelope[T any] struct {
	Results []T `json:"results"`
}

type upstreamBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.DomainError{
			Code:       domain.ErrorCodeUpstream,
			Message:    fmt.Sprintf("hubspot unreachable: %v", err),
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.upstreamError(method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// upstreamError surfaces the remote message verbatim when the body
// carries one, otherwise falls back to a generic description.
func (c *Client) upstreamError(method, path string, resp *http.Response) error {
	msg := fmt.Sprintf("hubspot responded %d to %s %s", resp.StatusCode, method, path)

	var body upstreamBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		msg = body.Message
	}

	return &domain.DomainError{
		Code:       domain.ErrorCodeUpstream,
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
	}
}
