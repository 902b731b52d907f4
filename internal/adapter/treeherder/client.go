package treeherder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// Client queries the CI result service for pushes and jobs.
type Client struct {
	baseURL    string
	project    string
	httpClient *http.Client
}

// New creates a CI client scoped to one repository project.
func New(baseURL, project string) *Client {
	return &Client{
		baseURL:    baseURL,
		project:    project,
		httpClient: &http.Client{},
	}
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("treeherder: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("treeherder: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &port.UpstreamError{Service: "treeherder", Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("treeherder: decode response: %w", err)
	}
	return nil
}

// PushByRevision returns the push matching a git revision. Zero
// matches is a *port.NotFoundError; the first (most specific) match
// wins otherwise.
func (c *Client) PushByRevision(ctx context.Context, rev string) (*domain.Push, error) {
	params := url.Values{"revision": {rev}}
	reqURL := fmt.Sprintf("%s/api/project/%s/push/?%s", c.baseURL, c.project, params.Encode())

	var payload struct {
		Results []domain.Push `json:"results"`
	}
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		return nil, err
	}

	if len(payload.Results) == 0 {
		return nil, &port.NotFoundError{Resource: "push", ID: rev}
	}
	return &payload.Results[0], nil
}

// JobsForPush returns the raw columnar job listing for one push,
// filtered to a job group.
func (c *Client) JobsForPush(ctx context.Context, pushID int64, groupSymbol string) (*domain.JobPayload, error) {
	params := url.Values{
		"push_id":          {strconv.FormatInt(pushID, 10)},
		"job_group_symbol": {groupSymbol},
	}
	reqURL := fmt.Sprintf("%s/api/jobs/?%s", c.baseURL, params.Encode())

	var payload domain.JobPayload
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
