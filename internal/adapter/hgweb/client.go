package hgweb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// Client talks to an hgweb instance (hg.mozilla.org style JSON API).
type Client struct {
	baseURL    string
	repo       string
	httpClient *http.Client
}

// New creates an hgweb client for one repository.
func New(baseURL, repo string) *Client {
	return &Client{
		baseURL:    baseURL,
		repo:       repo,
		httpClient: &http.Client{},
	}
}

// FileInfo returns last-modified metadata for a file at a revision,
// taken from the newest log entry touching the file. An empty rev
// means tip.
func (c *Client) FileInfo(ctx context.Context, rev, path string) (*domain.FileInfo, error) {
	if rev == "" {
		rev = "tip"
	}

	params := url.Values{
		"rev":   {rev},
		"file":  {path},
		"limit": {"1"},
	}
	reqURL := fmt.Sprintf("%s/%s/json-log?%s", c.baseURL, c.repo, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("hgweb: create file log request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hgweb: fetch file log: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &port.NotFoundError{Resource: "file", ID: path}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &port.UpstreamError{Service: "hgweb", Status: resp.StatusCode}
	}

	var payload struct {
		Entries []struct {
			Node string    `json:"node"`
			Date []float64 `json:"date"` // [unix seconds, tz offset seconds]
		} `json:"entries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("hgweb: decode file log: %w", err)
	}

	if len(payload.Entries) == 0 {
		return nil, &port.NotFoundError{Resource: "file", ID: path}
	}

	entry := payload.Entries[0]
	if len(entry.Date) == 0 {
		return nil, fmt.Errorf("hgweb: log entry for %s has no date", path)
	}

	// hgweb reports [unixtime, offset]; the offset is hg's west-positive
	// convention, kept as the upstream zone rather than reinterpreted.
	loc := time.UTC
	if len(entry.Date) > 1 {
		loc = time.FixedZone("", -int(entry.Date[1]))
	}

	return &domain.FileInfo{
		Path:         path,
		LastModified: time.Unix(int64(entry.Date[0]), 0).In(loc),
	}, nil
}
