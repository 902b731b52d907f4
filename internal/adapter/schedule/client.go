package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// Client fetches per-channel entries from the release calendar.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a release-calendar client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Schedule returns the calendar entry for one channel ("beta" or
// "release"). Dates come back as calendar-date strings in whatever
// zone the calendar reports; no reinterpretation happens here.
func (c *Client) Schedule(ctx context.Context, channel string) (*domain.ChannelSchedule, error) {
	params := url.Values{"version": {channel}}
	reqURL := fmt.Sprintf("%s/api/release/schedule/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("schedule: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schedule: fetch %s: %w", channel, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &port.UpstreamError{Service: "release calendar", Status: resp.StatusCode}
	}

	var sched domain.ChannelSchedule
	if err := json.NewDecoder(resp.Body).Decode(&sched); err != nil {
		return nil, fmt.Errorf("schedule: decode %s entry: %w", channel, err)
	}
	return &sched, nil
}
