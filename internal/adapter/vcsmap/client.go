package vcsmap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// Client talks to the hg-git mapper service. The mapper answers
// GET {base}/{project}/rev/{hg|git}/{hash} with a one-line
// "<hg sha> <git sha>" pair.
type Client struct {
	baseURL    string
	project    string
	httpClient *http.Client
}

// New creates a mapper client for one project mapping.
func New(baseURL, project string) *Client {
	return &Client{
		baseURL:    baseURL,
		project:    project,
		httpClient: &http.Client{},
	}
}

// Translate converts a commit hash to its counterpart namespace.
func (c *Client) Translate(ctx context.Context, dir domain.Direction, id string) (string, error) {
	ns := "hg"
	if dir == domain.GitToHg {
		ns = "git"
	}
	reqURL := fmt.Sprintf("%s/%s/rev/%s/%s", c.baseURL, c.project, ns, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("vcsmap: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("vcsmap: translate %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &port.ConversionError{Direction: dir.String(), ID: id, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("vcsmap: read response: %w", err)
	}

	fields := strings.Fields(strings.TrimSpace(string(body)))
	if len(fields) != 2 {
		return "", fmt.Errorf("vcsmap: malformed pair %q for %s", strings.TrimSpace(string(body)), id)
	}

	if dir == domain.HgToGit {
		return fields[1], nil
	}
	return fields[0], nil
}
