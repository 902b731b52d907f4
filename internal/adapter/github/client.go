package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// Client reads the canonical git history through the GitHub REST API.
type Client struct {
	baseURL    string
	repo       string // "owner/name"
	token      string // optional, raises the rate limit
	httpClient *http.Client
}

// New creates a client for one repository. token may be empty.
func New(baseURL, repo, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		repo:       repo,
		token:      token,
		httpClient: &http.Client{},
	}
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("github: create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.httpClient.Do(req)
}

// LatestCommit returns the newest commit hash on the default branch.
func (c *Client) LatestCommit(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/repos/%s/commits?per_page=1", c.repo))
	if err != nil {
		return "", fmt.Errorf("github: fetch latest commit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &port.UpstreamError{Service: "github", Status: resp.StatusCode}
	}

	var commits []struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&commits); err != nil {
		return "", fmt.Errorf("github: decode commit list: %w", err)
	}
	if len(commits) == 0 {
		return "", &port.NotFoundError{Resource: "commit", ID: "HEAD"}
	}
	return commits[0].SHA, nil
}

// Commit confirms a commit exists in the canonical history.
func (c *Client) Commit(ctx context.Context, sha string) error {
	resp, err := c.get(ctx, fmt.Sprintf("/repos/%s/commits/%s", c.repo, url.PathEscape(sha)))
	if err != nil {
		return fmt.Errorf("github: fetch commit: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return &port.NotFoundError{Resource: "commit", ID: sha}
	default:
		return &port.UpstreamError{Service: "github", Status: resp.StatusCode}
	}
}

// FileContent returns a file's decoded content at a ref. The contents
// API delivers base64 with embedded newlines, which must be stripped
// before decoding.
func (c *Client) FileContent(ctx context.Context, ref, path string) ([]byte, error) {
	p := fmt.Sprintf("/repos/%s/contents/%s?ref=%s", c.repo, path, url.QueryEscape(ref))
	resp, err := c.get(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("github: fetch contents: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &port.NotFoundError{Resource: "file", ID: path}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &port.UpstreamError{Service: "github", Status: resp.StatusCode}
	}

	var payload struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("github: decode contents: %w", err)
	}
	if payload.Encoding != "base64" {
		return nil, fmt.Errorf("github: unexpected content encoding %q for %s", payload.Encoding, path)
	}

	raw := strings.ReplaceAll(payload.Content, "\n", "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("github: decode base64 content of %s: %w", path, err)
	}
	return data, nil
}
