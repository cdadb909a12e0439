package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"vibe-backend/internal/insight"
)

// ErrUnavailable marks a repository the remote API reports as missing or not
// accessible. Callers treat it as a confirmed condition, not a fault.
var ErrUnavailable = errors.New("repository not found or not accessible")

// Entry is one item of a directory listing from the contents API.
type Entry struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Client talks to the GitHub REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given API base URL. When token is
// non-empty, requests authenticate with it as a bearer token.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	httpClient := &http.Client{}
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), src)
	}
	httpClient.Timeout = timeout
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type repositoryResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Size        int64  `json:"size"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
}

// Repository fetches the repository metadata record. Any non-200 response is
// reported as ErrUnavailable.
func (c *Client) Repository(ctx context.Context, owner, name string) (insight.Metadata, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(name))

	var resp repositoryResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return insight.Metadata{}, err
	}
	return insight.Metadata{
		Name:        resp.Name,
		Description: resp.Description,
		Language:    resp.Language,
		SizeKB:      resp.Size,
		Stars:       resp.Stars,
		Forks:       resp.Forks,
	}, nil
}

// Contents lists the entries of a directory. An empty path lists the root.
func (c *Client) Contents(ctx context.Context, owner, name, path string) ([]Entry, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents", c.baseURL, url.PathEscape(owner), url.PathEscape(name))
	if path != "" {
		endpoint += "/" + path
	}

	var entries []Entry
	if err := c.getJSON(ctx, endpoint, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("github: build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("github: request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github: %s returned %d: %w", endpoint, resp.StatusCode, ErrUnavailable)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("github: decode %s: %w", endpoint, err)
	}
	return nil
}
