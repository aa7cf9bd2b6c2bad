// Package github is a minimal client for the pieces of the github REST
// API that the pull-request workflow needs.
package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public github API endpoint.
const DefaultBaseURL = "https://api.github.com"

// pageSize is the number of results requested per page on list
// endpoints. Github caps per_page at 100.
const pageSize = 100

// Client talks to the github REST API.
type Client struct {
	// BaseURL can be pointed at a github enterprise instance or a test
	// server.
	BaseURL string

	token      string
	httpClient *http.Client
}

// NewClient creates a client authenticating with the given token. An
// empty token sends unauthenticated requests, which github rate-limits
// aggressively but accepts for public data.
func NewClient(token string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response from github.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github API error: %s returned %d: %s", e.URL, e.StatusCode, e.Message)
}

// ListPulls returns the open pull requests on "user/repo", following
// pagination until the last page.
func (c *Client) ListPulls(repoName string) ([]PullRequest, error) {
	var pulls []PullRequest
	for page := 1; ; page++ {
		var batch []PullRequest
		path := fmt.Sprintf("/repos/%s/pulls?state=open&per_page=%d&page=%d", repoName, pageSize, page)
		if err := c.do("GET", path, nil, &batch); err != nil {
			return nil, err
		}
		pulls = append(pulls, batch...)
		if len(batch) < pageSize {
			return pulls, nil
		}
	}
}

// GetPull returns one pull request.
func (c *Client) GetPull(repoName string, number int) (*PullRequest, error) {
	var pull PullRequest
	if err := c.do("GET", fmt.Sprintf("/repos/%s/pulls/%d", repoName, number), nil, &pull); err != nil {
		return nil, err
	}
	return &pull, nil
}

// CreatePull opens a new pull request on "user/repo".
func (c *Client) CreatePull(repoName string, newPull NewPull) (*PullRequest, error) {
	var pull PullRequest
	if err := c.do("POST", fmt.Sprintf("/repos/%s/pulls", repoName), newPull, &pull); err != nil {
		return nil, err
	}
	return &pull, nil
}

// ClosePull closes a pull request without merging it.
func (c *Client) ClosePull(repoName string, number int) error {
	body := struct {
		State string `json:"state"`
	}{State: "closed"}
	return c.do("PATCH", fmt.Sprintf("/repos/%s/pulls/%d", repoName, number), body, nil)
}

// Comment posts a comment on a pull request.
func (c *Client) Comment(repoName string, number int, comment string) error {
	body := struct {
		Body string `json:"body"`
	}{Body: comment}
	return c.do("POST", fmt.Sprintf("/repos/%s/issues/%d/comments", repoName, number), body, nil)
}

// Repositories lists the repositories belonging to a user, following
// pagination until the last page.
func (c *Client) Repositories(user string) ([]Repo, error) {
	var repos []Repo
	for page := 1; ; page++ {
		var batch []Repo
		path := fmt.Sprintf("/users/%s/repos?per_page=%d&page=%d", user, pageSize, page)
		if err := c.do("GET", path, nil, &batch); err != nil {
			return nil, err
		}
		repos = append(repos, batch...)
		if len(batch) < pageSize {
			return repos, nil
		}
	}
}

func (c *Client) do(method, path string, body, result any) error {
	url := c.BaseURL + path

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error communicating with github: %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading github response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, URL: url}
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if result == nil {
		return nil
	}
	if len(data) == 0 {
		return fmt.Errorf("invalid response from github: empty body")
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("invalid response from github: %w", err)
	}
	return nil
}
