// Package puzzle fetches banana puzzles from the external provider.
package puzzle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Question is the provider's response: an image URL and its numeric solution.
type Question struct {
	Question string `json:"question"`
	Solution int    `json:"solution"`
}

// Client talks to the puzzle provider API.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a client for the given provider endpoint.
func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch retrieves one puzzle from the provider.
func (c *Client) Fetch(ctx context.Context) (Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Question{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Question{}, fmt.Errorf("fetch puzzle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Question{}, fmt.Errorf("fetch puzzle: provider returned %s", resp.Status)
	}

	var q Question
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return Question{}, fmt.Errorf("decode puzzle response: %w", err)
	}
	return q, nil
}
