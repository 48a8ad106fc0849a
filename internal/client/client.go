// Package client is the HTTP client the CLI side uses to talk to the
// folio server API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/odemir/folio/internal/models"
)

// Client talks to the folio server API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an API client for the given server base URL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Rates fetches the current rate table.
func (c *Client) Rates(ctx context.Context) (models.RateTable, error) {
	var table models.RateTable
	if err := c.getJSON(ctx, "/api/rates", &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Words fetches one page of words matching the filter.
func (c *Client) Words(ctx context.Context, filter *models.WordFilter) (*models.WordPage, error) {
	q := url.Values{}
	if filter != nil {
		if filter.Search != "" {
			q.Set("search", filter.Search)
		}
		if filter.Level != "" {
			q.Set("level", filter.Level)
		}
		if filter.Page > 0 {
			q.Set("page", strconv.Itoa(filter.Page))
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
	}
	path := "/api/words"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page models.WordPage
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// WordOfTheDay fetches today's word.
func (c *Client) WordOfTheDay(ctx context.Context) (*models.Word, error) {
	var word models.Word
	if err := c.getJSON(ctx, "/api/words/daily", &word); err != nil {
		return nil, err
	}
	return &word, nil
}

// UpsertProgress stores one progress entry on the server.
func (c *Client) UpsertProgress(ctx context.Context, userID, wordID, status string) error {
	payload := map[string]string{
		"user_id": userID,
		"word_id": wordID,
		"status":  status,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode progress payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/progress", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post progress: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("progress API returned status %d", resp.StatusCode)
	}
	return nil
}

// ListProgress fetches all progress entries for a user.
func (c *Client) ListProgress(ctx context.Context, userID string) ([]*models.ProgressEntry, error) {
	var entries []*models.ProgressEntry
	path := "/api/progress?user_id=" + url.QueryEscape(userID)
	if err := c.getJSON(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return nil
}
