// Package form implements the client side of the registration form: thin
// probes against the duplicate-check endpoints, a per-field debouncer, and
// the submit gate. The gate is advisory only — the server re-validates every
// submission and remains the sole enforcement point.
package form

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls the read-only check endpoints of the registration service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a check client for the service at baseURL. A nil
// httpClient gets a default with a 10 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// CheckTeamName reports whether the team name is already registered.
func (c *Client) CheckTeamName(ctx context.Context, name string) (bool, error) {
	return c.exists(ctx, "/api/sheets/check-team", "teamName", name)
}

// CheckProjectName reports whether the project name is already registered.
func (c *Client) CheckProjectName(ctx context.Context, name string) (bool, error) {
	return c.exists(ctx, "/api/sheets/check-project", "projectName", name)
}

// CheckStudentID reports whether the student ID is already registered.
func (c *Client) CheckStudentID(ctx context.Context, id string) (bool, error) {
	return c.exists(ctx, "/api/sheets/check-student-id", "studentId", id)
}

func (c *Client) exists(ctx context.Context, path, param, value string) (bool, error) {
	u := c.baseURL + path + "?" + url.Values{param: {value}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("building check request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("check request returned status %d", resp.StatusCode)
	}

	var body struct {
		Exists bool `json:"exists"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decoding check response: %w", err)
	}
	return body.Exists, nil
}
