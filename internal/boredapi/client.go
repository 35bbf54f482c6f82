// Package boredapi fetches random activities from the Bored API.
package boredapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/meur/duelforge/internal/challenge"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://www.boredapi.com/api"

// ErrNoActivity is returned when the API has nothing for the requested type.
var ErrNoActivity = errors.New("no activity for the requested type")

// Client implements challenge.ActivitySource.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ challenge.ActivitySource = (*Client)(nil)

// New creates a client. An empty baseURL uses DefaultBaseURL and a nil
// httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// Activity fetches one activity. challenge.Any sends no type filter.
func (c *Client) Activity(ctx context.Context, category challenge.Category) (challenge.Challenge, error) {
	u := c.baseURL + "/activity"
	if category != challenge.Any {
		u += "?" + url.Values{"type": {category.String()}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("get activity: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("read activity: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return challenge.Challenge{}, fmt.Errorf("get activity: HTTP %d", resp.StatusCode)
	}

	// An unknown type comes back as 200 with only an error field.
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return challenge.Challenge{}, fmt.Errorf("%w: %s", ErrNoActivity, apiErr.Error)
	}

	var ch challenge.Challenge
	if err := json.Unmarshal(body, &ch); err != nil {
		return challenge.Challenge{}, fmt.Errorf("%w: %v", challenge.ErrMalformed, err)
	}
	if err := ch.Validate(); err != nil {
		return challenge.Challenge{}, err
	}
	return ch, nil
}
