// Package ygoprodeck is a read-only client for the YGOProDeck card database.
package ygoprodeck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meur/duelforge/internal/models"
)

// DefaultBaseURL is the public v7 API root.
const DefaultBaseURL = "https://db.ygoprodeck.com/api/v7"

var (
	// ErrNoMatch is returned when the database has no card for the query.
	ErrNoMatch = errors.New("no card matching the query")
	// ErrNotFound is returned by CardByID for an unknown id.
	ErrNotFound = errors.New("card not found")
)

// Client queries cardinfo.php and archetypes.php
type Client struct {
	baseURL string
	http    *http.Client
}

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

// SearchCards does a fuzzy name search. No match gives an empty slice.
func (c *Client) SearchCards(ctx context.Context, name string) ([]models.Card, error) {
	return c.cardsOrEmpty(ctx, url.Values{"fname": {name}})
}

// SearchArchetype returns every card of an archetype.
func (c *Client) SearchArchetype(ctx context.Context, archetype string) ([]models.Card, error) {
	return c.cardsOrEmpty(ctx, url.Values{"archetype": {archetype}})
}

// ListCards returns a page of the database in its default order.
func (c *Client) ListCards(ctx context.Context, num, offset int) ([]models.Card, error) {
	return c.cardsOrEmpty(ctx, url.Values{
		"num":    {strconv.Itoa(num)},
		"offset": {strconv.Itoa(offset)},
	})
}

// BanlistCards returns every card on the current banlist of a format.
func (c *Client) BanlistCards(ctx context.Context, format models.Format) ([]models.Card, error) {
	return c.cardsOrEmpty(ctx, url.Values{"banlist": {strings.ToLower(string(format))}})
}

// CardByID looks up a single card.
func (c *Client) CardByID(ctx context.Context, id int) (*models.Card, error) {
	cards, err := c.cards(ctx, url.Values{"id": {strconv.Itoa(id)}})
	if errors.Is(err, ErrNoMatch) || (err == nil && len(cards) == 0) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &cards[0], nil
}

// RandomCard returns one card chosen by the database.
func (c *Client) RandomCard(ctx context.Context) (*models.Card, error) {
	cards, err := c.cards(ctx, url.Values{
		"num":       {"1"},
		"offset":    {"0"},
		"sort":      {"random"},
		"cachebust": {strconv.FormatInt(time.Now().UnixNano(), 10)},
	})
	if errors.Is(err, ErrNoMatch) || (err == nil && len(cards) == 0) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cards[0], nil
}

// Archetypes lists every archetype name.
func (c *Client) Archetypes(ctx context.Context) ([]string, error) {
	var raw []struct {
		Name string `json:"archetype_name"`
	}
	if err := c.get(ctx, "archetypes.php", nil, &raw); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(raw))
	for _, a := range raw {
		names = append(names, a.Name)
	}
	return names, nil
}

func (c *Client) cardsOrEmpty(ctx context.Context, q url.Values) ([]models.Card, error) {
	cards, err := c.cards(ctx, q)
	if errors.Is(err, ErrNoMatch) {
		return []models.Card{}, nil
	}
	return cards, err
}

func (c *Client) cards(ctx context.Context, q url.Values) ([]models.Card, error) {
	var result struct {
		Data []models.Card `json:"data"`
	}
	if err := c.get(ctx, "cardinfo.php", q, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return []models.Card{}, nil
	}
	return result.Data, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	u := c.baseURL + "/" + endpoint
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		// The database answers "no match" with a 400 and an error message.
		var apiErr struct {
			Error string `json:"error"`
		}
		if resp.StatusCode == http.StatusBadRequest && json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%w: %s", ErrNoMatch, apiErr.Error)
		}
		return fmt.Errorf("get %s: HTTP %d", endpoint, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}
