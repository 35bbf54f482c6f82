// Package apiclient talks to the duelforge backend's /api routes.
package apiclient

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

	"github.com/meur/duelforge/internal/challenge"
	"github.com/meur/duelforge/internal/filter"
	"github.com/meur/duelforge/internal/models"
)

// ErrNotFound is returned when the backend answers 404.
var ErrNotFound = errors.New("not found")

// Error is a non-success envelope returned by the backend.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: HTTP %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

// Client is a typed wrapper over the backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for a backend root such as http://localhost:8080.
// A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// SearchCards searches by name.
func (c *Client) SearchCards(ctx context.Context, name string) ([]models.Card, error) {
	return c.SearchFiltered(ctx, url.Values{"q": {name}}, filter.Criteria{})
}

// SearchArchetype lists the cards of an archetype.
func (c *Client) SearchArchetype(ctx context.Context, archetype string) ([]models.Card, error) {
	return c.SearchFiltered(ctx, url.Values{"archtype": {archetype}}, filter.Criteria{})
}

// SearchFiltered runs a search with server-side filtering. q must carry
// either "q" or "archtype".
func (c *Client) SearchFiltered(ctx context.Context, q url.Values, crit filter.Criteria) ([]models.Card, error) {
	for k, v := range crit.Query() {
		q[k] = v
	}
	var cards []models.Card
	if err := c.get(ctx, "/api/search-cards", q, &cards); err != nil {
		return nil, err
	}
	return nonNil(cards), nil
}

// ListCards returns a page of the card database.
func (c *Client) ListCards(ctx context.Context, num, offset int) ([]models.Card, error) {
	var cards []models.Card
	q := url.Values{"num": {strconv.Itoa(num)}, "offset": {strconv.Itoa(offset)}}
	if err := c.get(ctx, "/api/cards", q, &cards); err != nil {
		return nil, err
	}
	return nonNil(cards), nil
}

// CardByID fetches one card.
func (c *Client) CardByID(ctx context.Context, id int) (*models.Card, error) {
	var card models.Card
	if err := c.get(ctx, "/api/card-info", url.Values{"id": {strconv.Itoa(id)}}, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// RandomCard fetches one random card.
func (c *Client) RandomCard(ctx context.Context) (*models.Card, error) {
	var card models.Card
	if err := c.get(ctx, "/api/random-card", nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Archetypes lists archetype names.
func (c *Client) Archetypes(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.get(ctx, "/api/archetypes", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Banlists returns stored banlists, newest first. An empty format means all.
func (c *Client) Banlists(ctx context.Context, format models.Format) ([]models.Banlist, error) {
	var q url.Values
	if format != "" {
		q = url.Values{"format": {string(format)}}
	}
	var lists []models.Banlist
	if err := c.get(ctx, "/api/banlist", q, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// TopDecks returns every stored deck, newest first.
func (c *Client) TopDecks(ctx context.Context) ([]models.Deck, error) {
	var decks []models.Deck
	if err := c.get(ctx, "/api/top-decks", nil, &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

// DecksByCard returns the decks that contain card.
func (c *Client) DecksByCard(ctx context.Context, card string) ([]models.Deck, error) {
	var decks []models.Deck
	if err := c.get(ctx, "/api/decks-by-card", url.Values{"card": {card}}, &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

// Challenge asks the backend for a challenge. The backend already falls back
// to its local table, so an error here means the backend itself is down.
func (c *Client) Challenge(ctx context.Context, category challenge.Category) (challenge.Challenge, error) {
	var q url.Values
	if category != challenge.Any {
		q = url.Values{"category": {category.String()}}
	}
	var ch challenge.Challenge
	if err := c.get(ctx, "/api/challenge", q, &ch); err != nil {
		return challenge.Challenge{}, err
	}
	return ch, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
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
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode %s: HTTP %d: %w", path, resp.StatusCode, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w: %s", path, ErrNotFound, env.Error)
	}
	if resp.StatusCode != http.StatusOK || env.Status != "success" {
		return &Error{StatusCode: resp.StatusCode, Message: env.Error}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", path, err)
	}
	return nil
}

func nonNil(cards []models.Card) []models.Card {
	if cards == nil {
		return []models.Card{}
	}
	return cards
}
