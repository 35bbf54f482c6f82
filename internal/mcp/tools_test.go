package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meur/duelforge/internal/challenge"
	"github.com/meur/duelforge/internal/filter"
	"github.com/meur/duelforge/internal/models"
	"github.com/meur/duelforge/internal/source"
)

type fakeCards struct {
	cards []models.Card
	err   error
	last  string
}

func (f *fakeCards) SearchCards(ctx context.Context, name string) ([]models.Card, error) {
	f.last = "name:" + name
	return f.cards, f.err
}

func (f *fakeCards) SearchArchetype(ctx context.Context, archetype string) ([]models.Card, error) {
	f.last = "archetype:" + archetype
	return f.cards, f.err
}

func (f *fakeCards) ListCards(ctx context.Context, num, offset int) ([]models.Card, error) {
	return f.cards, f.err
}

func (f *fakeCards) CardByID(ctx context.Context, id int) (*models.Card, error) {
	for _, c := range f.cards {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errors.New("card not found")
}

func (f *fakeCards) RandomCard(ctx context.Context) (*models.Card, error) {
	return &f.cards[0], f.err
}

func (f *fakeCards) Archetypes(ctx context.Context) ([]string, error) {
	return []string{"Blue-Eyes", "Red-Eyes", "Tearlament"}, f.err
}

// filteringCards filters on its side, like the backend client.
type filteringCards struct {
	fakeCards
	query url.Values
	crit  filter.Criteria
}

func (f *filteringCards) SearchFiltered(ctx context.Context, q url.Values, crit filter.Criteria) ([]models.Card, error) {
	f.query, f.crit = q, crit
	return filter.Apply(f.cards, crit), nil
}

type fakeDecks struct {
	err        error
	lastFormat models.Format
}

func (f *fakeDecks) TopDecks(ctx context.Context) ([]models.Deck, error) {
	return nil, f.err
}

func (f *fakeDecks) DecksByCard(ctx context.Context, card string) ([]models.Deck, error) {
	return []models.Deck{{Name: "Snake-Eye", MainCards: []string{card}}}, f.err
}

func (f *fakeDecks) Banlists(ctx context.Context, format models.Format) ([]models.Banlist, error) {
	f.lastFormat = format
	all := []models.Banlist{
		{Format: models.FormatTCG, Date: "2026-01-15"},
		{Format: models.FormatOCG, Date: "2026-01-01"},
		{Format: models.FormatTCG, Date: "2025-10-01"},
	}
	var out []models.Banlist
	for _, b := range all {
		if format == "" || b.Format == format {
			out = append(out, b)
		}
	}
	return out, f.err
}

func newTools() (*tools, *fakeCards, *fakeDecks) {
	cards := &fakeCards{cards: []models.Card{
		{ID: 89631139, Name: "Blue-Eyes White Dragon", Type: "Normal Monster", Attribute: "LIGHT", Level: filter.Level(8)},
		{ID: 74677422, Name: "Red-Eyes Black Dragon", Type: "Normal Monster", Attribute: "DARK", Level: filter.Level(7)},
	}}
	decks := &fakeDecks{}
	return &tools{sources: &source.Set{
		Cards:      cards,
		Decks:      decks,
		Challenges: challenge.NewPicker(nil),
	}}, cards, decks
}

// newCallToolRequest builds a tool call request with arguments.
func newCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultText returns the text of the first content item.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func decode[T any](t *testing.T, result *mcp.CallToolResult) T {
	t.Helper()
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	var v T
	if err := json.Unmarshal([]byte(resultText(t, result)), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestRegisterTools(t *testing.T) {
	s := server.NewMCPServer("duelforge", "1.0.0")
	tt, _, _ := newTools()
	RegisterTools(s, tt.sources)

	names := map[string]bool{}
	for name := range s.ListTools() {
		names[name] = true
	}
	for _, want := range []string{"search_cards", "get_card", "random_card", "list_archetypes",
		"get_banlist", "list_top_decks", "decks_by_card", "get_challenge"} {
		if !names[want] {
			t.Errorf("tool %s not registered", want)
		}
	}
}

func TestSearchCardsAppliesFilters(t *testing.T) {
	tt, cards, _ := newTools()

	result, err := tt.handleSearchCards(context.Background(), newCallToolRequest("search_cards", map[string]any{
		"query": "dragon",
		"level": float64(8),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp := decode[cardListResponse](t, result)
	if resp.Total != 1 || resp.Cards[0].ID != 89631139 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if cards.last != "name:dragon" {
		t.Fatalf("unexpected upstream call %q", cards.last)
	}

	result, _ = tt.handleSearchCards(context.Background(), newCallToolRequest("search_cards", map[string]any{
		"archetype": "Red-Eyes",
		"attribute": "LIGHT",
	}))
	resp = decode[cardListResponse](t, result)
	if resp.Total != 0 || resp.Cards == nil {
		t.Fatalf("expected an empty non-nil list, got %+v", resp)
	}
	if cards.last != "archetype:Red-Eyes" {
		t.Fatalf("unexpected upstream call %q", cards.last)
	}
}

func TestSearchCardsSendsFiltersToFilteringSource(t *testing.T) {
	tt, cards, _ := newTools()
	fc := &filteringCards{fakeCards: *cards}
	tt.sources.Cards = fc

	result, _ := tt.handleSearchCards(context.Background(), newCallToolRequest("search_cards", map[string]any{
		"archetype": "Blue-Eyes",
		"attribute": "LIGHT",
	}))
	resp := decode[cardListResponse](t, result)
	if resp.Total != 1 || resp.Cards[0].ID != 89631139 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if fc.query.Get("archtype") != "Blue-Eyes" || fc.crit.Attribute != "LIGHT" {
		t.Fatalf("criteria not forwarded: query %v, criteria %+v", fc.query, fc.crit)
	}

	// Without criteria the plain search is used.
	fc.query = nil
	tt.handleSearchCards(context.Background(), newCallToolRequest("search_cards", map[string]any{"query": "dragon"}))
	if fc.query != nil || fc.last != "name:dragon" {
		t.Fatalf("expected the plain name search, got query %v, last %q", fc.query, fc.last)
	}
}

func TestSearchCardsErrors(t *testing.T) {
	tt, cards, _ := newTools()
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"no query", map[string]any{}, "query or archetype is required"},
		{"bad banlist", map[string]any{"query": "x", "banlist": "goat"}, "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, _ := tt.handleSearchCards(ctx, newCallToolRequest("search_cards", tc.args))
			if !result.IsError || !strings.Contains(strings.ToLower(resultText(t, result)), tc.want) {
				t.Fatalf("expected error containing %q, got %q", tc.want, resultText(t, result))
			}
		})
	}

	cards.err = errors.New("timeout")
	result, _ := tt.handleSearchCards(ctx, newCallToolRequest("search_cards", map[string]any{"query": "x"}))
	if !result.IsError || resultText(t, result) != "Search failed: timeout" {
		t.Fatalf("unexpected result %q", resultText(t, result))
	}
}

func TestGetCard(t *testing.T) {
	tt, _, _ := newTools()

	card := decode[models.Card](t, mustCall(t, tt.handleGetCard, map[string]any{"id": float64(74677422)}))
	if card.Name != "Red-Eyes Black Dragon" {
		t.Fatalf("unexpected card %+v", card)
	}

	result := mustCall(t, tt.handleGetCard, map[string]any{})
	if !result.IsError {
		t.Fatal("expected an error without id")
	}
	result = mustCall(t, tt.handleGetCard, map[string]any{"id": float64(1)})
	if !result.IsError {
		t.Fatal("expected an error for an unknown id")
	}
}

func TestListArchetypesMatch(t *testing.T) {
	tt, _, _ := newTools()
	names := decode[[]string](t, mustCall(t, tt.handleListArchetypes, map[string]any{"match": "EYES"}))
	if len(names) != 2 || names[0] != "Blue-Eyes" || names[1] != "Red-Eyes" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestGetBanlist(t *testing.T) {
	tt, _, decks := newTools()

	lists := decode[[]models.Banlist](t, mustCall(t, tt.handleGetBanlist, map[string]any{"format": "tcg", "latest": true}))
	if len(lists) != 1 || lists[0].Date != "2026-01-15" {
		t.Fatalf("unexpected banlists %+v", lists)
	}
	if decks.lastFormat != models.FormatTCG {
		t.Fatalf("expected TCG, got %q", decks.lastFormat)
	}

	lists = decode[[]models.Banlist](t, mustCall(t, tt.handleGetBanlist, map[string]any{"latest": true}))
	if len(lists) != 2 || lists[0].Format != models.FormatTCG || lists[1].Format != models.FormatOCG {
		t.Fatalf("expected the newest list of each format, got %+v", lists)
	}

	if result := mustCall(t, tt.handleGetBanlist, map[string]any{"format": "goat"}); !result.IsError {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestDeckTools(t *testing.T) {
	tt, _, decks := newTools()

	got := decode[[]models.Deck](t, mustCall(t, tt.handleTopDecks, nil))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected an empty list, got %+v", got)
	}

	if result := mustCall(t, tt.handleDecksByCard, map[string]any{"card": " "}); !result.IsError {
		t.Fatal("expected an error without card")
	}
	got = decode[[]models.Deck](t, mustCall(t, tt.handleDecksByCard, map[string]any{"card": "Ash Blossom"}))
	if len(got) != 1 || !got[0].Contains("ash blossom") {
		t.Fatalf("unexpected decks %+v", got)
	}

	decks.err = source.ErrNeedsBackend
	result := mustCall(t, tt.handleTopDecks, nil)
	if !result.IsError || resultText(t, result) != source.ErrNeedsBackend.Error() {
		t.Fatalf("unexpected result %q", resultText(t, result))
	}
}

func TestGetChallenge(t *testing.T) {
	tt, _, _ := newTools()

	ch := decode[challenge.Challenge](t, mustCall(t, tt.handleGetChallenge, map[string]any{"category": "vr"}))
	if ch.Category != challenge.VR || ch.Source != challenge.SourceLocal {
		t.Fatalf("unexpected challenge %+v", ch)
	}

	if result := mustCall(t, tt.handleGetChallenge, map[string]any{"category": "knitting"}); !result.IsError {
		t.Fatal("expected an error for an unknown category")
	}
}

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func mustCall(t *testing.T, h handler, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := h(context.Background(), newCallToolRequest("", args))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}
