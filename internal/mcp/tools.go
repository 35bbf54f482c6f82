// Package mcp exposes the card, deck and challenge lookups as MCP tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meur/duelforge/internal/challenge"
	"github.com/meur/duelforge/internal/filter"
	"github.com/meur/duelforge/internal/models"
	"github.com/meur/duelforge/internal/source"
)

// maxResults caps card lists so a broad search does not flood the client.
const maxResults = 50

// tools binds the handlers to one source set.
type tools struct {
	sources *source.Set
}

// RegisterTools adds all duelforge tools to the MCP server.
func RegisterTools(s *server.MCPServer, sources *source.Set) {
	t := &tools{sources: sources}
	s.AddTool(searchCardsTool(), t.handleSearchCards)
	s.AddTool(getCardTool(), t.handleGetCard)
	s.AddTool(randomCardTool(), t.handleRandomCard)
	s.AddTool(listArchetypesTool(), t.handleListArchetypes)
	s.AddTool(getBanlistTool(), t.handleGetBanlist)
	s.AddTool(topDecksTool(), t.handleTopDecks)
	s.AddTool(decksByCardTool(), t.handleDecksByCard)
	s.AddTool(getChallengeTool(), t.handleGetChallenge)
}

// --- Tool definitions ---

func searchCardsTool() mcp.Tool {
	return mcp.NewTool("search_cards",
		mcp.WithDescription("Search Yu-Gi-Oh cards by name (fuzzy) or by archetype, then narrow the results with optional filters. "+
			"Exactly one of query or archetype is required."),
		mcp.WithString("query", mcp.Description("Part of a card name, e.g. 'dark magician'")),
		mcp.WithString("archetype", mcp.Description("Exact archetype name, e.g. 'Tearlament'")),
		mcp.WithString("type", mcp.Description("Card type substring, e.g. 'Monster', 'Spell', 'Synchro'")),
		mcp.WithString("attribute", mcp.Description("Attribute, e.g. 'LIGHT'")),
		mcp.WithNumber("level", mcp.Description("Level or rank")),
		mcp.WithString("race", mcp.Description("Monster type or spell/trap kind, e.g. 'Dragon', 'Quick-Play'")),
		mcp.WithString("banlist", mcp.Description("Only cards on this banlist: 'TCG' or 'OCG'")),
	)
}

func getCardTool() mcp.Tool {
	return mcp.NewTool("get_card",
		mcp.WithDescription("Get the full details of one card by its numeric ID."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Card ID, e.g. 89631139")),
	)
}

func randomCardTool() mcp.Tool {
	return mcp.NewTool("random_card",
		mcp.WithDescription("Get a random card."),
	)
}

func listArchetypesTool() mcp.Tool {
	return mcp.NewTool("list_archetypes",
		mcp.WithDescription("List archetype names, optionally only those containing a substring."),
		mcp.WithString("match", mcp.Description("Case-insensitive substring")),
	)
}

func getBanlistTool() mcp.Tool {
	return mcp.NewTool("get_banlist",
		mcp.WithDescription("Get the banlists for a format, newest first. Each card is Forbidden, Limited or Semi-Limited."),
		mcp.WithString("format", mcp.Description("'TCG' or 'OCG'; both when omitted")),
		mcp.WithBoolean("latest", mcp.Description("Only the most recent list of each format")),
	)
}

func topDecksTool() mcp.Tool {
	return mcp.NewTool("list_top_decks",
		mcp.WithDescription("List tournament-topping decks, newest first."),
	)
}

func decksByCardTool() mcp.Tool {
	return mcp.NewTool("decks_by_card",
		mcp.WithDescription("List tournament decks running a card. The name is matched as a case-insensitive substring."),
		mcp.WithString("card", mcp.Required(), mcp.Description("Card name or part of it")),
	)
}

func getChallengeTool() mcp.Tool {
	return mcp.NewTool("get_challenge",
		mcp.WithDescription("Pick a random challenge. Uses the Bored API when it answers and a built-in list otherwise; "+
			"the 'source' field tells which."),
		mcp.WithString("category", mcp.Description("Category such as 'gaming', 'coding', 'vr'; any when omitted")),
	)
}

// --- Tool handlers ---

func (t *tools) handleSearchCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(request.GetString("query", ""))
	archetype := strings.TrimSpace(request.GetString("archetype", ""))
	if query == "" && archetype == "" {
		return mcp.NewToolResultError("query or archetype is required"), nil
	}

	crit, err := criteriaFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var cards []models.Card
	if fc, ok := t.sources.Cards.(source.FilteredCards); ok && !crit.IsZero() {
		q := url.Values{"q": {query}}
		if archetype != "" {
			q = url.Values{"archtype": {archetype}}
		}
		cards, err = fc.SearchFiltered(ctx, q, crit)
	} else if archetype != "" {
		cards, err = t.sources.Cards.SearchArchetype(ctx, archetype)
	} else {
		cards, err = t.sources.Cards.SearchCards(ctx, query)
	}
	if err != nil {
		return mcp.NewToolResultErrorf("Search failed: %v", err), nil
	}

	cards = filter.Apply(cards, crit)
	resp := cardListResponse{Total: len(cards), Cards: cards}
	if len(cards) > maxResults {
		resp.Cards = cards[:maxResults]
		resp.Truncated = true
	}
	if resp.Cards == nil {
		resp.Cards = []models.Card{}
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (t *tools) handleGetCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetInt("id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("id must be a positive card ID"), nil
	}
	card, err := t.sources.Cards.CardByID(ctx, id)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to get card %d: %v", id, err), nil
	}
	return mcp.NewToolResultText(respondJSON(card)), nil
}

func (t *tools) handleRandomCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	card, err := t.sources.Cards.RandomCard(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to get a random card: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(card)), nil
}

func (t *tools) handleListArchetypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := t.sources.Cards.Archetypes(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to list archetypes: %v", err), nil
	}
	match := strings.ToLower(strings.TrimSpace(request.GetString("match", "")))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if match == "" || strings.Contains(strings.ToLower(name), match) {
			out = append(out, name)
		}
	}
	return mcp.NewToolResultText(respondJSON(out)), nil
}

func (t *tools) handleGetBanlist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var format models.Format
	if raw := request.GetString("format", ""); raw != "" {
		f, err := models.ParseFormat(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		format = f
	}

	lists, err := t.sources.Decks.Banlists(ctx, format)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load banlists: %v", err), nil
	}
	if request.GetBool("latest", false) {
		lists = models.LatestPerFormat(lists)
	}
	if lists == nil {
		lists = []models.Banlist{}
	}
	return mcp.NewToolResultText(respondJSON(lists)), nil
}

func (t *tools) handleTopDecks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	decks, err := t.sources.Decks.TopDecks(ctx)
	return t.deckResult(decks, err)
}

func (t *tools) handleDecksByCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	card := strings.TrimSpace(request.GetString("card", ""))
	if card == "" {
		return mcp.NewToolResultError("card is required"), nil
	}
	decks, err := t.sources.Decks.DecksByCard(ctx, card)
	return t.deckResult(decks, err)
}

func (t *tools) deckResult(decks []models.Deck, err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, source.ErrNeedsBackend) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load decks: %v", err), nil
	}
	if decks == nil {
		decks = []models.Deck{}
	}
	return mcp.NewToolResultText(respondJSON(decks)), nil
}

func (t *tools) handleGetChallenge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := challenge.ParseCategory(request.GetString("category", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(t.sources.Challenges.Get(ctx, category))), nil
}

type cardListResponse struct {
	Total     int           `json:"total"`
	Truncated bool          `json:"truncated,omitempty"`
	Cards     []models.Card `json:"cards"`
}

func criteriaFromRequest(request mcp.CallToolRequest) (filter.Criteria, error) {
	c := filter.Criteria{
		Type:      strings.TrimSpace(request.GetString("type", "")),
		Attribute: strings.TrimSpace(request.GetString("attribute", "")),
		Race:      strings.TrimSpace(request.GetString("race", "")),
	}
	if args := request.GetArguments(); args["level"] != nil {
		c.Level = filter.Level(request.GetInt("level", 0))
	}
	if raw := request.GetString("banlist", ""); raw != "" {
		f, err := models.ParseFormat(raw)
		if err != nil {
			return filter.Criteria{}, err
		}
		c.Banlist = f
	}
	return c, nil
}

func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
