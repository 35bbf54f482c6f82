// Package source wires the CLI and MCP front-ends to either the duelforge
// backend or the public APIs directly, depending on the client config.
package source

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/meur/duelforge/internal/apiclient"
	"github.com/meur/duelforge/internal/boredapi"
	"github.com/meur/duelforge/internal/challenge"
	"github.com/meur/duelforge/internal/config"
	"github.com/meur/duelforge/internal/explorer"
	"github.com/meur/duelforge/internal/filter"
	"github.com/meur/duelforge/internal/models"
	"github.com/meur/duelforge/internal/timeouts"
	"github.com/meur/duelforge/internal/ygoprodeck"
)

// ErrNeedsBackend is returned for deck lookups in direct mode, since decks
// only live in the backend store.
var ErrNeedsBackend = errors.New(`tournament decks need source = "backend" in the config file`)

// Cards is the card lookup surface shared by both sources.
type Cards interface {
	explorer.CardSource
	CardByID(ctx context.Context, id int) (*models.Card, error)
	RandomCard(ctx context.Context) (*models.Card, error)
	Archetypes(ctx context.Context) ([]string, error)
}

// FilteredCards is implemented by card sources that apply filter criteria
// on their side. q carries either "q" or "archtype".
type FilteredCards interface {
	SearchFiltered(ctx context.Context, q url.Values, crit filter.Criteria) ([]models.Card, error)
}

var _ FilteredCards = (*apiclient.Client)(nil)

// Decks serves tournament decks and banlists.
type Decks interface {
	TopDecks(ctx context.Context) ([]models.Deck, error)
	DecksByCard(ctx context.Context, card string) ([]models.Deck, error)
	Banlists(ctx context.Context, format models.Format) ([]models.Banlist, error)
}

// Challenges returns a challenge, never failing.
type Challenges interface {
	Get(ctx context.Context, category challenge.Category) challenge.Challenge
}

// Set bundles the three sources.
type Set struct {
	Cards      Cards
	Decks      Decks
	Challenges Challenges
}

// New builds the sources described by cfg.
func New(cfg config.Client) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: timeouts.Upstream}

	if cfg.Source == config.SourceBackend {
		backend := apiclient.New(cfg.BackendURL, httpClient)
		return &Set{
			Cards:      backend,
			Decks:      backend,
			Challenges: &backendChallenges{backend: backend, local: challenge.NewPicker(nil)},
		}, nil
	}

	cards := ygoprodeck.New(cfg.CardDBURL, httpClient)
	return &Set{
		Cards:      cards,
		Decks:      &directDecks{cards: cards, now: time.Now},
		Challenges: challenge.NewPicker(boredapi.New(cfg.BoredAPIURL, httpClient)),
	}, nil
}

// backendChallenges asks the backend, which does its own fallback, and
// falls back locally when the backend itself is unreachable.
type backendChallenges struct {
	backend *apiclient.Client
	local   *challenge.Picker
}

func (b *backendChallenges) Get(ctx context.Context, category challenge.Category) challenge.Challenge {
	ch, err := b.backend.Challenge(ctx, category)
	if err != nil {
		log.Printf("challenge: backend unavailable, using local table: %v", err)
		return b.local.Local(category)
	}
	return ch
}

// directDecks builds the live banlist from the card database.
type directDecks struct {
	cards *ygoprodeck.Client
	now   func() time.Time
}

func (d *directDecks) TopDecks(ctx context.Context) ([]models.Deck, error) {
	return nil, ErrNeedsBackend
}

func (d *directDecks) DecksByCard(ctx context.Context, card string) ([]models.Deck, error) {
	return nil, ErrNeedsBackend
}

func (d *directDecks) Banlists(ctx context.Context, format models.Format) ([]models.Banlist, error) {
	formats := models.Formats()
	if format != "" {
		formats = []models.Format{format}
	}

	date := d.now().Format("2006-01-02")
	lists := make([]models.Banlist, 0, len(formats))
	for _, f := range formats {
		list, err := d.cards.CurrentBanlist(ctx, f, date)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}
