// Package explorer holds the card explorer state: the working set fetched
// from a card source, the active filter criteria and the view derived from
// both.
package explorer

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/message"

	"github.com/meur/duelforge/internal/filter"
	"github.com/meur/duelforge/internal/i18n"
	"github.com/meur/duelforge/internal/models"
)

// DefaultListSize is the number of cards shown before any search.
const DefaultListSize = 20

var (
	// ErrEmptyQuery is returned for a blank search.
	ErrEmptyQuery = errors.New("empty search query")
	// ErrStale is returned when a newer request was issued while this one
	// was in flight. Its result was discarded.
	ErrStale = errors.New("stale response discarded")
)

// CardSource is anything that can list and search cards: the backend client
// or the card database client.
type CardSource interface {
	SearchCards(ctx context.Context, name string) ([]models.Card, error)
	SearchArchetype(ctx context.Context, archetype string) ([]models.Card, error)
	ListCards(ctx context.Context, num, offset int) ([]models.Card, error)
}

// StatusKind classifies the status line.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusError
)

// Status is the user-facing outcome of the last action.
type Status struct {
	Kind    StatusKind
	Message string
}

// Controller is safe for concurrent use. The view is always
// filter.Apply(all, criteria).
type Controller struct {
	source  CardSource
	printer *message.Printer

	mu       sync.Mutex
	seq      uint64
	all      []models.Card
	filtered []models.Card
	criteria filter.Criteria
	status   Status
}

// New creates a controller whose messages are in lang.
func New(source CardSource, lang string) *Controller {
	return &Controller{
		source:   source,
		printer:  i18n.Printer(lang),
		all:      []models.Card{},
		filtered: []models.Card{},
	}
}

// Search replaces the working set with the cards matching query.
func (c *Controller) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		c.mu.Lock()
		c.status = Status{StatusError, c.printer.Sprintf(i18n.KeyEmptyQuery)}
		c.mu.Unlock()
		return ErrEmptyQuery
	}
	return c.run(ctx, c.printer.Sprintf(i18n.KeyNoCardsFound, query), func(ctx context.Context) ([]models.Card, error) {
		return c.source.SearchCards(ctx, query)
	})
}

// SearchArchetype replaces the working set with the cards of an archetype.
func (c *Controller) SearchArchetype(ctx context.Context, archetype string) error {
	archetype = strings.TrimSpace(archetype)
	if archetype == "" {
		c.mu.Lock()
		c.status = Status{StatusError, c.printer.Sprintf(i18n.KeyEmptyQuery)}
		c.mu.Unlock()
		return ErrEmptyQuery
	}
	return c.run(ctx, c.printer.Sprintf(i18n.KeyNoCardsFound, archetype), func(ctx context.Context) ([]models.Card, error) {
		return c.source.SearchArchetype(ctx, archetype)
	})
}

// LoadDefault fills the working set with the first page of the database.
func (c *Controller) LoadDefault(ctx context.Context) error {
	return c.run(ctx, c.printer.Sprintf(i18n.KeyNoCards), func(ctx context.Context) ([]models.Card, error) {
		return c.source.ListCards(ctx, DefaultListSize, 0)
	})
}

func (c *Controller) run(ctx context.Context, emptyMsg string, fetch func(context.Context) ([]models.Card, error)) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	cards, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return ErrStale
	}
	if err != nil {
		c.all = []models.Card{}
		c.filtered = []models.Card{}
		c.status = Status{StatusError, c.printer.Sprintf(i18n.KeySearchFailed, err)}
		return err
	}
	if len(cards) == 0 {
		c.all = []models.Card{}
		c.filtered = []models.Card{}
		c.status = Status{StatusInfo, emptyMsg}
		return nil
	}

	c.all = cards
	c.filtered = filter.Apply(c.all, c.criteria)
	c.status = Status{StatusInfo, c.printer.Sprintf(i18n.KeyResultCount, len(c.filtered))}
	return nil
}

// SetCriteria replaces the active criteria and recomputes the view.
func (c *Controller) SetCriteria(crit filter.Criteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = crit
	c.filtered = filter.Apply(c.all, crit)
}

// Reset clears every criterion; the view becomes the working set.
func (c *Controller) Reset() {
	c.SetCriteria(filter.Criteria{})
}

// Cards returns the current view.
func (c *Controller) Cards() []models.Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Card(nil), c.filtered...)
}

// All returns the unfiltered working set.
func (c *Controller) All() []models.Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Card(nil), c.all...)
}

// Criteria returns the active criteria.
func (c *Controller) Criteria() filter.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// Status returns the outcome of the last action.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// ResultCount is the localized size of the current view, e.g. "3 cards found".
func (c *Controller) ResultCount() string {
	c.mu.Lock()
	n := len(c.filtered)
	c.mu.Unlock()
	return c.printer.Sprintf(i18n.KeyResultCount, n)
}
