// Package filter narrows an in-memory card list by independent criteria.
package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/meur/duelforge/internal/models"
)

// Criteria holds the active card filters. Zero-valued fields impose no
// restriction.
type Criteria struct {
	Type      string // substring of Card.Type, e.g. "Monster"
	Attribute string
	Level     *int
	Race      string
	Banlist   models.Format
}

// IsZero reports whether no filter is set.
func (c Criteria) IsZero() bool {
	return c.Type == "" && c.Attribute == "" && c.Level == nil && c.Race == "" && c.Banlist == ""
}

// Match reports whether card satisfies every set criterion.
func (c Criteria) Match(card models.Card) bool {
	if c.Type != "" && !strings.Contains(card.Type, c.Type) {
		return false
	}
	if c.Attribute != "" && card.Attribute != c.Attribute {
		return false
	}
	if c.Level != nil && (card.Level == nil || *card.Level != *c.Level) {
		return false
	}
	if c.Race != "" && card.Race != c.Race {
		return false
	}
	if c.Banlist != "" {
		if _, ok := card.Banlist.For(c.Banlist); !ok {
			return false
		}
	}
	return true
}

// Apply returns the cards matching c, in input order. With zero criteria the
// input slice itself is returned.
func Apply(cards []models.Card, c Criteria) []models.Card {
	if c.IsZero() {
		return cards
	}
	out := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		if c.Match(card) {
			out = append(out, card)
		}
	}
	return out
}

// Level is a convenience for building Criteria literals.
func Level(n int) *int {
	return &n
}

// FromQuery reads criteria from the type, attribute, level, race and
// banlist query parameters.
func FromQuery(q url.Values) (Criteria, error) {
	c := Criteria{
		Type:      strings.TrimSpace(q.Get("type")),
		Attribute: strings.TrimSpace(q.Get("attribute")),
		Race:      strings.TrimSpace(q.Get("race")),
	}

	if raw := strings.TrimSpace(q.Get("level")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid level %q", raw)
		}
		c.Level = &n
	}

	if raw := strings.TrimSpace(q.Get("banlist")); raw != "" {
		f, err := models.ParseFormat(raw)
		if err != nil {
			return Criteria{}, err
		}
		c.Banlist = f
	}

	return c, nil
}

// Query encodes c back into query parameters, the inverse of FromQuery.
func (c Criteria) Query() url.Values {
	q := url.Values{}
	if c.Type != "" {
		q.Set("type", c.Type)
	}
	if c.Attribute != "" {
		q.Set("attribute", c.Attribute)
	}
	if c.Level != nil {
		q.Set("level", strconv.Itoa(*c.Level))
	}
	if c.Race != "" {
		q.Set("race", c.Race)
	}
	if c.Banlist != "" {
		q.Set("banlist", string(c.Banlist))
	}
	return q
}
