package challenge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned for a category name outside the closed set.
var ErrUnknownCategory = errors.New("unknown challenge category")

// Category is an activity type. The zero value Any means "no filter".
type Category int

const (
	Any Category = iota

	// Bored API types
	Education
	Recreational
	Social
	DIY
	Charity
	Cooking
	Relaxation
	Music
	Busywork

	// Extra types with their own label
	Sport
	Reading
	Travel
	Health
	Photography
	Painting
	Writing
	Gaming
	Gardening
	Dancing
	Volunteering
	Crafting
	Movie
	Coding
	Learning

	// Local-only buckets
	Esports
	Tech
	Anime
	Cyber
	Retro
	VR

	numCategories
)

type categoryInfo struct {
	name  string
	label string
	emoji string
}

// Indexed by Category; the array length makes a missing row a compile error.
var categoryTable = [numCategories]categoryInfo{
	Any:          {"", "Any", "⭐"},
	Education:    {"education", "Education", "📚"},
	Recreational: {"recreational", "Recreational", "🎮"},
	Social:       {"social", "Social", "👥"},
	DIY:          {"diy", "DIY", "🛠️"},
	Charity:      {"charity", "Charity", "❤️"},
	Cooking:      {"cooking", "Cooking", "👨‍🍳"},
	Relaxation:   {"relaxation", "Relaxation", "🧘"},
	Music:        {"music", "Music", "🎵"},
	Busywork:     {"busywork", "Busywork", "📋"},
	Sport:        {"sport", "Sport", "⚽"},
	Reading:      {"reading", "Reading", "📖"},
	Travel:       {"travel", "Travel", "✈️"},
	Health:       {"health", "Health", "💪"},
	Photography:  {"photography", "Photography", "📷"},
	Painting:     {"painting", "Painting", "🎨"},
	Writing:      {"writing", "Writing", "✍️"},
	Gaming:       {"gaming", "Gaming", "🕹️"},
	Gardening:    {"gardening", "Gardening", "🌱"},
	Dancing:      {"dancing", "Dancing", "💃"},
	Volunteering: {"volunteering", "Volunteering", "🤝"},
	Crafting:     {"crafting", "Crafting", "✂️"},
	Movie:        {"movie", "Movies", "🎬"},
	Coding:       {"coding", "Coding", "💻"},
	Learning:     {"learning", "Learning", "🧠"},
	Esports:      {"esports", "Esports", "🏆"},
	Tech:         {"tech", "Tech", "🖥️"},
	Anime:        {"anime", "Anime", "🍥"},
	Cyber:        {"cyber", "Cybersecurity", "🔐"},
	Retro:        {"retro", "Retro", "👾"},
	VR:           {"vr", "Virtual reality", "🥽"},
}

// Categories returns every concrete category (Any excluded) in declaration order.
func Categories() []Category {
	out := make([]Category, 0, numCategories-1)
	for c := Any + 1; c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCategory maps a wire name to a Category. The empty string is Any.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c := Any; c < numCategories; c++ {
		if categoryTable[c].name == name {
			return c, nil
		}
	}
	return Any, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func (c Category) valid() bool {
	return c >= Any && c < numCategories
}

func (c Category) info() categoryInfo {
	if !c.valid() {
		return categoryInfo{name: fmt.Sprintf("category(%d)", int(c)), label: "?", emoji: "⭐"}
	}
	return categoryTable[c]
}

// String returns the wire name.
func (c Category) String() string { return c.info().name }

// Label returns the English display label.
func (c Category) Label() string { return c.info().label }

// Emoji returns the display emoji.
func (c Category) Emoji() string { return c.info().emoji }

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(categoryTable[c].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
