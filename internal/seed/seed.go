// Package seed reads the YAML deck and banlist files that populate a fresh
// database.
package seed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/meur/duelforge/internal/models"
)

// DeckFile represents the top-level deck YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Archetype  string      `yaml:"archetype"`
	Tournament string      `yaml:"tournament"`
	Date       string      `yaml:"date"`
	Placement  string      `yaml:"placement"`
	Player     string      `yaml:"player"`
	Main       []CardEntry `yaml:"main"`
	Extra      []CardEntry `yaml:"extra"`
	Side       []CardEntry `yaml:"side"`
}

// CardEntry represents a card and its count in a deck. A missing count
// means one copy.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count *int   `yaml:"count"`
}

// BanlistFile represents the top-level banlist YAML structure.
type BanlistFile struct {
	Banlists []BanlistEntry `yaml:"banlists"`
}

// BanlistEntry is one dated banlist.
type BanlistEntry struct {
	ID     string        `yaml:"id"`
	Format string        `yaml:"format"`
	Name   string        `yaml:"name"`
	Date   string        `yaml:"date"`
	Cards  []BannedEntry `yaml:"cards"`
}

// BannedEntry is a card on a banlist.
type BannedEntry struct {
	Name   string `yaml:"name"`
	ID     int    `yaml:"id"`
	Status string `yaml:"status"`
}

// ParseDeckFile reads and expands a deck YAML file.
func ParseDeckFile(path string) ([]models.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDecks(data)
}

// ParseDecks expands deck YAML into models.Deck values, repeating each card
// Count times.
func ParseDecks(data []byte) ([]models.Deck, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make([]models.Deck, 0, len(df.Decks))
	for i, entry := range df.Decks {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("deck %d: missing name", i+1)
		}
		main, err := expand(entry.Main)
		if err != nil {
			return nil, fmt.Errorf("deck %q main: %w", entry.Name, err)
		}
		extra, err := expand(entry.Extra)
		if err != nil {
			return nil, fmt.Errorf("deck %q extra: %w", entry.Name, err)
		}
		side, err := expand(entry.Side)
		if err != nil {
			return nil, fmt.Errorf("deck %q side: %w", entry.Name, err)
		}
		decks = append(decks, models.Deck{
			ID:         entry.ID,
			Name:       entry.Name,
			Archetype:  entry.Archetype,
			Tournament: entry.Tournament,
			Date:       entry.Date,
			Placement:  entry.Placement,
			Player:     entry.Player,
			MainCards:  main,
			ExtraCards: extra,
			SideCards:  side,
		})
	}
	return decks, nil
}

func expand(entries []CardEntry) ([]string, error) {
	cards := []string{}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("card without a name")
		}
		count := 1
		if e.Count != nil {
			count = *e.Count
		}
		if count < 1 {
			return nil, fmt.Errorf("%s: count must be at least 1, got %d", e.Name, count)
		}
		for i := 0; i < count; i++ {
			cards = append(cards, e.Name)
		}
	}
	return cards, nil
}

// ParseBanlistFile reads a banlist YAML file.
func ParseBanlistFile(path string) ([]models.Banlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBanlists(data)
}

// ParseBanlists converts banlist YAML into models.Banlist values.
func ParseBanlists(data []byte) ([]models.Banlist, error) {
	var bf BanlistFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parse banlist YAML: %w", err)
	}

	lists := make([]models.Banlist, 0, len(bf.Banlists))
	for i, entry := range bf.Banlists {
		format, err := models.ParseFormat(entry.Format)
		if err != nil {
			return nil, fmt.Errorf("banlist %d: %w", i+1, err)
		}
		cards := make([]models.BannedCard, 0, len(entry.Cards))
		for _, c := range entry.Cards {
			status := models.NormalizeBanStatus(c.Status)
			if status.Copies() == 3 {
				return nil, fmt.Errorf("banlist %q: %s: unknown status %q", entry.Name, c.Name, c.Status)
			}
			cards = append(cards, models.BannedCard{CardName: c.Name, CardID: c.ID, Status: status})
		}
		lists = append(lists, models.Banlist{
			ID:     entry.ID,
			Format: format,
			Name:   entry.Name,
			Date:   entry.Date,
			Cards:  cards,
		})
	}
	return lists, nil
}
