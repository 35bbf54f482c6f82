package models

import "strings"

// Deck is a tournament-placing deck list
type Deck struct {
	ID         string   `json:"id"`
	Name       string   `json:"deck_name"`
	Archetype  string   `json:"deck_archtype"`
	Tournament string   `json:"tournament"`
	Date       string   `json:"date"` // YYYY-MM-DD
	Placement  string   `json:"placement"`
	Player     string   `json:"player"`
	MainCards  []string `json:"main_cards"`
	ExtraCards []string `json:"extra_cards"`
	SideCards  []string `json:"side_cards"`
}

// Contains reports whether any card in the main, extra or side deck
// contains name as a case-insensitive substring.
func (d Deck) Contains(name string) bool {
	needle := strings.ToLower(name)
	for _, part := range [][]string{d.MainCards, d.ExtraCards, d.SideCards} {
		for _, card := range part {
			if strings.Contains(strings.ToLower(card), needle) {
				return true
			}
		}
	}
	return false
}
