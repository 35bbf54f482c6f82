package models

// BanStatus is how many copies of a card a deck may hold
type BanStatus string

const (
	StatusForbidden   BanStatus = "Forbidden"
	StatusLimited     BanStatus = "Limited"
	StatusSemiLimited BanStatus = "Semi-Limited"
)

// Copies returns the maximum number of copies allowed for the status.
func (s BanStatus) Copies() int {
	switch s {
	case StatusForbidden:
		return 0
	case StatusLimited:
		return 1
	case StatusSemiLimited:
		return 2
	default:
		return 3
	}
}

// NormalizeBanStatus maps the card database wording ("Banned") onto BanStatus.
func NormalizeBanStatus(s string) BanStatus {
	switch s {
	case "Banned", "Forbidden":
		return StatusForbidden
	case "Limited":
		return StatusLimited
	case "Semi-Limited":
		return StatusSemiLimited
	default:
		return BanStatus(s)
	}
}

// Banlist is one dated banlist for a format
type Banlist struct {
	ID     string       `json:"id"`
	Format Format       `json:"format"`
	Name   string       `json:"banlist_name"`
	Date   string       `json:"banlist_date"`
	Cards  []BannedCard `json:"banned_cards"`
}

// BannedCard is a single entry of a banlist
type BannedCard struct {
	CardName string    `json:"card_name"`
	CardID   int       `json:"card_id"`
	Status   BanStatus `json:"ban_status"`
}

// LatestPerFormat keeps the first list seen for each format. lists must be
// ordered newest first.
func LatestPerFormat(lists []Banlist) []Banlist {
	seen := map[Format]bool{}
	out := make([]Banlist, 0, len(lists))
	for _, b := range lists {
		if seen[b.Format] {
			continue
		}
		seen[b.Format] = true
		out = append(out, b)
	}
	return out
}
