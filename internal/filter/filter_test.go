package filter

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/meur/duelforge/internal/models"
)

func names(cards []models.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Name)
	}
	return out
}

func sampleCards() []models.Card {
	return []models.Card{
		{Name: "Pot of Greed", Type: "Spell Card", Race: "Normal"},
		{Name: "Gemini Elf", Type: "Normal Monster", Level: Level(4), Attribute: "EARTH", Race: "Spellcaster"},
		{Name: "Tearlament Scheiren", Type: "Effect Monster", Level: Level(4), Attribute: "WATER", Race: "Aqua",
			Banlist: models.BanRecords{{Format: models.FormatTCG, Status: "Banned"}}},
		{Name: "Accesscode Talker", Type: "Link Monster", Attribute: "DARK", Race: "Cyberse"},
		{Name: "Solemn Judgment", Type: "Trap Card", Race: "Counter",
			Banlist: models.BanRecords{{Format: models.FormatOCG, Status: "Limited"}}},
	}
}

func TestApplyExamples(t *testing.T) {
	cards := []models.Card{
		{Name: "CardA", Type: "Spell Card"},
		{Name: "CardB", Type: "Normal Monster", Level: Level(4)},
	}

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"type monster", Criteria{Type: "Monster"}, []string{"CardB"}},
		{"level 4", Criteria{Level: Level(4)}, []string{"CardB"}},
		{"type spell", Criteria{Type: "Spell"}, []string{"CardA"}},
		{"no criteria", Criteria{}, []string{"CardA", "CardB"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Apply(cards, tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplySingleCriterionIsSubset(t *testing.T) {
	cards := sampleCards()
	criteria := []Criteria{
		{Type: "Monster"},
		{Attribute: "DARK"},
		{Level: Level(4)},
		{Race: "Aqua"},
		{Banlist: models.FormatTCG},
		{Banlist: models.FormatOCG},
	}

	for _, c := range criteria {
		got := Apply(cards, c)
		// Order-preserving subsequence of the input.
		i := 0
		for _, g := range got {
			for i < len(cards) && cards[i].Name != g.Name {
				i++
			}
			if i == len(cards) {
				t.Fatalf("%+v: %q is not an in-order element of the input", c, g.Name)
			}
			i++
			if !c.Match(g) {
				t.Fatalf("%+v: %q does not satisfy the criterion", c, g.Name)
			}
		}
	}
}

func TestApplyMissingFieldFails(t *testing.T) {
	cards := sampleCards()

	// Spells, traps and link monsters have no level.
	got := names(Apply(cards, Criteria{Level: Level(4)}))
	want := []string{"Gemini Elf", "Tearlament Scheiren"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("level filter: got %v, want %v", got, want)
	}

	got = names(Apply(cards, Criteria{Banlist: models.FormatTCG}))
	if !reflect.DeepEqual(got, []string{"Tearlament Scheiren"}) {
		t.Fatalf("banlist filter: got %v", got)
	}
}

func TestApplyCombinesWithAnd(t *testing.T) {
	got := names(Apply(sampleCards(), Criteria{Type: "Monster", Level: Level(4), Attribute: "WATER"}))
	if !reflect.DeepEqual(got, []string{"Tearlament Scheiren"}) {
		t.Fatalf("got %v", got)
	}
}

func TestApplyIdempotent(t *testing.T) {
	cards := sampleCards()
	c := Criteria{Type: "Monster"}
	once := Apply(cards, c)
	twice := Apply(once, c)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second application changed the result: %v vs %v", names(once), names(twice))
	}
	if !reflect.DeepEqual(Apply(cards, c), once) {
		t.Fatal("same input and criteria gave a different result")
	}
}

func TestApplyResetRestoresInput(t *testing.T) {
	cards := sampleCards()
	_ = Apply(cards, Criteria{Race: "Aqua"})
	got := Apply(cards, Criteria{})
	if !reflect.DeepEqual(got, cards) {
		t.Fatalf("reset: got %v, want %v", names(got), names(cards))
	}
}

func TestFromQuery(t *testing.T) {
	q := url.Values{"type": {"Monster"}, "level": {"4"}, "banlist": {"ocg"}}
	c, err := FromQuery(q)
	if err != nil {
		t.Fatalf("FromQuery: %v", err)
	}
	if c.Type != "Monster" || c.Level == nil || *c.Level != 4 || c.Banlist != models.FormatOCG {
		t.Fatalf("unexpected criteria %+v", c)
	}
	if !reflect.DeepEqual(c.Query(), url.Values{"type": {"Monster"}, "level": {"4"}, "banlist": {"OCG"}}) {
		t.Fatalf("unexpected query %v", c.Query())
	}

	if _, err := FromQuery(url.Values{"level": {"four"}}); err == nil {
		t.Fatal("expected error for non-numeric level")
	}
	if _, err := FromQuery(url.Values{"banlist": {"goat"}}); !errors.Is(err, models.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}

	c, err = FromQuery(url.Values{})
	if err != nil || !c.IsZero() {
		t.Fatalf("empty query should give zero criteria, got %+v, %v", c, err)
	}
}
