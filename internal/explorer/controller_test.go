package explorer

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/meur/duelforge/internal/filter"
	"github.com/meur/duelforge/internal/models"
)

type fakeSource struct {
	mu       sync.Mutex
	byName   map[string][]models.Card
	err      error
	gates    map[string]chan struct{}
	listArgs [2]int
}

func (f *fakeSource) wait(key string) {
	f.mu.Lock()
	gate := f.gates[key]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (f *fakeSource) SearchCards(ctx context.Context, name string) ([]models.Card, error) {
	f.wait(name)
	if f.err != nil {
		return nil, f.err
	}
	return f.byName[name], nil
}

func (f *fakeSource) SearchArchetype(ctx context.Context, archetype string) ([]models.Card, error) {
	return f.SearchCards(ctx, "archetype:"+archetype)
}

func (f *fakeSource) ListCards(ctx context.Context, num, offset int) ([]models.Card, error) {
	f.mu.Lock()
	f.listArgs = [2]int{num, offset}
	f.mu.Unlock()
	return f.SearchCards(ctx, "")
}

var (
	blueEyes = models.Card{ID: 1, Name: "Blue-Eyes White Dragon", Type: "Normal Monster", Attribute: "LIGHT", Level: filter.Level(8), Race: "Dragon"}
	redEyes  = models.Card{ID: 2, Name: "Red-Eyes Black Dragon", Type: "Normal Monster", Attribute: "DARK", Level: filter.Level(7), Race: "Dragon"}
	potOfG   = models.Card{ID: 3, Name: "Pot of Greed", Type: "Spell Card", Race: "Normal",
		Banlist: models.BanRecords{{Format: models.FormatTCG, Status: "Banned"}}}
)

func TestSearchAndFilter(t *testing.T) {
	src := &fakeSource{byName: map[string][]models.Card{"dragon": {blueEyes, redEyes}}}
	c := New(src, "en")

	if err := c.Search(context.Background(), "  dragon "); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got := len(c.Cards()); got != 2 {
		t.Fatalf("expected 2 cards, got %d", got)
	}
	if st := c.Status(); st.Kind != StatusInfo || st.Message != "2 cards found" {
		t.Fatalf("unexpected status %+v", st)
	}

	c.SetCriteria(filter.Criteria{Attribute: "LIGHT"})
	cards := c.Cards()
	if len(cards) != 1 || cards[0].ID != 1 {
		t.Fatalf("expected only Blue-Eyes, got %+v", cards)
	}
	if c.ResultCount() != "1 card found" {
		t.Fatalf("unexpected count %q", c.ResultCount())
	}
	if len(c.All()) != 2 {
		t.Fatalf("filtering must not shrink the working set")
	}

	c.Reset()
	if len(c.Cards()) != 2 || !c.Criteria().IsZero() {
		t.Fatalf("reset should restore the working set")
	}
}

func TestCriteriaSurviveNewSearch(t *testing.T) {
	src := &fakeSource{byName: map[string][]models.Card{
		"dragon": {blueEyes, redEyes},
		"pot":    {potOfG},
	}}
	c := New(src, "en")
	c.SetCriteria(filter.Criteria{Type: "Monster"})

	c.Search(context.Background(), "dragon")
	if len(c.Cards()) != 2 {
		t.Fatalf("expected 2 monsters")
	}
	c.Search(context.Background(), "pot")
	if len(c.Cards()) != 0 || len(c.All()) != 1 {
		t.Fatalf("criteria should apply to the new working set")
	}
}

func TestEmptyQueryKeepsState(t *testing.T) {
	src := &fakeSource{byName: map[string][]models.Card{"dragon": {blueEyes}}}
	c := New(src, "fr")
	c.Search(context.Background(), "dragon")

	if err := c.Search(context.Background(), "   "); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
	if len(c.All()) != 1 {
		t.Fatalf("working set should be untouched")
	}
	if st := c.Status(); st.Kind != StatusError || st.Message != "Veuillez entrer un nom de carte" {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestNoResults(t *testing.T) {
	src := &fakeSource{byName: map[string][]models.Card{"dragon": {blueEyes}}}
	c := New(src, "en")
	c.Search(context.Background(), "dragon")

	if err := c.Search(context.Background(), "zzz"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(c.All()) != 0 || len(c.Cards()) != 0 {
		t.Fatalf("expected an empty working set")
	}
	if st := c.Status(); st.Message != `No cards found for "zzz"` {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestErrorClearsWorkingSet(t *testing.T) {
	src := &fakeSource{byName: map[string][]models.Card{"dragon": {blueEyes}}}
	c := New(src, "en")
	c.Search(context.Background(), "dragon")

	src.err = errors.New("connection refused")
	if err := c.Search(context.Background(), "dragon"); err == nil {
		t.Fatal("expected an error")
	}
	if len(c.All()) != 0 {
		t.Fatalf("error should clear the working set")
	}
	if st := c.Status(); st.Kind != StatusError || st.Message != "Search failed: connection refused" {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestLoadDefaultAndArchetype(t *testing.T) {
	src := &fakeSource{byName: map[string][]models.Card{
		"":                   {blueEyes, redEyes, potOfG},
		"archetype:Blue-Eyes": {blueEyes},
	}}
	c := New(src, "en")

	if err := c.LoadDefault(context.Background()); err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if src.listArgs != [2]int{DefaultListSize, 0} {
		t.Fatalf("unexpected list args %v", src.listArgs)
	}
	if len(c.All()) != 3 {
		t.Fatalf("expected 3 cards")
	}

	if err := c.SearchArchetype(context.Background(), "Blue-Eyes"); err != nil {
		t.Fatalf("SearchArchetype: %v", err)
	}
	if cards := c.Cards(); len(cards) != 1 || cards[0].ID != 1 {
		t.Fatalf("unexpected archetype cards %+v", cards)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	slow := make(chan struct{})
	src := &fakeSource{
		byName: map[string][]models.Card{
			"slow": {redEyes},
			"fast": {blueEyes},
		},
		gates: map[string]chan struct{}{"slow": slow},
	}
	c := New(src, "en")

	done := make(chan error, 1)
	go func() { done <- c.Search(context.Background(), "slow") }()

	// Wait until the slow request has taken its sequence number.
	for {
		c.mu.Lock()
		issued := c.seq
		c.mu.Unlock()
		if issued == 1 {
			break
		}
		runtime.Gosched()
	}

	if err := c.Search(context.Background(), "fast"); err != nil {
		t.Fatalf("fast search: %v", err)
	}
	close(slow)

	if err := <-done; !errors.Is(err, ErrStale) {
		t.Fatalf("expected ErrStale, got %v", err)
	}
	cards := c.All()
	if len(cards) != 1 || cards[0].ID != blueEyes.ID {
		t.Fatalf("latest request must win, got %+v", cards)
	}
}
