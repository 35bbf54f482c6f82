package ygoprodeck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/meur/duelforge/internal/models"
)

const noMatchBody = `{"error":"No card matching your query was found in the database."}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client())
}

func TestSearchCards(t *testing.T) {
	var gotQuery string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cardinfo.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("fname")
		w.Write([]byte(`{"data":[
			{"id":1,"name":"Dark Magician","type":"Normal Monster","level":7,"atk":2500,"def":2100,"attribute":"DARK","race":"Spellcaster"},
			{"id":2,"name":"Dark Magic Attack","type":"Spell Card","race":"Normal"}
		]}`))
	})

	cards, err := c.SearchCards(context.Background(), "dark magic")
	if err != nil {
		t.Fatalf("SearchCards: %v", err)
	}
	if gotQuery != "dark magic" {
		t.Fatalf("expected fname=dark magic, got %q", gotQuery)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Level == nil || *cards[0].Level != 7 || !cards[0].HasStats() {
		t.Fatalf("unexpected first card %+v", cards[0])
	}
	if cards[1].Level != nil {
		t.Fatalf("spell should have no level")
	}
}

func TestSearchCardsNoMatch(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(noMatchBody))
	})

	cards, err := c.SearchCards(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("SearchCards: %v", err)
	}
	if cards == nil || len(cards) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", cards)
	}
}

func TestSearchCardsServerError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	if _, err := c.SearchCards(context.Background(), "x"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSearchCardsMalformed(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})
	if _, err := c.SearchCards(context.Background(), "x"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCardByIDNotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(noMatchBody))
	})
	if _, err := c.CardByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAndBanlistQueries(t *testing.T) {
	var queries []string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		w.Write([]byte(`{"data":[]}`))
	})

	if _, err := c.ListCards(context.Background(), 20, 40); err != nil {
		t.Fatal(err)
	}
	if _, err := c.BanlistCards(context.Background(), models.FormatOCG); err != nil {
		t.Fatal(err)
	}
	want := []string{"num=20&offset=40", "banlist=ocg"}
	if !reflect.DeepEqual(queries, want) {
		t.Fatalf("got queries %v, want %v", queries, want)
	}
}

func TestArchetypes(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/archetypes.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"archetype_name":"Swordsoul"},{"archetype_name":"Tearlament"}]`))
	})

	got, err := c.Archetypes(context.Background())
	if err != nil {
		t.Fatalf("Archetypes: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Swordsoul", "Tearlament"}) {
		t.Fatalf("got %v", got)
	}
}
