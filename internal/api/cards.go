package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/meur/duelforge/internal/filter"
	"github.com/meur/duelforge/internal/models"
	"github.com/meur/duelforge/internal/ygoprodeck"
)

// Listing bounds for /api/cards
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// handleSearchCards searches by name or archetype and applies the optional
// type/attribute/level/race/banlist filters.
func (s *Server) handleSearchCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := strings.TrimSpace(q.Get("q"))
	archetype := strings.TrimSpace(q.Get("archtype"))
	if archetype == "" {
		archetype = strings.TrimSpace(q.Get("archetype"))
	}
	if name == "" && archetype == "" {
		respondError(w, http.StatusBadRequest, "Parameter 'q' or 'archtype' is required")
		return
	}

	crit, err := filter.FromQuery(q)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var cards []models.Card
	if name != "" {
		cards, err = s.cards.SearchCards(r.Context(), name)
	} else {
		cards, err = s.cards.SearchArchetype(r.Context(), archetype)
	}
	if err != nil {
		log.Printf("search-cards: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to search cards")
		return
	}

	respondData(w, filter.Apply(cards, crit))
}

// handleCardInfo returns a single card by ID
func (s *Server) handleCardInfo(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "Parameter 'id' is required")
		return
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Parameter 'id' must be a number")
		return
	}

	card, err := s.cards.CardByID(r.Context(), id)
	if errors.Is(err, ygoprodeck.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Card not found")
		return
	}
	if err != nil {
		log.Printf("card-info %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch card")
		return
	}

	respondData(w, card)
}

// handleListCards returns a page of the card database
func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	num, err := intParam(r, "num", defaultPageSize)
	if err != nil || num < 1 {
		respondError(w, http.StatusBadRequest, "Parameter 'num' must be a positive number")
		return
	}
	if num > maxPageSize {
		num = maxPageSize
	}
	offset, err := intParam(r, "offset", 0)
	if err != nil || offset < 0 {
		respondError(w, http.StatusBadRequest, "Parameter 'offset' must be zero or more")
		return
	}

	cards, err := s.cards.ListCards(r.Context(), num, offset)
	if err != nil {
		log.Printf("cards: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list cards")
		return
	}

	respondData(w, cards)
}

// handleRandomCard returns one random card
func (s *Server) handleRandomCard(w http.ResponseWriter, r *http.Request) {
	card, err := s.cards.RandomCard(r.Context())
	if errors.Is(err, ygoprodeck.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Card not found")
		return
	}
	if err != nil {
		log.Printf("random-card: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch card")
		return
	}

	respondData(w, card)
}

// handleArchetypes returns every archetype name
func (s *Server) handleArchetypes(w http.ResponseWriter, r *http.Request) {
	names, err := s.cards.Archetypes(r.Context())
	if err != nil {
		log.Printf("archetypes: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch archetypes")
		return
	}

	respondData(w, names)
}

func intParam(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
