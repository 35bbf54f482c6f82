package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/meur/duelforge/internal/models"
)

// handleBanlists returns stored banlists, optionally for one format
func (s *Server) handleBanlists(w http.ResponseWriter, r *http.Request) {
	var format models.Format
	if raw := r.URL.Query().Get("format"); raw != "" {
		f, err := models.ParseFormat(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		format = f
	}

	lists, err := s.store.GetBanlists(format)
	if err != nil {
		log.Printf("banlist: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch banlists")
		return
	}

	respondData(w, lists)
}

// handleTopDecks returns all stored decks
func (s *Server) handleTopDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.store.GetDecks()
	if err != nil {
		log.Printf("top-decks: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch decks")
		return
	}

	respondData(w, decks)
}

// handleDecksByCard returns the decks that run a card
func (s *Server) handleDecksByCard(w http.ResponseWriter, r *http.Request) {
	card := strings.TrimSpace(r.URL.Query().Get("card"))
	if card == "" {
		respondError(w, http.StatusBadRequest, "Parameter 'card' is required")
		return
	}

	decks, err := s.store.GetDecksByCard(card)
	if err != nil {
		log.Printf("decks-by-card: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch decks")
		return
	}

	respondData(w, decks)
}
