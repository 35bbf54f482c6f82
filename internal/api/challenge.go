package api

import (
	"net/http"

	"github.com/meur/duelforge/internal/challenge"
)

// handleChallenge returns a random challenge. Upstream failures fall back to
// the local table, so only a bad category is an error.
func (s *Server) handleChallenge(w http.ResponseWriter, r *http.Request) {
	category, err := challenge.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondData(w, s.challenges.Get(r.Context(), category))
}
