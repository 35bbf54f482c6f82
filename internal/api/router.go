package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/meur/duelforge/internal/challenge"
	"github.com/meur/duelforge/internal/models"
)

// CardDB is the upstream card database.
type CardDB interface {
	SearchCards(ctx context.Context, name string) ([]models.Card, error)
	SearchArchetype(ctx context.Context, archetype string) ([]models.Card, error)
	ListCards(ctx context.Context, num, offset int) ([]models.Card, error)
	CardByID(ctx context.Context, id int) (*models.Card, error)
	RandomCard(ctx context.Context) (*models.Card, error)
	Archetypes(ctx context.Context) ([]string, error)
}

// Store holds decks and banlists.
type Store interface {
	GetDecks() ([]models.Deck, error)
	GetDecksByCard(cardName string) ([]models.Deck, error)
	GetBanlists(format models.Format) ([]models.Banlist, error)
}

// ChallengePicker returns a challenge, never failing.
type ChallengePicker interface {
	Get(ctx context.Context, category challenge.Category) challenge.Challenge
}

// Options tunes the HTTP layer.
type Options struct {
	AllowedOrigins []string
}

// Server holds the HTTP server dependencies
type Server struct {
	store      Store
	cards      CardDB
	challenges ChallengePicker
	router     chi.Router
}

// New creates a new API server
func New(store Store, cards CardDB, challenges ChallengePicker, opts Options) *Server {
	s := &Server{
		store:      store,
		cards:      cards,
		challenges: challenges,
		router:     chi.NewRouter(),
	}

	s.setupMiddleware(opts)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Router exposes the chi router so callers can mount extra routes.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) setupMiddleware(opts Options) {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*"}
	}

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Cards
		r.Get("/search-cards", s.handleSearchCards)
		r.Get("/card-info", s.handleCardInfo)
		r.Get("/cards", s.handleListCards)
		r.Get("/random-card", s.handleRandomCard)
		r.Get("/archetypes", s.handleArchetypes)

		// Decks and banlists
		r.Get("/banlist", s.handleBanlists)
		r.Get("/top-decks", s.handleTopDecks)
		r.Get("/decks-by-card", s.handleDecksByCard)

		// Challenges
		r.Get("/challenge", s.handleChallenge)
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondData(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, envelope{Status: "success", Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Status: "error", Error: message})
}
