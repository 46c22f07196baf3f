// Package api is the HTTP surface: document uploads, deck generation jobs
// and PPTX export, routed with chi.
package api

import (
	"log/slog"
	"net/http"

	"github.com/deckforge/deckforge/internal/config"
	"github.com/deckforge/deckforge/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for deckforge.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DeckforgeAPIKey, s.log))

		r.Post("/api/documents", s.handleUploadDocument)
		r.Get("/api/documents/{docID}", s.handleGetDocument)

		r.Post("/api/decks", s.handleCreateDeck)
		r.Get("/api/decks/jobs/{jobID}", s.handleJobStatus)
		r.Get("/api/decks/{deckID}", s.handleGetDeck)
		r.Get("/api/decks/{deckID}/export", s.handleExportDeck)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
