package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/genai"
	"github.com/deckforge/deckforge/internal/pipeline"
	"github.com/deckforge/deckforge/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// createDeckRequest is the POST /api/decks body.
type createDeckRequest struct {
	DocumentIDs []string         `json:"document_ids"`
	SlideCount  int              `json:"slide_count,omitempty"`
	FocusAreas  []string         `json:"focus_areas,omitempty"`
	Tone        string           `json:"tone,omitempty"`
	Style       *deck.BrandStyle `json:"style,omitempty"`
}

// handleCreateDeck queues a deck generation job over previously uploaded
// documents and returns a poll URL.
func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.DocumentIDs) == 0 {
		jsonError(w, "document_ids is required", http.StatusBadRequest)
		return
	}

	// Reject unknown documents up front; expiry between submit and worker
	// pickup is still handled by the worker.
	for _, id := range req.DocumentIDs {
		if s.orchestrator.Documents().Get(id) == nil {
			jsonError(w, fmt.Sprintf("document %s not found", id), http.StatusNotFound)
			return
		}
	}

	job := pipeline.NewJob(uuid.NewString(), req.DocumentIDs, genai.GenerateOptions{
		SlideCount: req.SlideCount,
		FocusAreas: req.FocusAreas,
		Tone:       req.Tone,
	}, req.Style)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/decks/jobs/%s", job.ID),
	})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	d := s.orchestrator.Decks().Get(deckID)
	if d == nil {
		jsonError(w, "deck not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// handleExportDeck renders the deck to a PPTX attachment.
func (s *Server) handleExportDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	d := s.orchestrator.Decks().Get(deckID)
	if d == nil {
		jsonError(w, "deck not found", http.StatusNotFound)
		return
	}

	data, err := render.Deck(d)
	if err != nil {
		s.log.Error("deck export failed", "deck_id", deckID, "error", err)
		jsonError(w, "export failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.presentationml.presentation")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pptx"`, exportFilename(d.Title)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Write(data)
}

// exportFilename derives a safe attachment name from the deck title.
func exportFilename(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "presentation"
	}
	if len(out) > 64 {
		out = out[:64]
	}
	return string(out)
}
