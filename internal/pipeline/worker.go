package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/deckforge/deckforge/internal/assemble"
	"github.com/deckforge/deckforge/internal/document"
	"github.com/deckforge/deckforge/internal/genai"
)

// Worker processes a single deck generation job.
type Worker struct {
	gen   *genai.Client
	docs  *DocumentStore
	decks *DeckStore
	log   *slog.Logger
}

func NewWorker(gen *genai.Client, docs *DocumentStore, decks *DeckStore, log *slog.Logger) *Worker {
	return &Worker{
		gen:   gen,
		docs:  docs,
		decks: decks,
		log:   log,
	}
}

// Process runs the full generation pipeline for a job: combine source
// documents, generate slides (with retry on transient failures), assemble the
// deck and store it. Each job is strictly sequential inside.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	// Phase 1: gather source documents.
	job.SetStatus(StatusGenerating, "gathering")
	docs := make([]*StoredDocument, 0, len(job.DocumentIDs))
	for _, id := range job.DocumentIDs {
		doc := w.docs.Get(id)
		if doc == nil {
			log.Error("document not found", "doc_id", id)
			job.AddError(fmt.Sprintf("document %s not found or expired", id))
			job.SetStatus(StatusFailed, "gathering")
			return
		}
		docs = append(docs, doc)
	}

	combined := combineDocuments(docs)
	if strings.TrimSpace(combined) == "" {
		job.AddError("source documents contain no text")
		job.SetStatus(StatusFailed, "gathering")
		return
	}
	combined = genai.TruncateToBudget(combined, genai.MaxInputTokens)

	opts := job.options
	if opts.SlideCount <= 0 {
		parsed := make([]*document.Parsed, 0, len(docs))
		for _, doc := range docs {
			parsed = append(parsed, doc.Parsed)
		}
		opts.SlideCount = assemble.SuggestSlideCount(parsed)
	}

	// Phase 2: generate slides, retrying transient upstream failures.
	job.SetStatus(StatusGenerating, "generating")
	var gen *genai.SlideGeneration
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		gen, lastErr = w.gen.GenerateSlides(ctx, combined, opts)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable generation error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			job.AddError(ctx.Err().Error())
			job.SetStatus(StatusFailed, "generating")
			return
		}
	}
	if lastErr != nil {
		log.Error("generation failed", "error", lastErr)
		job.AddError(lastErr.Error())
		job.SetStatus(StatusFailed, "generating")
		return
	}
	log.Info("slides generated", "slides", len(gen.Slides))

	// Phase 3: assemble into the canonical deck.
	job.SetStatus(StatusAssembling, "assembling")
	d, err := assemble.Deck(gen.Title, gen.Slides, job.style, job.DocumentIDs)
	if err != nil {
		log.Error("assembly failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "assembling")
		return
	}

	w.decks.Put(d)
	job.SetDeckID(d.ID)
	job.SetStatus(StatusCompleted, "done")
	log.Info("deck assembled", "deck_id", d.ID, "slides", len(d.Slides))
}

// combineDocuments joins document texts with titled separators so the
// generator can attribute content across multiple sources.
func combineDocuments(docs []*StoredDocument) string {
	if len(docs) == 1 {
		return docs[0].Parsed.Text
	}
	var sb strings.Builder
	for _, doc := range docs {
		title := doc.Parsed.Metadata.Title
		if title == "" {
			title = doc.Filename
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "=== %s ===\n\n%s", title, doc.Parsed.Text)
	}
	return sb.String()
}
