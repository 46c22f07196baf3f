// Package pipeline orchestrates deck generation: queued jobs move through
// generating and assembling phases on a bounded worker pool, with in-memory
// TTL-evicted stores for jobs, parsed documents and finished decks.
package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/genai"
)

// JobStatus represents the state of a deck generation job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusGenerating JobStatus = "generating"
	StatusAssembling JobStatus = "assembling"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the state of a single deck generation request.
type Job struct {
	mu sync.Mutex

	ID     string `json:"job_id"`
	DeckID string `json:"deck_id,omitempty"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	DocumentIDs []string `json:"document_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	options genai.GenerateOptions
	style   *deck.BrandStyle
	errors  []string
}

// NewJob builds a queued job for the given source documents.
func NewJob(id string, docIDs []string, opts genai.GenerateOptions, style *deck.BrandStyle) *Job {
	now := time.Now()
	return &Job{
		ID:          id,
		Status:      StatusQueued,
		Phase:       "queued",
		DocumentIDs: append([]string(nil), docIDs...),
		CreatedAt:   now,
		UpdatedAt:   now,
		options:     opts,
		style:       style,
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// SetDeckID records the finished deck's id.
func (j *Job) SetDeckID(id string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.DeckID = id
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string    `json:"job_id"`
	DeckID      string    `json:"deck_id,omitempty"`
	Status      JobStatus `json:"status"`
	Phase       string    `json:"phase"`
	DocumentIDs []string  `json:"document_ids"`
	Errors      []string  `json:"errors"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		DeckID:      j.DeckID,
		Status:      j.Status,
		Phase:       j.Phase,
		DocumentIDs: append([]string(nil), j.DocumentIDs...),
		Errors:      append([]string(nil), errs...),
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
