package pipeline

import (
	"sync"
	"time"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/document"
)

// StoredDocument is a parsed upload held for deck generation.
type StoredDocument struct {
	ID          string
	Filename    string
	ContentHash string
	Parsed      *document.Parsed
	StoredAt    time.Time
}

// DocumentStore keeps parsed documents in memory with TTL eviction and
// content-hash dedup: re-uploading identical bytes returns the existing id.
type DocumentStore struct {
	mu     sync.Mutex
	docs   map[string]*StoredDocument
	byHash map[string]string
	ttl    time.Duration
}

func NewDocumentStore(ttl time.Duration) *DocumentStore {
	return &DocumentStore{
		docs:   make(map[string]*StoredDocument),
		byHash: make(map[string]string),
		ttl:    ttl,
	}
}

// Put stores doc unless an identical document already exists; it returns the
// id under which the content is stored and whether it was a duplicate.
func (s *DocumentStore) Put(doc *StoredDocument) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.ContentHash != "" {
		if existing, ok := s.byHash[doc.ContentHash]; ok {
			if _, alive := s.docs[existing]; alive {
				return existing, true
			}
		}
		s.byHash[doc.ContentHash] = doc.ID
	}
	doc.StoredAt = time.Now()
	s.docs[doc.ID] = doc
	return doc.ID, false
}

func (s *DocumentStore) Get(id string) *StoredDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[id]
}

// Cleanup removes expired documents and their hash index entries.
func (s *DocumentStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, doc := range s.docs {
		if now.Sub(doc.StoredAt) > s.ttl {
			delete(s.docs, id)
			if s.byHash[doc.ContentHash] == id {
				delete(s.byHash, doc.ContentHash)
			}
		}
	}
}

// DeckStore keeps finished decks in memory with TTL eviction.
type DeckStore struct {
	mu    sync.Mutex
	decks map[string]*deck.GeneratedDeck
	ttl   time.Duration
	seen  map[string]time.Time
}

func NewDeckStore(ttl time.Duration) *DeckStore {
	return &DeckStore{
		decks: make(map[string]*deck.GeneratedDeck),
		seen:  make(map[string]time.Time),
		ttl:   ttl,
	}
}

func (s *DeckStore) Put(d *deck.GeneratedDeck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks[d.ID] = d
	s.seen[d.ID] = time.Now()
}

func (s *DeckStore) Get(id string) *deck.GeneratedDeck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decks[id]
}

// Cleanup removes expired decks.
func (s *DeckStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, at := range s.seen {
		if now.Sub(at) > s.ttl {
			delete(s.decks, id)
			delete(s.seen, id)
		}
	}
}
