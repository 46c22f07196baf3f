package document

import "time"

// Parsed is the normalized output of decoding an uploaded document,
// identical regardless of source format.
type Parsed struct {
	Text     string    `json:"text"`
	Metadata Metadata  `json:"metadata"`
	Sections []Section `json:"sections"`
}

// Metadata holds best-effort document properties. Every field may be absent.
type Metadata struct {
	PageCount int        `json:"pageCount,omitempty"`
	Title     string     `json:"title,omitempty"`
	Author    string     `json:"author,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Section is a titled span of document text, in document order.
// Created once during decoding, immutable afterward.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"` // Header line stripped.
	Level   int    `json:"level"`   // 1 = top-level, 2+ = subsection.
}
