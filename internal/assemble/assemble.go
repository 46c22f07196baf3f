// Package assemble builds a canonical GeneratedDeck from generator-produced
// slide records and a partial brand style. Generated content is validated
// and coerced here, never trusted blindly.
package assemble

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/document"
	"github.com/google/uuid"
)

// RawSlide is the loosely-shaped slide record returned by the external
// text-generation collaborator.
type RawSlide struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Content  []RawBlock `json:"content"`
	Notes    string     `json:"notes"`
	Order    int        `json:"order"`
}

// RawBlock is an untyped content block as produced by the generator.
type RawBlock struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ValidationError reports generated content missing a required field or
// shaped incorrectly. The whole assembly fails; nothing is patched with
// placeholder content beyond the documented defaults.
type ValidationError struct {
	Slide  int // 1-based position in the generated sequence
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("slide %d: %s", e.Slide, e.Reason)
}

// Deck assembles a GeneratedDeck: coerces every raw slide into the canonical
// model, renumbers, resolves the style, and stamps identity fields.
func Deck(title string, raw []RawSlide, style *deck.BrandStyle, docIDs []string) (*deck.GeneratedDeck, error) {
	if len(raw) == 0 {
		return nil, &ValidationError{Slide: 0, Reason: "generated deck has no slides"}
	}

	slides := make([]deck.Slide, 0, len(raw))
	for i, rs := range raw {
		slide, err := coerceSlide(rs, i+1)
		if err != nil {
			return nil, err
		}
		slides = append(slides, slide)
	}
	deck.Renumber(slides)

	if strings.TrimSpace(title) == "" {
		title = "Generated Presentation"
	}

	return &deck.GeneratedDeck{
		ID:              uuid.NewString(),
		Title:           PlainText(title),
		Slides:          slides,
		Style:           deck.ResolveStyle(style),
		CreatedAt:       time.Now(),
		SourceDocuments: append([]string(nil), docIDs...),
	}, nil
}

// coerceSlide validates one raw slide. An unknown slide type substitutes
// "content"; an empty title fails the whole assembly.
func coerceSlide(rs RawSlide, pos int) (deck.Slide, error) {
	title := PlainText(strings.TrimSpace(rs.Title))
	if title == "" {
		return deck.Slide{}, &ValidationError{Slide: pos, Reason: "missing title"}
	}

	typ := deck.SlideType(rs.Type)
	if !typ.Valid() {
		typ = deck.SlideContent
	}

	id := rs.ID
	if id == "" {
		id = uuid.NewString()
	}

	blocks := make([]deck.ContentBlock, 0, len(rs.Content))
	for j, rb := range rs.Content {
		block, err := deck.DecodeBlock(deck.BlockType(rb.Type), rb.Data)
		if err != nil {
			return deck.Slide{}, &ValidationError{Slide: pos, Reason: fmt.Sprintf("content block %d: %s", j+1, err)}
		}
		normalizeBlock(&block)
		blocks = append(blocks, block)
	}

	return deck.Slide{
		ID:       id,
		Type:     typ,
		Title:    title,
		Subtitle: PlainText(strings.TrimSpace(rs.Subtitle)),
		Content:  blocks,
		Notes:    PlainText(strings.TrimSpace(rs.Notes)),
	}, nil
}

// normalizeBlock strips markdown noise the model sneaks into text payloads.
func normalizeBlock(b *deck.ContentBlock) {
	switch {
	case b.Text != nil:
		b.Text.Text = PlainText(b.Text.Text)
	case b.Bullets != nil:
		for i := range b.Bullets.Items {
			b.Bullets.Items[i].Text = PlainText(b.Bullets.Items[i].Text)
			for j, sub := range b.Bullets.Items[i].SubItems {
				b.Bullets.Items[i].SubItems[j] = PlainText(sub)
			}
		}
	case b.Quote != nil:
		b.Quote.Text = PlainText(b.Quote.Text)
	}
}

// SuggestSlideCount sizes a generation request from parsed documents:
// base of 3 (title, summary, takeaways), one slide per 1.5 sections, one per
// 2000 chars of content (max 5 extra), plus an agenda slide once the total
// passes 4, clamped to [5, 15]. Guidance for the caller, not a contract the
// assembler enforces.
func SuggestSlideCount(docs []*document.Parsed) int {
	totalChars := 0
	totalSections := 0
	for _, d := range docs {
		totalChars += len(d.Text)
		totalSections += len(d.Sections)
	}

	count := 3
	count += int(math.Ceil(float64(totalSections) / 1.5))
	count += min(int(math.Ceil(float64(totalChars)/2000)), 5)
	if count > 4 {
		count++
	}

	return max(5, min(15, count))
}
