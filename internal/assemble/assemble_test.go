package assemble

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/document"
)

func TestDeckAssembly(t *testing.T) {
	raw := []RawSlide{
		{Type: "title", Title: "**Big** Launch", Subtitle: "Q3", Order: 42},
		{Type: "made-up-type", Title: "Second", Content: []RawBlock{
			{Type: "bullets", Data: json.RawMessage(`{"items":[{"text":"*emphasized* point"}]}`)},
		}, Order: 7},
	}

	d, err := Deck("My Deck", raw, nil, []string{"doc-1", "doc-2"})
	if err != nil {
		t.Fatalf("Deck: %v", err)
	}

	if d.ID == "" {
		t.Error("deck id not stamped")
	}
	if d.CreatedAt.IsZero() {
		t.Error("createdAt not stamped")
	}
	if len(d.SourceDocuments) != 2 || d.SourceDocuments[0] != "doc-1" {
		t.Errorf("sourceDocuments = %v", d.SourceDocuments)
	}

	// Orders are overwritten regardless of generator values.
	for i, s := range d.Slides {
		if s.Order != i+1 {
			t.Errorf("slide %d order = %d, want %d", i, s.Order, i+1)
		}
	}

	// Markdown is normalized away.
	if d.Slides[0].Title != "Big Launch" {
		t.Errorf("title = %q, want Big Launch", d.Slides[0].Title)
	}
	if got := d.Slides[1].Content[0].Bullets.Items[0].Text; got != "emphasized point" {
		t.Errorf("bullet text = %q, want emphasized point", got)
	}

	// Unknown slide type substitutes content.
	if d.Slides[1].Type != deck.SlideContent {
		t.Errorf("slide type = %q, want content", d.Slides[1].Type)
	}

	// No caller style resolves to exactly the default.
	if d.Style.PrimaryColor != "#003366" || d.Style.FontFamily.Heading != "Georgia" {
		t.Errorf("style = %+v, want default", d.Style)
	}
}

func TestDeckEmptyTitleFails(t *testing.T) {
	raw := []RawSlide{
		{Type: "title", Title: "Fine"},
		{Type: "content", Title: "   "},
	}
	_, err := Deck("x", raw, nil, nil)
	if err == nil {
		t.Fatal("expected assembly failure for untitled slide")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want *ValidationError", err)
	}
	if verr.Slide != 2 {
		t.Errorf("failing slide = %d, want 2", verr.Slide)
	}
}

func TestDeckNoSlidesFails(t *testing.T) {
	if _, err := Deck("x", nil, nil, nil); err == nil {
		t.Fatal("expected error for empty slide list")
	}
}

func TestDeckMalformedBlockFails(t *testing.T) {
	raw := []RawSlide{
		{Type: "content", Title: "Broken", Content: []RawBlock{
			{Type: "table", Data: json.RawMessage(`{"headers":"not-an-array"}`)},
		}},
	}
	if _, err := Deck("x", raw, nil, nil); err == nil {
		t.Fatal("expected error for malformed block payload")
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain passthrough", "no markdown here", "no markdown here"},
		{"bold stripped", "**bold** statement", "bold statement"},
		{"inline code stripped", "run `go build` now", "run go build now"},
		{"heading stripped", "# Title\n\nBody", "Title\nBody"},
		{"trimmed", "  spaced  ", "spaced"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSuggestSlideCount(t *testing.T) {
	doc := func(chars, sections int) *document.Parsed {
		d := &document.Parsed{Text: string(make([]byte, chars))}
		d.Sections = make([]document.Section, sections)
		return d
	}

	tests := []struct {
		name string
		docs []*document.Parsed
		want int
	}{
		{"empty clamps to minimum", nil, 5},
		{"small doc", []*document.Parsed{doc(1000, 1)}, 6},
		{"medium doc adds agenda", []*document.Parsed{doc(4000, 3)}, 8},
		{"large doc clamps to maximum", []*document.Parsed{doc(20000, 20)}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestSlideCount(tt.docs); got != tt.want {
				t.Errorf("SuggestSlideCount = %d, want %d", got, tt.want)
			}
		})
	}
}
