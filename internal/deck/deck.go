// Package deck defines the canonical deck/slide/content-block data model
// shared by the generation and render steps. Pure data, except for the one
// centrally-enforced rule: slide order renumbering.
package deck

import (
	"encoding/json"
	"fmt"
	"time"
)

// SlideType is the closed enum of slide layouts.
type SlideType string

const (
	SlideTitle            SlideType = "title"
	SlideExecutiveSummary SlideType = "executive-summary"
	SlideAgenda           SlideType = "agenda"
	SlideSectionHeader    SlideType = "section-header"
	SlideContent          SlideType = "content"
	SlideTwoColumn        SlideType = "two-column"
	SlideChart            SlideType = "chart"
	SlideComparison       SlideType = "comparison"
	SlideTimeline         SlideType = "timeline"
	SlideKeyTakeaways     SlideType = "key-takeaways"
	SlideAppendix         SlideType = "appendix"
)

var slideTypes = map[SlideType]bool{
	SlideTitle: true, SlideExecutiveSummary: true, SlideAgenda: true,
	SlideSectionHeader: true, SlideContent: true, SlideTwoColumn: true,
	SlideChart: true, SlideComparison: true, SlideTimeline: true,
	SlideKeyTakeaways: true, SlideAppendix: true,
}

// Valid reports whether t is a member of the closed enum.
func (t SlideType) Valid() bool { return slideTypes[t] }

// BlockType tags a content block variant.
type BlockType string

const (
	BlockText         BlockType = "text"
	BlockBullets      BlockType = "bullets"
	BlockNumberedList BlockType = "numbered-list"
	BlockChart        BlockType = "chart"
	BlockTable        BlockType = "table"
	BlockImage        BlockType = "image"
	BlockQuote        BlockType = "quote"
)

// Slide is one slide of a deck.
type Slide struct {
	ID       string         `json:"id"`
	Type     SlideType      `json:"type"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle,omitempty"`
	Content  []ContentBlock `json:"content"`
	Notes    string         `json:"notes,omitempty"`
	Order    int            `json:"order"`
}

// ContentBlock is a strict tagged union keyed by Type. Exactly the variant
// matching Type is populated; image blocks carry no payload (reserved).
type ContentBlock struct {
	Type    BlockType
	Text    *TextContent
	Bullets *BulletContent
	Chart   *ChartContent
	Table   *TableContent
	Quote   *QuoteContent
}

type blockJSON struct {
	Type BlockType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON writes the {type, data} wire form.
func (b ContentBlock) MarshalJSON() ([]byte, error) {
	var data any
	switch b.Type {
	case BlockText:
		data = b.Text
	case BlockBullets, BlockNumberedList:
		data = b.Bullets
	case BlockChart:
		data = b.Chart
	case BlockTable:
		data = b.Table
	case BlockQuote:
		data = b.Quote
	}
	var raw json.RawMessage
	if data != nil {
		enc, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = enc
	}
	return json.Marshal(blockJSON{Type: b.Type, Data: raw})
}

// UnmarshalJSON decodes the {type, data} wire form into the matching variant.
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var wire blockJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	decoded, err := DecodeBlock(wire.Type, wire.Data)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// DecodeBlock builds a ContentBlock from a type tag and raw variant payload.
func DecodeBlock(typ BlockType, data json.RawMessage) (ContentBlock, error) {
	b := ContentBlock{Type: typ}
	if len(data) == 0 {
		return b, nil
	}
	var err error
	switch typ {
	case BlockText:
		b.Text = &TextContent{}
		err = json.Unmarshal(data, b.Text)
	case BlockBullets, BlockNumberedList:
		b.Bullets = &BulletContent{}
		err = json.Unmarshal(data, b.Bullets)
	case BlockChart:
		b.Chart = &ChartContent{}
		err = json.Unmarshal(data, b.Chart)
	case BlockTable:
		b.Table = &TableContent{}
		err = json.Unmarshal(data, b.Table)
	case BlockQuote:
		b.Quote = &QuoteContent{}
		err = json.Unmarshal(data, b.Quote)
	case BlockImage:
		// Reserved, currently inert.
	default:
		return b, fmt.Errorf("unknown content block type: %s", typ)
	}
	if err != nil {
		return b, fmt.Errorf("decode %s block: %w", typ, err)
	}
	return b, nil
}

// TextContent is a free-text block.
type TextContent struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"` // normal, emphasis, highlight
}

// BulletContent holds an ordered list of bullet items. Sub-items render only
// one level deep; deeper nesting is not representable.
type BulletContent struct {
	Items []BulletItem `json:"items"`
}

// BulletItem is one top-level bullet with optional sub-items.
type BulletItem struct {
	Text     string   `json:"text"`
	SubItems []string `json:"subItems,omitempty"`
	Icon     string   `json:"icon,omitempty"`
}

// ChartKind is the chart variant requested by the generator.
type ChartKind string

const (
	ChartBar   ChartKind = "bar"
	ChartLine  ChartKind = "line"
	ChartPie   ChartKind = "pie"
	ChartDonut ChartKind = "donut"
	ChartArea  ChartKind = "area"
)

// ChartContent is a chart block. Donut and area fall back to bar at render
// time; the model keeps the requested kind.
type ChartContent struct {
	ChartType ChartKind    `json:"chartType"`
	Title     string       `json:"title,omitempty"`
	Data      []ChartPoint `json:"data"`
}

// ChartPoint is one labeled data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// TableContent holds a header row and data rows. Headers define the column
// count; rows are not structurally forced to match and the renderer must
// tolerate shorter or longer rows.
type TableContent struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// QuoteContent is a quotation block (reserved, currently inert at render).
type QuoteContent struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
	Source string `json:"source,omitempty"`
}

// GeneratedDeck is a complete generated presentation. Created once by the
// assembler and immutable thereafter except for full regeneration.
type GeneratedDeck struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slides          []Slide    `json:"slides"`
	Style           SlideStyle `json:"style"`
	CreatedAt       time.Time  `json:"createdAt"`
	SourceDocuments []string   `json:"sourceDocuments"`
}

// Renumber overwrites each slide's order with its 1-based position. This is
// the single central rule that keeps order contiguous and unique no matter
// how an upstream generator numbered the slides.
func Renumber(slides []Slide) {
	for i := range slides {
		slides[i].Order = i + 1
	}
}
