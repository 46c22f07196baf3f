// Package pptx writes Office Open XML presentation archives. It covers only
// the primitives the render engine needs: text boxes, solid shapes, lines,
// tables, native charts and speaker notes. Coordinates are inches on the
// slide canvas; the writer converts to EMU.
package pptx

import (
	"bytes"
	"time"
)

const (
	emuPerInch  = 914400
	emuPerPoint = 12700

	// 16:9 canvas, 10 x 5.625 inches.
	SlideWidth  = 10.0
	SlideHeight = 5.625
)

// Presentation accumulates slides and document properties, then serializes
// to a zipped-XML container.
type Presentation struct {
	Title   string
	Author  string
	Subject string
	Company string
	Created time.Time
	Theme   ThemeColors

	slides []*Slide
}

// ThemeColors populates the theme part's color and font scheme. A reader
// that inspects the theme sees the same palette the slides draw with.
type ThemeColors struct {
	Primary     string // dk1
	Secondary   string // accent1
	Accent      string // accent2
	Background  string // lt1
	Text        string // dk2
	TextLight   string // accent3
	HeadingFont string
	BodyFont    string
}

func New() *Presentation {
	return &Presentation{
		Created: time.Now(),
		Theme: ThemeColors{
			Primary:     "003366",
			Secondary:   "0066CC",
			Accent:      "00A3E0",
			Background:  "FFFFFF",
			Text:        "333333",
			TextLight:   "666666",
			HeadingFont: "Georgia",
			BodyFont:    "Arial",
		},
	}
}

// AddSlide appends an empty slide and returns it for population.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.slides = append(p.slides, s)
	return s
}

// SlideCount returns the number of slides added so far.
func (p *Presentation) SlideCount() int { return len(p.slides) }

// Bytes serializes the presentation into a single binary buffer.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Slide is one slide under construction. Shapes render in insertion order
// (z-order: later shapes draw on top).
type Slide struct {
	background string
	notes      string
	shapes     []shape
}

type shape interface{ isShape() }

func (textBox) isShape()    {}
func (rectShape) isShape()  {}
func (lineShape) isShape()  {}
func (tableShape) isShape() {}
func (chartShape) isShape() {}

// SetBackground fills the slide with a solid color ("RRGGBB").
func (s *Slide) SetBackground(hexColor string) {
	s.background = hexColor
}

// AddNotes attaches speaker notes to the slide.
func (s *Slide) AddNotes(text string) {
	s.notes = text
}

// Align is horizontal paragraph alignment.
type Align string

const (
	AlignLeft   Align = "l"
	AlignCenter Align = "ctr"
	AlignRight  Align = "r"
)

// VAlign is vertical anchoring within a text body.
type VAlign string

const (
	VAlignTop    VAlign = "t"
	VAlignMiddle VAlign = "ctr"
	VAlignBottom VAlign = "b"
)

// TextOptions positions and styles a text box. Zero-value fields fall back
// to sensible defaults at serialization (left/top alignment, black text).
type TextOptions struct {
	X, Y, W, H float64
	FontSize   float64 // points
	FontFace   string
	Color      string // RRGGBB
	Bold       bool
	Align      Align
	VAlign     VAlign
}

// Bullet configures a paragraph's bullet glyph.
type Bullet struct {
	Numbered bool   // auto-numbered "1." style; Glyph is ignored
	Glyph    string // literal bullet character, e.g. "•"
}

// ParaOptions styles one paragraph inside a multi-paragraph text box.
type ParaOptions struct {
	Bullet      *Bullet
	IndentLevel int
	FontSize    float64
	FontFace    string
	Color       string
	Bold        bool
	SpaceBefore float64 // points
	SpaceAfter  float64 // points
}

// Paragraph is one paragraph of a text box.
type Paragraph struct {
	Text    string
	Options ParaOptions
}

// AddText places a single-paragraph text box.
func (s *Slide) AddText(text string, opts TextOptions) {
	s.AddParagraphs([]Paragraph{{Text: text}}, opts)
}

// AddParagraphs places a multi-paragraph text box. Paragraph-level options
// override the box-level font settings where set.
func (s *Slide) AddParagraphs(paras []Paragraph, opts TextOptions) {
	s.shapes = append(s.shapes, textBox{paragraphs: paras, opts: opts})
}

// ShapeOptions positions and styles a rectangle or line.
type ShapeOptions struct {
	X, Y, W, H float64
	FillColor  string  // RRGGBB, empty for no fill
	LineColor  string  // RRGGBB, empty for no stroke
	LineWidth  float64 // points
}

// AddRect places a solid rectangle.
func (s *Slide) AddRect(opts ShapeOptions) {
	s.shapes = append(s.shapes, rectShape{opts: opts})
}

// AddLine places a straight connector from (X, Y) to (X+W, Y+H).
func (s *Slide) AddLine(opts ShapeOptions) {
	s.shapes = append(s.shapes, lineShape{opts: opts})
}

// TableCell is one table cell with optional styling.
type TableCell struct {
	Text      string
	Bold      bool
	FillColor string // RRGGBB, empty for none
	Color     string // text color
	FontSize  float64
	FontFace  string
}

// TableOptions positions a table. Column widths divide W evenly by the
// first row's cell count.
type TableOptions struct {
	X, Y, W   float64
	RowHeight float64 // inches per row
}

// AddTable places a table; rows[0] is typically the header row.
func (s *Slide) AddTable(rows [][]TableCell, opts TableOptions) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}
	s.shapes = append(s.shapes, tableShape{rows: rows, opts: opts})
}

// ChartType selects the native chart pathway.
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
)

// ChartSeries is a single labeled data series.
type ChartSeries struct {
	Name   string
	Labels []string
	Values []float64
}

// ChartOptions positions and configures a chart frame.
type ChartOptions struct {
	X, Y, W, H     float64
	ShowLegend     bool
	LegendPosition string // "b", "r", "t", "l"
	Title          string // empty hides the title
	TitleFontSize  float64
	TitleColor     string
	SeriesColor    string   // bar/line series fill, RRGGBB
	SliceColors    []string // pie slice fills, cycled over data points
}

// AddChart places a native chart; the chart part is emitted at write time.
func (s *Slide) AddChart(t ChartType, series ChartSeries, opts ChartOptions) {
	if len(series.Labels) == 0 {
		return
	}
	s.shapes = append(s.shapes, chartShape{typ: t, series: series, opts: opts})
}

type textBox struct {
	paragraphs []Paragraph
	opts       TextOptions
}

type rectShape struct{ opts ShapeOptions }

type lineShape struct{ opts ShapeOptions }

type tableShape struct {
	rows [][]TableCell
	opts TableOptions
}

type chartShape struct {
	typ    ChartType
	series ChartSeries
	opts   ChartOptions
}

func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}

func emuPt(points float64) int64 {
	return int64(points * emuPerPoint)
}

// fontSz converts points to the hundredths-of-a-point unit used by rPr sz.
func fontSz(points float64) int {
	return int(points * 100)
}
