// Package render turns a finished deck into a binary presentation container.
// Layout is strategy-per-slide-type over a fixed 10 x 5.625in canvas with a
// running Y-cursor per content region. Height estimation is linear in line
// counts, not measured text; content that overruns the canvas is clipped by
// the viewer, never reflowed here.
package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/render/pptx"
)

// Branding stamped into container document properties.
const (
	brandName    = "DeckForge AI"
	brandSubject = "Generated Presentation"
)

// RenderError wraps a container-writing failure. Content shape never fails a
// render; missing optional fields just omit their visual element.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render presentation: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Canvas geometry, inches.
const (
	canvasW = pptx.SlideWidth
	canvasH = pptx.SlideHeight

	headerH    = 0.9
	contentX   = 0.5
	contentW   = 9.0
	contentTop = 1.2

	footerY = 5.2
)

// Deck renders every slide of d and returns the finished container bytes.
func Deck(d *deck.GeneratedDeck) ([]byte, error) {
	p := pptx.New()
	p.Title = d.Title
	p.Author = brandName
	p.Company = brandName
	p.Subject = brandSubject
	if !d.CreatedAt.IsZero() {
		p.Created = d.CreatedAt
	}
	p.Theme = themeColors(&d.Style)

	for i := range d.Slides {
		renderSlide(p.AddSlide(), &d.Slides[i], &d.Style)
	}

	out, err := p.Bytes()
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	return out, nil
}

func themeColors(st *deck.SlideStyle) pptx.ThemeColors {
	return pptx.ThemeColors{
		Primary:     st.PrimaryColor,
		Secondary:   st.SecondaryColor,
		Accent:      st.AccentColor,
		Background:  st.BackgroundColor,
		Text:        st.TextColor,
		TextLight:   st.TextLightColor,
		HeadingFont: st.FontFamily.Heading,
		BodyFont:    st.FontFamily.Body,
	}
}

// renderSlide dispatches on slide type. Unknown types use the content
// strategy, never an error.
func renderSlide(s *pptx.Slide, sl *deck.Slide, st *deck.SlideStyle) {
	s.SetBackground(st.BackgroundColor)

	switch sl.Type {
	case deck.SlideTitle:
		renderTitleSlide(s, sl, st)
	case deck.SlideSectionHeader:
		renderSectionHeader(s, sl, st)
	case deck.SlideTwoColumn:
		renderTwoColumn(s, sl, st)
	case deck.SlideComparison:
		renderComparison(s, sl, st)
	case deck.SlideKeyTakeaways:
		renderKeyTakeaways(s, sl, st)
	case deck.SlideAgenda:
		renderContentSlide(s, sl, st, true)
	case deck.SlideChart:
		renderChartSlide(s, sl, st)
	default:
		// executive-summary, content, timeline, appendix and any
		// unrecognized type share the content strategy.
		renderContentSlide(s, sl, st, false)
	}

	if sl.Type != deck.SlideTitle {
		renderFooter(s, sl.Order, st)
	}
	if sl.Notes != "" {
		s.AddNotes(sl.Notes)
	}
}

// renderTitleSlide paints a full-bleed primary background with the title
// anchored in the upper-left region. Content blocks are never rendered here.
func renderTitleSlide(s *pptx.Slide, sl *deck.Slide, st *deck.SlideStyle) {
	s.SetBackground(st.PrimaryColor)

	s.AddText(sl.Title, pptx.TextOptions{
		X: 0.6, Y: 1.2, W: 8.8, H: 1.6,
		FontSize: st.FontSize.Title,
		FontFace: st.FontFamily.Heading,
		Color:    st.BackgroundColor,
		Bold:     true,
		Align:    pptx.AlignLeft,
		VAlign:   pptx.VAlignTop,
	})

	if sl.Subtitle != "" {
		s.AddText(sl.Subtitle, pptx.TextOptions{
			X: 0.6, Y: 2.9, W: 8.8, H: 0.8,
			FontSize: st.FontSize.Subheading,
			FontFace: st.FontFamily.Body,
			Color:    st.AccentColor,
			Align:    pptx.AlignLeft,
		})
	}

	s.AddText(time.Now().Format("January 2, 2006"), pptx.TextOptions{
		X: 0.6, Y: 4.8, W: 4, H: 0.4,
		FontSize: st.FontSize.Caption,
		FontFace: st.FontFamily.Body,
		Color:    st.BackgroundColor,
		Align:    pptx.AlignLeft,
	})

	// Brand glyph: small accent square in the lower-right corner.
	s.AddRect(pptx.ShapeOptions{
		X: 9.25, Y: 4.95, W: 0.3, H: 0.3,
		FillColor: st.AccentColor,
	})
}

// renderHeader draws the shared header skeleton: a secondary-color bar with
// white title text and an accent divider line beneath it.
func renderHeader(s *pptx.Slide, title string, st *deck.SlideStyle) {
	s.AddRect(pptx.ShapeOptions{
		X: 0, Y: 0, W: canvasW, H: headerH,
		FillColor: st.SecondaryColor,
	})
	s.AddText(title, pptx.TextOptions{
		X: contentX, Y: 0.1, W: contentW, H: headerH - 0.2,
		FontSize: st.FontSize.Heading,
		FontFace: st.FontFamily.Heading,
		Color:    st.BackgroundColor,
		Bold:     true,
		Align:    pptx.AlignLeft,
		VAlign:   pptx.VAlignMiddle,
	})
	s.AddLine(pptx.ShapeOptions{
		X: 0, Y: headerH, W: canvasW, H: 0,
		LineColor: st.AccentColor,
		LineWidth: 2.25,
	})
}

func renderContentSlide(s *pptx.Slide, sl *deck.Slide, st *deck.SlideStyle, forceNumbered bool) {
	renderHeader(s, sl.Title, st)

	y := contentTop
	for _, b := range sl.Content {
		y = renderBlock(s, b, contentX, y, contentW, st, forceNumbered)
	}
}

// renderChartSlide renders exactly the chart blocks; any other block type on
// a chart slide is skipped without advancing the cursor.
func renderChartSlide(s *pptx.Slide, sl *deck.Slide, st *deck.SlideStyle) {
	renderHeader(s, sl.Title, st)

	y := contentTop
	for _, b := range sl.Content {
		if b.Type != deck.BlockChart {
			continue
		}
		y = renderBlock(s, b, contentX, y, contentW, st, false)
	}
}

// renderSectionHeader draws a centered secondary band with the title and an
// optional accent subtitle line beneath the band. No header bar.
func renderSectionHeader(s *pptx.Slide, sl *deck.Slide, st *deck.SlideStyle) {
	s.AddRect(pptx.ShapeOptions{
		X: 0, Y: 2.0, W: canvasW, H: 1.5,
		FillColor: st.SecondaryColor,
	})
	s.AddText(sl.Title, pptx.TextOptions{
		X: 0.8, Y: 2.0, W: 8.4, H: 1.5,
		FontSize: st.FontSize.Heading,
		FontFace: st.FontFamily.Heading,
		Color:    st.BackgroundColor,
		Bold:     true,
		Align:    pptx.AlignLeft,
		VAlign:   pptx.VAlignMiddle,
	})
	if sl.Subtitle != "" {
		s.AddText(sl.Subtitle, pptx.TextOptions{
			X: 0.8, Y: 3.7, W: 8.4, H: 0.6,
			FontSize: st.FontSize.Subheading,
			FontFace: st.FontFamily.Body,
			Color:    st.AccentColor,
			Align:    pptx.AlignLeft,
		})
	}
}

// renderTwoColumn splits the block sequence at its midpoint into two columns
// with independent Y-cursors and draws a vertical accent divider between.
func renderTwoColumn(s *pptx.Slide, sl *deck.Slide, st *deck.SlideStyle) {
	renderHeader(s, sl.Title, st)

	mid := (len(sl.Content) + 1) / 2
	left, right := sl.Content[:mid], sl.Content[mid:]

	y := contentTop
	for _, b := range left {
		y = renderBlock(s, b, 0.5, y, 4.2, st, false)
	}
	y = contentTop
	for _, b := range right {
		y = renderBlock(s, b, 5.2, y, 4.2, st, false)
	}

	s.AddLine(pptx.ShapeOptions{
		X: 4.9, Y: contentTop, W: 0, H: 3.8,
		LineColor: st.AccentColor,
		LineWidth: 1.5,
	})
}

// renderComparison places the first two blocks into side-by-side bordered
// boxes. Both boxes are drawn even when fewer blocks exist; blocks beyond
// the first two are dropped.
func renderComparison(s *pptx.Slide, sl *deck.Slide, st *deck.SlideStyle) {
	renderHeader(s, sl.Title, st)

	for i, x := range []float64{0.5, 5.3} {
		s.AddRect(pptx.ShapeOptions{
			X: x, Y: contentTop, W: 4.2, H: 3.5,
			LineColor: st.SecondaryColor,
			LineWidth: 1.5,
		})
		if i < len(sl.Content) {
			renderBlock(s, sl.Content[i], x+0.2, contentTop+0.2, 3.8, st, false)
		}
	}
}

// renderKeyTakeaways is the content strategy plus a full-height accent stripe
// on the left edge; bullets are forced into numbered form.
func renderKeyTakeaways(s *pptx.Slide, sl *deck.Slide, st *deck.SlideStyle) {
	s.AddRect(pptx.ShapeOptions{
		X: 0, Y: 0, W: 0.3, H: canvasH,
		FillColor: st.AccentColor,
	})
	renderHeader(s, sl.Title, st)

	y := contentTop
	for _, b := range sl.Content {
		y = renderBlock(s, b, 0.6, y, 8.9, st, true)
	}
}

// renderFooter draws the thin accent rule and the slide order numeral.
func renderFooter(s *pptx.Slide, order int, st *deck.SlideStyle) {
	s.AddLine(pptx.ShapeOptions{
		X: contentX, Y: footerY, W: contentW, H: 0,
		LineColor: st.AccentColor,
		LineWidth: 1,
	})
	s.AddText(strconv.Itoa(order), pptx.TextOptions{
		X: 9.2, Y: 5.25, W: 0.4, H: 0.3,
		FontSize: st.FontSize.Caption,
		FontFace: st.FontFamily.Body,
		Color:    st.TextLightColor,
		Align:    pptx.AlignRight,
	})
}
