package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/deckforge/deckforge/internal/deck"
)

func testDeck(slides ...deck.Slide) *deck.GeneratedDeck {
	deck.Renumber(slides)
	return &deck.GeneratedDeck{
		ID:     "deck-test",
		Title:  "Test Deck",
		Slides: slides,
		Style:  deck.ResolveStyle(nil),
	}
}

func renderParts(t *testing.T, d *deck.GeneratedDeck) map[string]string {
	t.Helper()
	data, err := Deck(d)
	if err != nil {
		t.Fatalf("Deck: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(raw)
	}
	return parts
}

func bulletsBlock(items ...string) deck.ContentBlock {
	bc := &deck.BulletContent{}
	for _, it := range items {
		bc.Items = append(bc.Items, deck.BulletItem{Text: it})
	}
	return deck.ContentBlock{Type: deck.BlockBullets, Bullets: bc}
}

func TestDeckRenderEndToEnd(t *testing.T) {
	d := testDeck(
		deck.Slide{ID: "s1", Type: deck.SlideTitle, Title: "Launch Readiness", Subtitle: "Go decision"},
		deck.Slide{ID: "s2", Type: deck.SlideContent, Title: "Key Points", Content: []deck.ContentBlock{
			bulletsBlock("alpha", "beta", "gamma"),
		}},
	)

	parts := renderParts(t, d)

	if _, ok := parts["ppt/slides/slide1.xml"]; !ok {
		t.Fatal("missing slide1")
	}
	if _, ok := parts["ppt/slides/slide2.xml"]; !ok {
		t.Fatal("missing slide2")
	}
	if _, ok := parts["ppt/slides/slide3.xml"]; ok {
		t.Fatal("unexpected third slide")
	}

	// The second slide's footer carries the order numeral.
	if !strings.Contains(parts["ppt/slides/slide2.xml"], "<a:t>2</a:t>") {
		t.Error("slide2 missing order numeral")
	}

	// Three top-level bullets, filled-dot glyphs.
	if got := strings.Count(parts["ppt/slides/slide2.xml"], `<a:buChar char="•"/>`); got != 3 {
		t.Errorf("bullet glyph count = %d, want 3", got)
	}

	// Title slide has no footer rule (the only line shapes come from footers
	// and dividers).
	if strings.Contains(parts["ppt/slides/slide1.xml"], "<p:cxnSp>") {
		t.Error("title slide should not carry footer or divider lines")
	}
	if !strings.Contains(parts["ppt/slides/slide1.xml"], "Launch Readiness") {
		t.Error("title slide missing title text")
	}
}

func TestDonutAndAreaDowngradeToBar(t *testing.T) {
	for _, kind := range []deck.ChartKind{deck.ChartDonut, deck.ChartArea} {
		d := testDeck(deck.Slide{
			ID: "s1", Type: deck.SlideChart, Title: "Numbers",
			Content: []deck.ContentBlock{{
				Type: deck.BlockChart,
				Chart: &deck.ChartContent{
					ChartType: kind,
					Data:      []deck.ChartPoint{{Label: "A", Value: 1}, {Label: "B", Value: 2}},
				},
			}},
		})

		parts := renderParts(t, d)
		chart := parts["ppt/charts/chart1.xml"]
		if !strings.Contains(chart, "<c:barChart>") {
			t.Errorf("%s chart did not downgrade to bar", kind)
		}
		if !strings.Contains(chart, `<c:legendPos val="b"/>`) {
			t.Errorf("%s chart legend not below", kind)
		}
	}
}

func TestChartSlideRendersOnlyChartBlocks(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: deck.SlideChart, Title: "Numbers Only",
		Content: []deck.ContentBlock{
			bulletsBlock("stray-bullet"),
			{
				Type: deck.BlockChart,
				Chart: &deck.ChartContent{
					ChartType: deck.ChartBar,
					Data:      []deck.ChartPoint{{Label: "A", Value: 1}, {Label: "B", Value: 2}},
				},
			},
		},
	})

	parts := renderParts(t, d)
	slide := parts["ppt/slides/slide1.xml"]
	if strings.Contains(slide, "stray-bullet") {
		t.Error("chart slide rendered a non-chart block")
	}
	if !strings.Contains(slide, `r:id="rId2"`) {
		t.Error("chart slide missing chart frame")
	}
	if !strings.Contains(slide, "Numbers Only") {
		t.Error("chart slide missing header title")
	}
	if _, ok := parts["ppt/charts/chart1.xml"]; !ok {
		t.Fatal("missing chart part")
	}
	// The skipped bullet block must not push the chart down either; the
	// frame sits at the top of the content region (y=1.3in).
	if !strings.Contains(slide, `y="1188720"`) {
		t.Error("chart frame displaced by a skipped block")
	}
}

func TestAgendaForcesNumberedBullets(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: deck.SlideAgenda, Title: "Agenda",
		Content: []deck.ContentBlock{bulletsBlock("first", "second")},
	})

	parts := renderParts(t, d)
	slide := parts["ppt/slides/slide1.xml"]
	if got := strings.Count(slide, `<a:buAutoNum type="arabicPeriod"/>`); got != 2 {
		t.Errorf("numbered bullet count = %d, want 2", got)
	}
	if strings.Contains(slide, `<a:buChar char="•"/>`) {
		t.Error("agenda slide should not use dot glyphs")
	}
}

func TestSubItemsInterleaved(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: deck.SlideContent, Title: "Nested",
		Content: []deck.ContentBlock{{
			Type: deck.BlockBullets,
			Bullets: &deck.BulletContent{Items: []deck.BulletItem{
				{Text: "parent-one", SubItems: []string{"child-one"}},
				{Text: "parent-two"},
			}},
		}},
	})

	parts := renderParts(t, d)
	slide := parts["ppt/slides/slide1.xml"]

	// Sub-item paragraph sits between its parent and the next top-level item.
	p1 := strings.Index(slide, "parent-one")
	c1 := strings.Index(slide, "child-one")
	p2 := strings.Index(slide, "parent-two")
	if !(p1 < c1 && c1 < p2) {
		t.Errorf("interleave order wrong: parent-one@%d child-one@%d parent-two@%d", p1, c1, p2)
	}
	if !strings.Contains(slide, `<a:buChar char="–"/>`) {
		t.Error("sub-item missing dash glyph")
	}
	if !strings.Contains(slide, `lvl="1"`) {
		t.Error("sub-item missing indent level")
	}
}

func TestComparisonRendersOnlyFirstTwoBlocks(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: deck.SlideComparison, Title: "Options",
		Content: []deck.ContentBlock{
			bulletsBlock("left-option"),
			bulletsBlock("right-option"),
			bulletsBlock("dropped-option"),
		},
	})

	parts := renderParts(t, d)
	slide := parts["ppt/slides/slide1.xml"]
	if !strings.Contains(slide, "left-option") || !strings.Contains(slide, "right-option") {
		t.Error("comparison missing box contents")
	}
	if strings.Contains(slide, "dropped-option") {
		t.Error("comparison rendered a block beyond the first two")
	}
}

func TestComparisonDrawsBothBoxes(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: deck.SlideComparison, Title: "One Sided",
		Content: []deck.ContentBlock{bulletsBlock("only-option")},
	})

	parts := renderParts(t, d)
	slide := parts["ppt/slides/slide1.xml"]
	// The two comparison boxes are the only 1.5pt strokes on the slide.
	if got := strings.Count(slide, `<a:ln w="19050">`); got != 2 {
		t.Errorf("comparison box count = %d, want 2", got)
	}
	if !strings.Contains(slide, "only-option") {
		t.Error("lone block not rendered")
	}
}

func TestTwoColumnDividerPosition(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: deck.SlideTwoColumn, Title: "Split",
		Content: []deck.ContentBlock{
			bulletsBlock("left-side"),
			bulletsBlock("right-side"),
		},
	})

	parts := renderParts(t, d)
	slide := parts["ppt/slides/slide1.xml"]
	// Divider sits at x=4.9in.
	if !strings.Contains(slide, `<a:off x="4480560"`) {
		t.Error("two-column divider not at x=4.9")
	}
	if !strings.Contains(slide, "left-side") || !strings.Contains(slide, "right-side") {
		t.Error("column contents missing")
	}
}

func TestUnknownSlideTypeFallsBackToContent(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: "mystery", Title: "Fallback",
		Content: []deck.ContentBlock{bulletsBlock("still-rendered")},
	})

	parts := renderParts(t, d)
	slide := parts["ppt/slides/slide1.xml"]
	if !strings.Contains(slide, "still-rendered") {
		t.Error("unknown slide type did not fall back to content strategy")
	}
	if !strings.Contains(slide, "Fallback") {
		t.Error("fallback slide missing header title")
	}
}

func TestTableHeaderStyling(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: deck.SlideContent, Title: "Data",
		Content: []deck.ContentBlock{{
			Type: deck.BlockTable,
			Table: &deck.TableContent{
				Headers: []string{"Metric", "Value"},
				Rows:    [][]string{{"Revenue", "12", "extra-cell-dropped"}, {"Cost"}},
			},
		}},
	})

	parts := renderParts(t, d)
	slide := parts["ppt/slides/slide1.xml"]
	if got := strings.Count(slide, "<a:gridCol "); got != 2 {
		t.Errorf("gridCol count = %d, want 2 (headers define columns)", got)
	}
	if strings.Contains(slide, "extra-cell-dropped") {
		t.Error("row cell beyond header count was rendered")
	}
	// Header fill uses the secondary color.
	if !strings.Contains(slide, `<a:srgbClr val="0066CC"/>`) {
		t.Error("header row missing secondary fill")
	}
}

func TestNotesCarriedThrough(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: deck.SlideContent, Title: "Annotated",
		Notes: "remember to pause here",
	})

	parts := renderParts(t, d)
	if !strings.Contains(parts["ppt/notesSlides/notesSlide1.xml"], "remember to pause here") {
		t.Error("speaker notes not written")
	}
}

func TestMissingPayloadsDegradeGracefully(t *testing.T) {
	d := testDeck(deck.Slide{
		ID: "s1", Type: deck.SlideContent, Title: "Sparse",
		Content: []deck.ContentBlock{
			{Type: deck.BlockChart},                           // nil payload
			{Type: deck.BlockImage},                           // reserved
			{Type: deck.BlockQuote, Quote: &deck.QuoteContent{Text: "q"}}, // inert
			bulletsBlock("survives"),
		},
	})

	parts := renderParts(t, d)
	if !strings.Contains(parts["ppt/slides/slide1.xml"], "survives") {
		t.Error("render failed to degrade gracefully around empty payloads")
	}
}
