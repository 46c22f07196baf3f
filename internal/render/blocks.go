package render

import (
	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/render/pptx"
)

// Block height constants, inches. Estimates, not measured text.
const (
	bulletLineH   = 0.35
	bulletMaxH    = 3.5
	bulletGap     = 0.2
	textBlockH    = 0.8
	textBlockGap  = 0.9
	tableRowH     = 0.4
	tableGap      = 0.3
	chartFrameH   = 3.5
	chartFrameGap = 0.2
)

// renderBlock draws one content block at (x, y) within width w and returns
// the advanced Y-cursor. Variants with nil payloads and reserved block types
// advance nothing.
func renderBlock(s *pptx.Slide, b deck.ContentBlock, x, y, w float64, st *deck.SlideStyle, forceNumbered bool) float64 {
	switch b.Type {
	case deck.BlockText:
		if b.Text == nil {
			return y
		}
		return renderText(s, b.Text, x, y, w, st)
	case deck.BlockBullets:
		if b.Bullets == nil {
			return y
		}
		return renderBullets(s, b.Bullets, x, y, w, st, forceNumbered)
	case deck.BlockNumberedList:
		if b.Bullets == nil {
			return y
		}
		return renderBullets(s, b.Bullets, x, y, w, st, true)
	case deck.BlockChart:
		if b.Chart == nil {
			return y
		}
		return renderChart(s, b.Chart, x, y, w, st)
	case deck.BlockTable:
		if b.Table == nil || len(b.Table.Headers) == 0 {
			return y
		}
		return renderTable(s, b.Table, x, y, w, st)
	default:
		// image and quote are reserved; nothing is drawn.
		return y
	}
}

func renderText(s *pptx.Slide, t *deck.TextContent, x, y, w float64, st *deck.SlideStyle) float64 {
	color := st.TextColor
	bold := false
	switch t.Style {
	case "emphasis":
		bold = true
	case "highlight":
		color = st.AccentColor
	}
	s.AddText(t.Text, pptx.TextOptions{
		X: x, Y: y, W: w, H: textBlockH,
		FontSize: st.FontSize.Body,
		FontFace: st.FontFamily.Body,
		Color:    color,
		Bold:     bold,
		Align:    pptx.AlignLeft,
	})
	return y + textBlockGap
}

// renderBullets lays out top-level items with sub-items interleaved directly
// after their parent. Height is linear in total line count, capped.
func renderBullets(s *pptx.Slide, bc *deck.BulletContent, x, y, w float64, st *deck.SlideStyle, numbered bool) float64 {
	var paras []pptx.Paragraph
	for _, item := range bc.Items {
		bullet := &pptx.Bullet{Glyph: "•"}
		if numbered {
			bullet = &pptx.Bullet{Numbered: true}
		}
		paras = append(paras, pptx.Paragraph{
			Text: item.Text,
			Options: pptx.ParaOptions{
				Bullet:     bullet,
				FontSize:   st.FontSize.Body,
				SpaceAfter: 6,
			},
		})
		for _, sub := range item.SubItems {
			paras = append(paras, pptx.Paragraph{
				Text: sub,
				Options: pptx.ParaOptions{
					Bullet:      &pptx.Bullet{Glyph: "–"},
					IndentLevel: 1,
					FontSize:    st.FontSize.Caption + 2,
					Color:       st.TextLightColor,
					SpaceAfter:  4,
				},
			})
		}
	}
	if len(paras) == 0 {
		return y
	}

	h := min(float64(len(paras))*bulletLineH, bulletMaxH)
	s.AddParagraphs(paras, pptx.TextOptions{
		X: x, Y: y, W: w, H: h,
		FontFace: st.FontFamily.Body,
		Color:    st.TextColor,
		Align:    pptx.AlignLeft,
	})
	return y + h + bulletGap
}

// renderChart places a native chart. Donut and area downgrade to bar since
// the container has no native pathway for them. Legend always sits below.
func renderChart(s *pptx.Slide, c *deck.ChartContent, x, y, w float64, st *deck.SlideStyle) float64 {
	var typ pptx.ChartType
	switch c.ChartType {
	case deck.ChartLine:
		typ = pptx.ChartLine
	case deck.ChartPie:
		typ = pptx.ChartPie
	default:
		// bar, donut, area and anything unrecognized.
		typ = pptx.ChartBar
	}

	series := pptx.ChartSeries{Name: c.Title}
	for _, pt := range c.Data {
		series.Labels = append(series.Labels, pt.Label)
		series.Values = append(series.Values, pt.Value)
	}

	var slices []string
	if typ == pptx.ChartPie {
		for _, pt := range c.Data {
			if pt.Color != "" {
				slices = append(slices, pt.Color)
			}
		}
		if len(slices) == 0 {
			slices = []string{st.SecondaryColor, st.AccentColor, st.PrimaryColor, st.TextLightColor}
		}
	}

	// Full-width blocks use the fixed chart frame; narrower regions (columns,
	// comparison boxes) shrink to fit.
	fx, fy, fw, fh := 1.0, max(y, 1.3), 8.0, chartFrameH
	if w < contentW {
		fx, fy, fw, fh = x, y, w, 2.5
	}

	s.AddChart(typ, series, pptx.ChartOptions{
		X: fx, Y: fy, W: fw, H: fh,
		ShowLegend:     true,
		LegendPosition: "b",
		Title:          c.Title,
		TitleFontSize:  st.FontSize.Subheading,
		TitleColor:     st.PrimaryColor,
		SeriesColor:    st.SecondaryColor,
		SliceColors:    slices,
	})
	return fy + fh + chartFrameGap
}

// renderTable draws a header row in secondary fill with bold white text and
// plain data rows. Columns divide the width evenly by header count; row cells
// beyond the header count are dropped, missing cells render empty.
func renderTable(s *pptx.Slide, t *deck.TableContent, x, y, w float64, st *deck.SlideStyle) float64 {
	cols := len(t.Headers)

	rows := make([][]pptx.TableCell, 0, len(t.Rows)+1)
	header := make([]pptx.TableCell, cols)
	for i, h := range t.Headers {
		header[i] = pptx.TableCell{
			Text:      h,
			Bold:      true,
			FillColor: st.SecondaryColor,
			Color:     st.BackgroundColor,
			FontSize:  st.FontSize.Body,
			FontFace:  st.FontFamily.Body,
		}
	}
	rows = append(rows, header)

	for _, r := range t.Rows {
		row := make([]pptx.TableCell, cols)
		for i := 0; i < cols; i++ {
			var cell string
			if i < len(r) {
				cell = r[i]
			}
			row[i] = pptx.TableCell{
				Text:     cell,
				Color:    st.TextColor,
				FontSize: st.FontSize.Body,
				FontFace: st.FontFamily.Body,
			}
		}
		rows = append(rows, row)
	}

	s.AddTable(rows, pptx.TableOptions{
		X: x, Y: y, W: w,
		RowHeight: tableRowH,
	})
	return y + float64(len(rows))*tableRowH + tableGap
}
