package pptx

import (
	"fmt"
	"strings"
)

// chartSpaceXML serializes one chart part. Category and value caches carry
// the literal data; the sheet references are synthetic since no embedded
// workbook is written.
func chartSpaceXML(c chartShape) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<c:chartSpace xmlns:c="%s" xmlns:a="%s" xmlns:r="%s">`, nsC, nsA, nsR)
	b.WriteString(`<c:chart>`)

	if c.opts.Title != "" {
		writeChartTitle(&b, c.opts)
		b.WriteString(`<c:autoTitleDeleted val="0"/>`)
	} else {
		b.WriteString(`<c:autoTitleDeleted val="1"/>`)
	}

	b.WriteString(`<c:plotArea><c:layout/>`)
	switch c.typ {
	case ChartPie:
		writePieChart(&b, c)
	case ChartLine:
		writeLineChart(&b, c)
	default:
		writeBarChart(&b, c)
	}
	if c.typ != ChartPie {
		writeAxes(&b)
	}
	b.WriteString(`</c:plotArea>`)

	if c.opts.ShowLegend {
		pos := c.opts.LegendPosition
		if pos == "" {
			pos = "b"
		}
		fmt.Fprintf(&b, `<c:legend><c:legendPos val="%s"/><c:overlay val="0"/></c:legend>`, pos)
	}

	b.WriteString(`<c:plotVisOnly val="1"/><c:dispBlanksAs val="gap"/>`)
	b.WriteString(`</c:chart>`)
	b.WriteString(`</c:chartSpace>`)
	return b.String()
}

func writeChartTitle(b *strings.Builder, o ChartOptions) {
	size := o.TitleFontSize
	if size == 0 {
		size = 14
	}
	color := o.TitleColor
	if color == "" {
		color = "000000"
	}
	b.WriteString(`<c:title><c:tx><c:rich><a:bodyPr rot="0" spcFirstLastPara="1"/><a:lstStyle/><a:p>`)
	fmt.Fprintf(b, `<a:pPr algn="ctr"><a:defRPr sz="%d" b="1"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:defRPr></a:pPr>`,
		fontSz(size), hexColor(color))
	fmt.Fprintf(b, `<a:r><a:rPr lang="en-US" sz="%d" b="1"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r>`,
		fontSz(size), hexColor(color), xmlEscape(o.Title))
	b.WriteString(`</a:p></c:rich></c:tx><c:overlay val="0"/></c:title>`)
}

func writeBarChart(b *strings.Builder, c chartShape) {
	b.WriteString(`<c:barChart><c:barDir val="col"/><c:grouping val="clustered"/><c:varyColors val="0"/>`)
	writeSeries(b, c, false)
	b.WriteString(`<c:gapWidth val="80"/><c:axId val="111111111"/><c:axId val="222222222"/></c:barChart>`)
}

func writeLineChart(b *strings.Builder, c chartShape) {
	b.WriteString(`<c:lineChart><c:grouping val="standard"/><c:varyColors val="0"/>`)
	writeSeries(b, c, true)
	b.WriteString(`<c:marker val="1"/><c:axId val="111111111"/><c:axId val="222222222"/></c:lineChart>`)
}

func writePieChart(b *strings.Builder, c chartShape) {
	b.WriteString(`<c:pieChart><c:varyColors val="1"/>`)
	writeSeries(b, c, false)
	b.WriteString(`<c:firstSliceAng val="0"/></c:pieChart>`)
}

func writeSeries(b *strings.Builder, c chartShape, line bool) {
	s := c.series
	n := len(s.Labels)

	b.WriteString(`<c:ser><c:idx val="0"/><c:order val="0"/>`)

	name := s.Name
	if name == "" {
		name = "Series 1"
	}
	fmt.Fprintf(b, `<c:tx><c:strRef><c:f>Sheet1!$B$1</c:f><c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>%s</c:v></c:pt></c:strCache></c:strRef></c:tx>`,
		xmlEscape(name))

	if c.opts.SeriesColor != "" {
		fill := fmt.Sprintf(`<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, hexColor(c.opts.SeriesColor))
		if line {
			fmt.Fprintf(b, `<c:spPr><a:ln w="28575">%s</a:ln></c:spPr>`, fill)
		} else {
			fmt.Fprintf(b, `<c:spPr>%s</c:spPr>`, fill)
		}
	}

	// Per-point fills for pie slices.
	if c.typ == ChartPie && len(c.opts.SliceColors) > 0 {
		for i := 0; i < n; i++ {
			color := c.opts.SliceColors[i%len(c.opts.SliceColors)]
			fmt.Fprintf(b, `<c:dPt><c:idx val="%d"/><c:bubble3D val="0"/><c:spPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></c:spPr></c:dPt>`,
				i, hexColor(color))
		}
	}

	fmt.Fprintf(b, `<c:cat><c:strRef><c:f>Sheet1!$A$2:$A$%d</c:f><c:strCache><c:ptCount val="%d"/>`, n+1, n)
	for i, label := range s.Labels {
		fmt.Fprintf(b, `<c:pt idx="%d"><c:v>%s</c:v></c:pt>`, i, xmlEscape(label))
	}
	b.WriteString(`</c:strCache></c:strRef></c:cat>`)

	fmt.Fprintf(b, `<c:val><c:numRef><c:f>Sheet1!$B$2:$B$%d</c:f><c:numCache><c:formatCode>General</c:formatCode><c:ptCount val="%d"/>`, n+1, n)
	for i := 0; i < n; i++ {
		var v float64
		if i < len(s.Values) {
			v = s.Values[i]
		}
		fmt.Fprintf(b, `<c:pt idx="%d"><c:v>%g</c:v></c:pt>`, i, v)
	}
	b.WriteString(`</c:numCache></c:numRef></c:val>`)

	if line {
		b.WriteString(`<c:smooth val="0"/>`)
	}
	b.WriteString(`</c:ser>`)
}

func writeAxes(b *strings.Builder) {
	b.WriteString(`<c:catAx><c:axId val="111111111"/><c:scaling><c:orientation val="minMax"/></c:scaling>` +
		`<c:delete val="0"/><c:axPos val="b"/><c:crossAx val="222222222"/></c:catAx>`)
	b.WriteString(`<c:valAx><c:axId val="222222222"/><c:scaling><c:orientation val="minMax"/></c:scaling>` +
		`<c:delete val="0"/><c:axPos val="l"/><c:majorGridlines/><c:numFmt formatCode="General" sourceLinked="1"/>` +
		`<c:crossAx val="111111111"/></c:valAx>`)
}
