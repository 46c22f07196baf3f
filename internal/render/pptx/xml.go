package pptx

import (
	"fmt"
	"strings"
)

const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsC = "http://schemas.openxmlformats.org/drawingml/2006/chart"
)

func xmlEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hexColor(c string) string {
	return strings.ToUpper(strings.TrimPrefix(c, "#"))
}

// slideXML serializes one slide. chartRelIDs supplies the relationship IDs
// for the slide's chart frames, in shape order.
func slideXML(s *Slide, chartRelIDs []string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld>`)

	if s.background != "" {
		fmt.Fprintf(&b, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`,
			hexColor(s.background))
	}

	b.WriteString(`<p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
		`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)

	// id 1 is the group shape above.
	id := 2
	chartIdx := 0
	for _, sh := range s.shapes {
		switch v := sh.(type) {
		case textBox:
			writeTextBox(&b, id, v)
		case rectShape:
			writeRect(&b, id, v)
		case lineShape:
			writeLine(&b, id, v)
		case tableShape:
			writeTable(&b, id, v)
		case chartShape:
			writeChartFrame(&b, id, v, chartRelIDs[chartIdx])
			chartIdx++
		}
		id++
	}

	b.WriteString(`</p:spTree>`)
	b.WriteString(`</p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

// runPropsXML builds an a:rPr element. Zero size omits sz; empty color
// defaults to black so runs never inherit theme placeholder colors.
func runPropsXML(size float64, face, color string, bold bool) string {
	var b strings.Builder
	b.WriteString(`<a:rPr lang="en-US"`)
	if size > 0 {
		fmt.Fprintf(&b, ` sz="%d"`, fontSz(size))
	}
	if bold {
		b.WriteString(` b="1"`)
	}
	b.WriteString(` dirty="0">`)
	if color == "" {
		color = "000000"
	}
	fmt.Fprintf(&b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, hexColor(color))
	if face != "" {
		fmt.Fprintf(&b, `<a:latin typeface="%s"/><a:cs typeface="%s"/>`, xmlEscape(face), xmlEscape(face))
	}
	b.WriteString(`</a:rPr>`)
	return b.String()
}

func writeTextBox(b *strings.Builder, id int, t textBox) {
	o := t.opts
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, id)
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		emu(o.X), emu(o.Y), emu(o.W), emu(o.H))
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)

	anchor := o.VAlign
	if anchor == "" {
		anchor = VAlignTop
	}
	fmt.Fprintf(b, `<p:txBody><a:bodyPr wrap="square" anchor="%s" rtlCol="0"><a:normAutofit/></a:bodyPr><a:lstStyle/>`, anchor)

	for _, para := range t.paragraphs {
		writeParagraph(b, para, o)
	}
	b.WriteString(`</p:txBody></p:sp>`)
}

func writeParagraph(b *strings.Builder, para Paragraph, box TextOptions) {
	po := para.Options

	b.WriteString(`<a:pPr`)
	if po.IndentLevel > 0 {
		fmt.Fprintf(b, ` lvl="%d"`, po.IndentLevel)
	}
	if po.Bullet != nil {
		marL := int64(228600) * int64(po.IndentLevel+1)
		fmt.Fprintf(b, ` marL="%d" indent="-228600"`, marL)
	}
	align := box.Align
	if align == "" {
		align = AlignLeft
	}
	fmt.Fprintf(b, ` algn="%s">`, align)
	if po.SpaceBefore > 0 {
		fmt.Fprintf(b, `<a:spcBef><a:spcPts val="%d"/></a:spcBef>`, fontSz(po.SpaceBefore))
	}
	if po.SpaceAfter > 0 {
		fmt.Fprintf(b, `<a:spcAft><a:spcPts val="%d"/></a:spcAft>`, fontSz(po.SpaceAfter))
	}
	switch {
	case po.Bullet == nil:
		b.WriteString(`<a:buNone/>`)
	case po.Bullet.Numbered:
		b.WriteString(`<a:buFont typeface="+mj-lt"/><a:buAutoNum type="arabicPeriod"/>`)
	default:
		fmt.Fprintf(b, `<a:buChar char="%s"/>`, xmlEscape(po.Bullet.Glyph))
	}
	b.WriteString(`</a:pPr>`)

	size := po.FontSize
	if size == 0 {
		size = box.FontSize
	}
	face := po.FontFace
	if face == "" {
		face = box.FontFace
	}
	color := po.Color
	if color == "" {
		color = box.Color
	}
	bold := po.Bold || box.Bold

	b.WriteString(`<a:r>`)
	b.WriteString(runPropsXML(size, face, color, bold))
	fmt.Fprintf(b, `<a:t>%s</a:t></a:r>`, xmlEscape(para.Text))
	b.WriteString(`</a:p>`)
}

func writeRect(b *strings.Builder, id int, r rectShape) {
	o := r.opts
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Rectangle %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`, id, id)
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		emu(o.X), emu(o.Y), emu(o.W), emu(o.H))
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	if o.FillColor != "" {
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, hexColor(o.FillColor))
	} else {
		b.WriteString(`<a:noFill/>`)
	}
	if o.LineColor != "" {
		w := o.LineWidth
		if w == 0 {
			w = 1
		}
		fmt.Fprintf(b, `<a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`,
			emuPt(w), hexColor(o.LineColor))
	} else {
		b.WriteString(`<a:ln><a:noFill/></a:ln>`)
	}
	b.WriteString(`</p:spPr><p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr lang="en-US"/></a:p></p:txBody></p:sp>`)
}

func writeLine(b *strings.Builder, id int, l lineShape) {
	o := l.opts
	w := o.LineWidth
	if w == 0 {
		w = 1
	}
	fmt.Fprintf(b, `<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="%d" name="Line %d"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr>`, id, id)
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		emu(o.X), emu(o.Y), emu(o.W), emu(o.H))
	b.WriteString(`<a:prstGeom prst="line"><a:avLst/></a:prstGeom>`)
	fmt.Fprintf(b, `<a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`,
		emuPt(w), hexColor(o.LineColor))
	b.WriteString(`</p:spPr></p:cxnSp>`)
}

func writeTable(b *strings.Builder, id int, t tableShape) {
	o := t.opts
	cols := len(t.rows[0])
	rowH := o.RowHeight
	if rowH == 0 {
		rowH = 0.4
	}
	totalH := rowH * float64(len(t.rows))

	fmt.Fprintf(b, `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Table %d"/>`, id, id)
	b.WriteString(`<p:cNvGraphicFramePr><a:graphicFrameLocks noGrp="1"/></p:cNvGraphicFramePr><p:nvPr/></p:nvGraphicFramePr>`)
	fmt.Fprintf(b, `<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`,
		emu(o.X), emu(o.Y), emu(o.W), emu(totalH))
	b.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">`)
	b.WriteString(`<a:tbl><a:tblPr firstRow="1" bandRow="1"/>`)

	colW := emu(o.W) / int64(cols)
	b.WriteString(`<a:tblGrid>`)
	for i := 0; i < cols; i++ {
		fmt.Fprintf(b, `<a:gridCol w="%d"/>`, colW)
	}
	b.WriteString(`</a:tblGrid>`)

	for _, row := range t.rows {
		fmt.Fprintf(b, `<a:tr h="%d">`, emu(rowH))
		for i := 0; i < cols; i++ {
			var cell TableCell
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(`<a:tc><a:txBody><a:bodyPr/><a:lstStyle/><a:p><a:pPr algn="l"/>`)
			b.WriteString(`<a:r>`)
			b.WriteString(runPropsXML(cell.FontSize, cell.FontFace, cell.Color, cell.Bold))
			fmt.Fprintf(b, `<a:t>%s</a:t></a:r></a:p></a:txBody>`, xmlEscape(cell.Text))
			b.WriteString(`<a:tcPr marL="91440" marR="91440" marT="45720" marB="45720">`)
			if cell.FillColor != "" {
				fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, hexColor(cell.FillColor))
			}
			b.WriteString(`</a:tcPr></a:tc>`)
		}
		b.WriteString(`</a:tr>`)
	}

	b.WriteString(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
}

func writeChartFrame(b *strings.Builder, id int, c chartShape, relID string) {
	o := c.opts
	fmt.Fprintf(b, `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Chart %d"/>`, id, id)
	b.WriteString(`<p:cNvGraphicFramePr><a:graphicFrameLocks noGrp="1"/></p:cNvGraphicFramePr><p:nvPr/></p:nvGraphicFramePr>`)
	fmt.Fprintf(b, `<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`,
		emu(o.X), emu(o.Y), emu(o.W), emu(o.H))
	b.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/chart">`)
	fmt.Fprintf(b, `<c:chart xmlns:c="%s" xmlns:r="%s" r:id="%s"/>`, nsC, nsR, relID)
	b.WriteString(`</a:graphicData></a:graphic></p:graphicFrame>`)
}
