package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"time"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const (
	relTypeOfficeDoc  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps  = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeMaster     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeNotesMstr  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"
	relTypeLayout     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeTheme      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypeSlide      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeNotesSlide = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	relTypeChart      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"
)

// Slide canvas in EMU: 10in x 5.625in.
const (
	slideCX = 9144000
	slideCY = 5143500
)

// Write serializes the whole package to w as a zip archive. Part numbering
// for charts and notes slides is assigned here, in slide order.
func (p *Presentation) Write(w io.Writer) error {
	if len(p.slides) == 0 {
		return fmt.Errorf("presentation has no slides")
	}

	zw := zip.NewWriter(w)

	var charts []chartShape                       // global, in slide order
	slideChartStart := make([]int, len(p.slides)) // 1-based part number of first chart
	slideCharts := make([][]string, len(p.slides))
	slideNotes := make([]int, len(p.slides)) // notes part number, 0 if none

	notesNum := 0
	for i, s := range p.slides {
		slideChartStart[i] = len(charts) + 1
		for _, sh := range s.shapes {
			if c, ok := sh.(chartShape); ok {
				charts = append(charts, c)
				relID := fmt.Sprintf("rId%d", 2+len(slideCharts[i]))
				slideCharts[i] = append(slideCharts[i], relID)
			}
		}
		if s.notes != "" {
			notesNum++
			slideNotes[i] = notesNum
		}
	}
	chartNum := len(charts)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", p.contentTypesXML(chartNum, slideNotes)},
		{"_rels/.rels", rootRelsXML()},
		{"docProps/core.xml", p.corePropsXML()},
		{"docProps/app.xml", p.appPropsXML()},
		{"ppt/presentation.xml", p.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", p.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML()},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML()},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML()},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML()},
		{"ppt/notesMasters/notesMaster1.xml", notesMasterXML()},
		{"ppt/notesMasters/_rels/notesMaster1.xml.rels", notesMasterRelsXML()},
		{"ppt/theme/theme1.xml", themeXML(p.Theme, 1)},
		{"ppt/theme/theme2.xml", themeXML(p.Theme, 2)},
	}

	for i, s := range p.slides {
		n := i + 1
		parts = append(parts,
			struct{ name, body string }{
				fmt.Sprintf("ppt/slides/slide%d.xml", n),
				slideXML(s, slideCharts[i]),
			},
			struct{ name, body string }{
				fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n),
				slideRelsXML(slideChartStart[i], len(slideCharts[i]), slideNotes[i]),
			},
		)
		if slideNotes[i] > 0 {
			parts = append(parts,
				struct{ name, body string }{
					fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", slideNotes[i]),
					notesSlideXML(s.notes),
				},
				struct{ name, body string }{
					fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", slideNotes[i]),
					notesSlideRelsXML(n),
				},
			)
		}
	}

	for i, c := range charts {
		parts = append(parts, struct{ name, body string }{
			fmt.Sprintf("ppt/charts/chart%d.xml", i+1),
			chartSpaceXML(c),
		})
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.body)); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	return zw.Close()
}

func (p *Presentation) contentTypesXML(chartCount int, slideNotes []int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/notesMasters/notesMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme2.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	for _, n := range slideNotes {
		if n > 0 {
			fmt.Fprintf(&b, `<Override PartName="/ppt/notesSlides/notesSlide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"/>`, n)
		}
	}
	for i := 1; i <= chartCount; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/charts/chart%d.xml" ContentType="application/vnd.openxmlformats-officedocument.drawingml.chart+xml"/>`, i)
	}
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString(`</Types>`)
	return b.String()
}

func rootRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="ppt/presentation.xml"/>`, relTypeOfficeDoc)
	fmt.Fprintf(&b, `<Relationship Id="rId2" Type="%s" Target="docProps/core.xml"/>`, relTypeCoreProps)
	fmt.Fprintf(&b, `<Relationship Id="rId3" Type="%s" Target="docProps/app.xml"/>`, relTypeExtProps)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func (p *Presentation) corePropsXML() string {
	created := p.Created
	if created.IsZero() {
		created = time.Now()
	}
	stamp := created.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, xmlEscape(p.Title))
	fmt.Fprintf(&b, `<dc:creator>%s</dc:creator>`, xmlEscape(p.Author))
	fmt.Fprintf(&b, `<dc:subject>%s</dc:subject>`, xmlEscape(p.Subject))
	fmt.Fprintf(&b, `<cp:lastModifiedBy>%s</cp:lastModifiedBy>`, xmlEscape(p.Author))
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, stamp)
	fmt.Fprintf(&b, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, stamp)
	b.WriteString(`</cp:coreProperties>`)
	return b.String()
}

func (p *Presentation) appPropsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"` +
		` xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">`)
	fmt.Fprintf(&b, `<Application>%s</Application>`, xmlEscape(p.Company))
	fmt.Fprintf(&b, `<Slides>%d</Slides>`, len(p.slides))
	b.WriteString(`<PresentationFormat>Widescreen</PresentationFormat>`)
	fmt.Fprintf(&b, `<Company>%s</Company>`, xmlEscape(p.Company))
	b.WriteString(`<ScaleCrop>false</ScaleCrop><LinksUpToDate>false</LinksUpToDate>` +
		`<SharedDoc>false</SharedDoc><HyperlinksChanged>false</HyperlinksChanged>`)
	b.WriteString(`</Properties>`)
	return b.String()
}

func (p *Presentation) presentationXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:notesMasterIdLst><p:notesMasterId r:id="rId2"/></p:notesMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 3+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, slideCX, slideCY)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (p *Presentation) presentationRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="slideMasters/slideMaster1.xml"/>`, relTypeMaster)
	fmt.Fprintf(&b, `<Relationship Id="rId2" Type="%s" Target="notesMasters/notesMaster1.xml"/>`, relTypeNotesMstr)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, 3+i, relTypeSlide, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// slideRelsXML emits the layout relationship, the slide's chart
// relationships (rId2 onward, global part numbers starting at chartStart),
// and the notes relationship last.
func slideRelsXML(chartStart, chartCount, notesNum int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`, relTypeLayout)
	for j := 0; j < chartCount; j++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="../charts/chart%d.xml"/>`,
			2+j, relTypeChart, chartStart+j)
	}
	if notesNum > 0 {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="../notesSlides/notesSlide%d.xml"/>`,
			2+chartCount, relTypeNotesSlide, notesNum)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func slideMasterXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sldMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
		`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
		`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2"` +
		` accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	b.WriteString(`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>`)
	b.WriteString(`<p:txStyles><p:titleStyle/><p:bodyStyle/><p:otherStyle/></p:txStyles>`)
	b.WriteString(`</p:sldMaster>`)
	return b.String()
}

func slideMasterRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`, relTypeLayout)
	fmt.Fprintf(&b, `<Relationship Id="rId2" Type="%s" Target="../theme/theme1.xml"/>`, relTypeTheme)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func slideLayoutXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" type="blank" preserve="1">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld name="Blank"><p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
		`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
		`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sldLayout>`)
	return b.String()
}

func slideLayoutRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="../slideMasters/slideMaster1.xml"/>`, relTypeMaster)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func notesMasterXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:notesMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
		`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
		`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2"` +
		` accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	b.WriteString(`</p:notesMaster>`)
	return b.String()
}

func notesMasterRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="../theme/theme2.xml"/>`, relTypeTheme)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func notesSlideXML(notes string) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:notes xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld><p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
		`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Notes Placeholder 1"/>` +
		`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>` +
		`<p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>` +
		`<p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/>`)
	for _, line := range strings.Split(notes, "\n") {
		fmt.Fprintf(&b, `<a:p><a:r><a:rPr lang="en-US" sz="1200"/><a:t>%s</a:t></a:r></a:p>`, xmlEscape(line))
	}
	b.WriteString(`</p:txBody></p:sp>`)
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:notes>`)
	return b.String()
}

func notesSlideRelsXML(slideNum int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="../notesMasters/notesMaster1.xml"/>`, relTypeNotesMstr)
	fmt.Fprintf(&b, `<Relationship Id="rId2" Type="%s" Target="../slides/slide%d.xml"/>`, relTypeSlide, slideNum)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func themeXML(t ThemeColors, num int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<a:theme xmlns:a="%s" name="DeckForge Theme %d">`, nsA, num)
	b.WriteString(`<a:themeElements><a:clrScheme name="DeckForge">`)
	fmt.Fprintf(&b, `<a:dk1><a:srgbClr val="%s"/></a:dk1>`, hexColor(t.Primary))
	fmt.Fprintf(&b, `<a:lt1><a:srgbClr val="%s"/></a:lt1>`, hexColor(t.Background))
	fmt.Fprintf(&b, `<a:dk2><a:srgbClr val="%s"/></a:dk2>`, hexColor(t.Text))
	b.WriteString(`<a:lt2><a:srgbClr val="EEEEEE"/></a:lt2>`)
	fmt.Fprintf(&b, `<a:accent1><a:srgbClr val="%s"/></a:accent1>`, hexColor(t.Secondary))
	fmt.Fprintf(&b, `<a:accent2><a:srgbClr val="%s"/></a:accent2>`, hexColor(t.Accent))
	fmt.Fprintf(&b, `<a:accent3><a:srgbClr val="%s"/></a:accent3>`, hexColor(t.TextLight))
	b.WriteString(`<a:accent4><a:srgbClr val="8EB4E3"/></a:accent4>` +
		`<a:accent5><a:srgbClr val="B9CDE5"/></a:accent5>` +
		`<a:accent6><a:srgbClr val="D9D9D9"/></a:accent6>` +
		`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>` +
		`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>`)
	b.WriteString(`</a:clrScheme>`)

	fmt.Fprintf(&b, `<a:fontScheme name="DeckForge">`+
		`<a:majorFont><a:latin typeface="%s"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>`+
		`<a:minorFont><a:latin typeface="%s"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>`+
		`</a:fontScheme>`, xmlEscape(t.HeadingFont), xmlEscape(t.BodyFont))

	b.WriteString(`<a:fmtScheme name="Office">` +
		`<a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>` +
		`<a:lnStyleLst>` +
		`<a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
		`<a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
		`<a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
		`</a:lnStyleLst>` +
		`<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle>` +
		`<a:effectStyle><a:effectLst/></a:effectStyle>` +
		`<a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>` +
		`<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst>` +
		`</a:fmtScheme>`)
	b.WriteString(`</a:themeElements></a:theme>`)
	return b.String()
}
