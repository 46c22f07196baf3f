package docparse

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/document"
	"github.com/google/uuid"
)

const drawingMLNS = "http://schemas.openxmlformats.org/drawingml/2006/main"

// slideSeparator joins per-slide text in the merged output.
const slideSeparator = "\n\n---\n\n"

// decodePPTX treats the buffer as a zipped-XML archive of per-slide entries.
// Slides are concatenated in embedded numeric order, not directory order.
// No section detection: the whole output is a single flat section.
func decodePPTX(data []byte, fileName string) (*document.Parsed, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Format: "pptx", Err: err}
	}

	slideFiles := make(map[int]*zip.File)
	for _, f := range zr.File {
		if num := slideNumber(f.Name); num > 0 {
			slideFiles[num] = f
		}
	}

	nums := make([]int, 0, len(slideFiles))
	for n := range slideFiles {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	var parts []string
	for _, num := range nums {
		rc, err := slideFiles[num].Open()
		if err != nil {
			continue
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		if text := slideText(raw); text != "" {
			parts = append(parts, text)
		}
	}

	text := strings.Join(parts, slideSeparator)
	if strings.TrimSpace(text) == "" {
		return nil, &DecodeError{Format: "pptx", Err: errors.New("no extractable text")}
	}

	title := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return &document.Parsed{
		Text:     text,
		Metadata: document.Metadata{Title: title},
		Sections: []document.Section{{
			ID:      uuid.NewString(),
			Title:   "Presentation Content",
			Content: text,
			Level:   1,
		}},
	}, nil
}

// slideNumber extracts the numeric index from "ppt/slides/slideN.xml",
// or 0 for any other entry.
func slideNumber(name string) int {
	if !strings.HasPrefix(name, "ppt/slides/slide") || !strings.HasSuffix(name, ".xml") {
		return 0
	}
	name = strings.TrimPrefix(name, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// slideText pulls every inline-text run (a:t) out of one slide's XML.
func slideText(data []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var texts []string
	inRun := false
	var run strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" && t.Name.Space == drawingMLNS {
				inRun = true
				run.Reset()
			}
		case xml.CharData:
			if inRun {
				run.Write(t)
			}
		case xml.EndElement:
			if inRun && t.Name.Local == "t" {
				inRun = false
				if s := strings.TrimSpace(run.String()); s != "" {
					texts = append(texts, s)
				}
			}
		}
	}
	return strings.Join(texts, "\n")
}

// --- Theme extraction for style-guide ingestion ---

type themeXML struct {
	Elements struct {
		ClrScheme struct {
			Dk1     themeColor `xml:"dk1"`
			Lt1     themeColor `xml:"lt1"`
			Dk2     themeColor `xml:"dk2"`
			Accent1 themeColor `xml:"accent1"`
			Accent2 themeColor `xml:"accent2"`
			Accent3 themeColor `xml:"accent3"`
		} `xml:"clrScheme"`
		FontScheme struct {
			Major struct {
				Latin struct {
					Typeface string `xml:"typeface,attr"`
				} `xml:"latin"`
			} `xml:"majorFont"`
			Minor struct {
				Latin struct {
					Typeface string `xml:"typeface,attr"`
				} `xml:"latin"`
			} `xml:"minorFont"`
		} `xml:"fontScheme"`
	} `xml:"themeElements"`
}

type themeColor struct {
	Srgb *struct {
		Val string `xml:"val,attr"`
	} `xml:"srgbClr"`
	Sys *struct {
		LastClr string `xml:"lastClr,attr"`
	} `xml:"sysClr"`
}

func (c themeColor) hex() string {
	if c.Srgb != nil && c.Srgb.Val != "" {
		return "#" + strings.ToUpper(c.Srgb.Val)
	}
	if c.Sys != nil && c.Sys.LastClr != "" {
		return "#" + strings.ToUpper(c.Sys.LastClr)
	}
	return ""
}

// ExtractBrandStyle reads the archive's theme entry and maps its color roles
// and major/minor fonts into a partial brand style. Entries missing from the
// theme are simply omitted; only a malformed archive is an error.
func ExtractBrandStyle(data []byte) (*deck.BrandStyle, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Format: "pptx", Err: err}
	}

	style := &deck.BrandStyle{}
	for _, f := range zr.File {
		if f.Name != "ppt/theme/theme1.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			break
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			break
		}
		var theme themeXML
		if err := xml.Unmarshal(raw, &theme); err != nil {
			break
		}
		cs := theme.Elements.ClrScheme
		style.Colors.Primary = cs.Dk1.hex()
		style.Colors.Secondary = cs.Accent1.hex()
		style.Colors.Accent = cs.Accent2.hex()
		style.Colors.Background = cs.Lt1.hex()
		style.Colors.Text = cs.Dk2.hex()
		style.Colors.TextLight = cs.Accent3.hex()
		style.Typography.HeadingFont = theme.Elements.FontScheme.Major.Latin.Typeface
		style.Typography.BodyFont = theme.Elements.FontScheme.Minor.Latin.Typeface
		break
	}
	return style, nil
}
