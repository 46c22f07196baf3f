package docparse

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range entries {
		f, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := f.Write([]byte(body)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func slideEntry(text string) string {
	return `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"` +
		` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">` +
		`<a:t>` + text + `</a:t></p:sld>`
}

func TestDecodePPTXNumericSlideOrder(t *testing.T) {
	// slide10 sorts after slide2 numerically, even though it lists first
	// lexicographically.
	data := buildZip(t, map[string]string{
		"ppt/slides/slide10.xml": slideEntry("tenth slide"),
		"ppt/slides/slide1.xml":  slideEntry("first slide"),
		"ppt/slides/slide2.xml":  slideEntry("second slide"),
		"ppt/slides/_rels/x":     "not a slide",
	})

	parsed, err := decodePPTX(data, "Quarterly Review.pptx")
	if err != nil {
		t.Fatalf("decodePPTX: %v", err)
	}

	want := "first slide\n\n---\n\nsecond slide\n\n---\n\ntenth slide"
	if parsed.Text != want {
		t.Errorf("text = %q, want %q", parsed.Text, want)
	}
	if parsed.Metadata.Title != "Quarterly Review" {
		t.Errorf("title = %q, want %q", parsed.Metadata.Title, "Quarterly Review")
	}
	if len(parsed.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(parsed.Sections))
	}
	if parsed.Sections[0].Title != "Presentation Content" {
		t.Errorf("section title = %q, want Presentation Content", parsed.Sections[0].Title)
	}
}

func TestDecodePPTXNoText(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": slideEntry(""),
	})
	if _, err := decodePPTX(data, "empty.pptx"); err == nil {
		t.Fatal("expected error for presentation with no text")
	}
}

func TestSlideNumber(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"ppt/slides/slide1.xml", 1},
		{"ppt/slides/slide42.xml", 42},
		{"ppt/slides/_rels/slide1.xml.rels", 0},
		{"ppt/slideMasters/slideMaster1.xml", 0},
		{"docProps/core.xml", 0},
	}
	for _, tt := range tests {
		if got := slideNumber(tt.name); got != tt.want {
			t.Errorf("slideNumber(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestExtractBrandStyle(t *testing.T) {
	theme := `<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Test">` +
		`<a:themeElements><a:clrScheme name="Test">` +
		`<a:dk1><a:srgbClr val="112233"/></a:dk1>` +
		`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
		`<a:dk2><a:srgbClr val="445566"/></a:dk2>` +
		`<a:accent1><a:srgbClr val="0066CC"/></a:accent1>` +
		`<a:accent2><a:srgbClr val="00A3E0"/></a:accent2>` +
		`<a:accent3><a:srgbClr val="777777"/></a:accent3>` +
		`</a:clrScheme>` +
		`<a:fontScheme name="Test">` +
		`<a:majorFont><a:latin typeface="Georgia"/></a:majorFont>` +
		`<a:minorFont><a:latin typeface="Arial"/></a:minorFont>` +
		`</a:fontScheme></a:themeElements></a:theme>`

	data := buildZip(t, map[string]string{
		"ppt/theme/theme1.xml":  theme,
		"ppt/slides/slide1.xml": slideEntry("x"),
	})

	style, err := ExtractBrandStyle(data)
	if err != nil {
		t.Fatalf("ExtractBrandStyle: %v", err)
	}

	if style.Colors.Primary != "#112233" {
		t.Errorf("primary = %q, want #112233", style.Colors.Primary)
	}
	if style.Colors.Background != "#FFFFFF" {
		t.Errorf("background = %q, want #FFFFFF (from sysClr lastClr)", style.Colors.Background)
	}
	if style.Colors.Secondary != "#0066CC" {
		t.Errorf("secondary = %q, want #0066CC", style.Colors.Secondary)
	}
	if style.Typography.HeadingFont != "Georgia" || style.Typography.BodyFont != "Arial" {
		t.Errorf("fonts = %q/%q, want Georgia/Arial", style.Typography.HeadingFont, style.Typography.BodyFont)
	}
}

func TestExtractBrandStyleNoTheme(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": slideEntry("x"),
	})
	style, err := ExtractBrandStyle(data)
	if err != nil {
		t.Fatalf("ExtractBrandStyle: %v", err)
	}
	if style.Colors.Primary != "" || style.Typography.HeadingFont != "" {
		t.Errorf("expected empty style without theme entry, got %+v", style)
	}
}

func TestSlideTextIgnoresOtherNamespaces(t *testing.T) {
	xml := `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"` +
		` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">` +
		`<p:t>wrong namespace</p:t><a:t>right namespace</a:t></p:sld>`
	got := slideText([]byte(xml))
	if strings.Contains(got, "wrong") || !strings.Contains(got, "right namespace") {
		t.Errorf("slideText = %q", got)
	}
}
