package docparse

import (
	"strings"
	"testing"
)

const docxNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

func docxEntry(paras ...[2]string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="` + docxNS + `"><w:body>`)
	for _, p := range paras {
		b.WriteString(`<w:p>`)
		if p[0] != "" {
			b.WriteString(`<w:pPr><w:pStyle w:val="` + p[0] + `"/></w:pPr>`)
		}
		b.WriteString(`<w:r><w:t>` + p[1] + `</w:t></w:r></w:p>`)
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func buildDOCX(t *testing.T, paras ...[2]string) []byte {
	t.Helper()
	return buildZip(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`,
		"word/document.xml": docxEntry(paras...),
	})
}

func TestDecodeDOCXSections(t *testing.T) {
	data := buildDOCX(t,
		[2]string{"Heading1", "Introduction"},
		[2]string{"", "Opening context for the study."},
		[2]string{"Heading1", "Findings"},
		[2]string{"", "What the analysis showed."},
	)

	parsed, err := Decode(data, MimeDOCX, "study.docx")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if parsed.Metadata.Title != "Introduction" {
		t.Errorf("title = %q, want Introduction", parsed.Metadata.Title)
	}
	want := []struct {
		title   string
		level   int
		content string
	}{
		{"Introduction", 1, "Opening context for the study."},
		{"Findings", 1, "What the analysis showed."},
	}
	if len(parsed.Sections) != len(want) {
		t.Fatalf("got %d sections, want %d: %+v", len(parsed.Sections), len(want), parsed.Sections)
	}
	for i, w := range want {
		s := parsed.Sections[i]
		if s.Title != w.title || s.Level != w.level || s.Content != w.content {
			t.Errorf("section %d = (%q, %d, %q), want (%q, %d, %q)",
				i, s.Title, s.Level, s.Content, w.title, w.level, w.content)
		}
	}
	if !strings.Contains(parsed.Text, "Opening context") || !strings.Contains(parsed.Text, "Findings") {
		t.Errorf("text missing paragraph content: %q", parsed.Text)
	}
}

func TestDecodeDOCXTitleStyleFallback(t *testing.T) {
	data := buildDOCX(t,
		[2]string{"Title", "Project Phoenix"},
		[2]string{"", "Body text with no headings at all."},
	)

	parsed, err := Decode(data, MimeDOCX, "phoenix.docx")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if parsed.Metadata.Title != "Project Phoenix" {
		t.Errorf("title = %q, want Project Phoenix", parsed.Metadata.Title)
	}
	// No headings: the whole text becomes one synthetic section.
	if len(parsed.Sections) != 1 || parsed.Sections[0].Title != "Document Content" {
		t.Fatalf("sections = %+v, want single Document Content section", parsed.Sections)
	}
}

func TestDecodeDOCXEmpty(t *testing.T) {
	if _, err := Decode(buildDOCX(t), MimeDOCX, "empty.docx"); err == nil {
		t.Fatal("expected error for document with no extractable text")
	}
}

func TestSectionsFromHTML(t *testing.T) {
	src := `<h1>Annual Report</h1>
<p>Opening   paragraph with
  extra whitespace.</p>
<h2>Revenue</h2>
<p>Revenue grew.</p>
<p>Margins held.</p>
<h2>Outlook</h2>
<p>Cautious.</p>`

	sections, firstH1, _ := sectionsFromHTML(src)

	if firstH1 != "Annual Report" {
		t.Errorf("firstH1 = %q, want Annual Report", firstH1)
	}

	want := []struct {
		title   string
		level   int
		content string
	}{
		{"Annual Report", 1, "Opening paragraph with extra whitespace."},
		{"Revenue", 2, "Revenue grew. Margins held."},
		{"Outlook", 2, "Cautious."},
	}
	if len(sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(sections), len(want))
	}
	for i, w := range want {
		if sections[i].Title != w.title || sections[i].Level != w.level {
			t.Errorf("section %d = (%q, %d), want (%q, %d)", i, sections[i].Title, sections[i].Level, w.title, w.level)
		}
		if sections[i].Content != w.content {
			t.Errorf("section %d content = %q, want %q", i, sections[i].Content, w.content)
		}
	}
}

func TestSectionsFromHTMLStrongTitle(t *testing.T) {
	src := `<p><strong>Project Phoenix</strong></p>
<p>Body text before any heading.</p>
<h2>Status</h2>
<p>Green.</p>`

	sections, firstH1, firstStrong := sectionsFromHTML(src)

	if firstH1 != "" {
		t.Errorf("firstH1 = %q, want empty", firstH1)
	}
	if firstStrong != "Project Phoenix" {
		t.Errorf("firstStrong = %q, want Project Phoenix", firstStrong)
	}
	// Paragraphs before the first heading belong to no section.
	if len(sections) != 1 || sections[0].Title != "Status" {
		t.Fatalf("sections = %+v, want single Status section", sections)
	}
}

func TestSectionsFromHTMLNoHeadings(t *testing.T) {
	sections, _, _ := sectionsFromHTML("<p>just text</p>")
	if len(sections) != 0 {
		t.Fatalf("got %d sections, want 0 (caller substitutes Document Content)", len(sections))
	}
}

func TestHeadingTagLevel(t *testing.T) {
	tests := []struct {
		tag  string
		want int
	}{
		{"h1", 1}, {"h6", 6}, {"h7", 0}, {"p", 0}, {"html", 0},
	}
	for _, tt := range tests {
		if got := headingTagLevel(tt.tag); got != tt.want {
			t.Errorf("headingTagLevel(%q) = %d, want %d", tt.tag, got, tt.want)
		}
	}
}
