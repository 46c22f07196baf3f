package docparse

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/internal/document"
	docxlib "github.com/fumiama/go-docx"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// decodeDOCX produces both raw text and a structure-preserving HTML
// rendering from the same source, then derives the section outline by
// scanning the HTML for heading tags.
func decodeDOCX(data []byte) (*document.Parsed, error) {
	doc, err := docxlib.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Format: "docx", Err: err}
	}

	text, htmlSrc := docxToTextAndHTML(doc)
	if strings.TrimSpace(text) == "" {
		return nil, &DecodeError{Format: "docx", Err: errors.New("no extractable text")}
	}

	sections, firstH1, firstStrong := sectionsFromHTML(htmlSrc)
	if len(sections) == 0 {
		sections = []document.Section{{
			ID:      uuid.NewString(),
			Title:   "Document Content",
			Content: text,
			Level:   1,
		}}
	}

	title := firstH1
	if title == "" && len(firstStrong) > 0 && len(firstStrong) < maxHeaderLen {
		title = firstStrong
	}
	if title == "" {
		title = firstShortLine(text, 200)
	}

	return &document.Parsed{
		Text:     text,
		Metadata: document.Metadata{Title: title},
		Sections: sections,
	}, nil
}

// docxToTextAndHTML walks the document body once, emitting plain text and a
// minimal HTML rendering: h1..h6 for heading-styled paragraphs, strong for
// title-ish styles, p for everything else.
func docxToTextAndHTML(doc *docxlib.Docx) (string, string) {
	var textBuf, htmlBuf strings.Builder

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docxlib.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}

		if textBuf.Len() > 0 {
			textBuf.WriteString("\n")
		}
		textBuf.WriteString(text)

		escaped := html.EscapeString(text)
		if level := docxHeadingLevel(para); level > 0 {
			fmt.Fprintf(&htmlBuf, "<h%d>%s</h%d>\n", level, escaped, level)
		} else if docxBoldStyle(para) {
			fmt.Fprintf(&htmlBuf, "<p><strong>%s</strong></p>\n", escaped)
		} else {
			fmt.Fprintf(&htmlBuf, "<p>%s</p>\n", escaped)
		}
	}

	return textBuf.String(), htmlBuf.String()
}

func docxHeadingLevel(para *docxlib.Paragraph) int {
	style := docxStyle(para)
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}

func docxBoldStyle(para *docxlib.Paragraph) bool {
	switch strings.ToLower(docxStyle(para)) {
	case "title", "subtitle", "strong":
		return true
	}
	return false
}

func docxStyle(para *docxlib.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func docxParagraphText(para *docxlib.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docxlib.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docxlib.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// sectionsFromHTML pairs each heading tag with all content up to the next
// heading. Returns the sections plus the first h1 text and first strong-run
// text for title inference.
func sectionsFromHTML(htmlSrc string) (sections []document.Section, firstH1, firstStrong string) {
	root, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, "", ""
	}

	var current *document.Section
	var content []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.Join(strings.Fields(strings.Join(content, " ")), " ")
		sections = append(sections, *current)
		current = nil
		content = nil
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingTagLevel(n.Data); level > 0 {
				flush()
				title := nodeText(n)
				if level == 1 && firstH1 == "" {
					firstH1 = title
				}
				current = &document.Section{ID: uuid.NewString(), Title: title, Level: level}
				return
			}
			if n.Data == "p" {
				if firstStrong == "" {
					firstStrong = findStrong(n)
				}
				if current != nil {
					content = append(content, nodeText(n))
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	flush()

	return sections, firstH1, firstStrong
}

func headingTagLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func findStrong(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "strong" {
		return nodeText(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if s := findStrong(c); s != "" {
			return s
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
