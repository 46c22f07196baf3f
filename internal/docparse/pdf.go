package docparse

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/deckforge/deckforge/internal/document"
	pdflib "github.com/ledongthuc/pdf"
)

// decodePDF extracts merged full text across all pages plus best-effort
// metadata. Metadata extraction failures are swallowed; a PDF missing
// metadata still parses successfully with absent fields.
func decodePDF(data []byte) (*document.Parsed, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Format: "pdf", Err: err}
	}

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return nil, &DecodeError{Format: "pdf", Err: errors.New("no extractable text")}
	}

	meta := pdfMetadata(reader)
	meta.PageCount = numPages
	if meta.Title == "" {
		meta.Title = firstShortLine(text, 200)
	}

	return &document.Parsed{
		Text:     text,
		Metadata: meta,
		Sections: splitSections(text),
	}, nil
}

// pdfMetadata reads the trailer Info dictionary. The underlying library can
// panic on malformed xref entries, so the whole lookup runs under recover
// and degrades to absent fields.
func pdfMetadata(reader *pdflib.Reader) (meta document.Metadata) {
	defer func() {
		_ = recover()
	}()

	info := reader.Trailer().Key("Info")
	if info.Kind() != pdflib.Dict {
		return meta
	}
	meta.Title = pdfString(info.Key("Title"))
	meta.Author = pdfString(info.Key("Author"))
	if created := parsePDFDate(pdfString(info.Key("CreationDate"))); created != nil {
		meta.CreatedAt = created
	}
	return meta
}

func pdfString(v pdflib.Value) string {
	if v.Kind() != pdflib.String {
		return ""
	}
	return strings.TrimSpace(v.RawString())
}

// parsePDFDate handles the "D:YYYYMMDDHHMMSS" trailer date form.
func parsePDFDate(s string) *time.Time {
	s = strings.TrimPrefix(s, "D:")
	digits := s
	for i, r := range s {
		if r < '0' || r > '9' {
			digits = s[:i]
			break
		}
	}
	for _, layout := range []string{"20060102150405", "200601021504", "20060102"} {
		if len(digits) == len(layout) {
			if t, err := time.Parse(layout, digits); err == nil {
				return &t
			}
		}
	}
	return nil
}
