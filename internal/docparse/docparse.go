// Package docparse turns uploaded document bytes (PDF, DOCX, PPTX) into a
// normalized document.Parsed: plain text, best-effort metadata, and an
// ordered section outline.
package docparse

import (
	"path/filepath"
	"strings"

	"github.com/deckforge/deckforge/internal/document"
)

// Supported MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// SupportedMimeTypes lists the MIME types this service can decode.
var SupportedMimeTypes = map[string]bool{
	MimePDF:  true,
	MimeDOCX: true,
	MimePPTX: true,
}

// IsSupportedMimeType checks if a declared MIME type is supported.
func IsSupportedMimeType(mimeType string) bool {
	return SupportedMimeTypes[mimeType]
}

// MimeTypeForFile maps a filename extension to a supported MIME type.
// Returns the empty string for unrecognized extensions.
func MimeTypeForFile(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".pptx":
		return MimePPTX
	}
	return ""
}

// Decode parses a document buffer according to its declared MIME type.
// The filename is used only for title fallback on the presentation format.
// Returns *UnsupportedFormatError for unknown MIME types and *DecodeError
// when the underlying binary is malformed.
func Decode(data []byte, mimeType, fileName string) (*document.Parsed, error) {
	switch mimeType {
	case MimePDF:
		return decodePDF(data)
	case MimeDOCX:
		return decodeDOCX(data)
	case MimePPTX:
		return decodePPTX(data, fileName)
	default:
		return nil, &UnsupportedFormatError{MimeType: mimeType}
	}
}
