package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/deckforge/deckforge/internal/docparse"
	"github.com/deckforge/deckforge/internal/document"
	"github.com/deckforge/deckforge/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleUploadDocument accepts a multipart upload, decodes it synchronously
// and stores the parsed document for later deck generation. Re-uploading
// identical bytes returns the existing document id.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)

	mimeType := r.FormValue("mime_type")
	if mimeType == "" {
		mimeType = header.Header.Get("Content-Type")
	}
	if !docparse.IsSupportedMimeType(mimeType) {
		// Browsers often send application/octet-stream; fall back to the
		// extension before rejecting.
		mimeType = docparse.MimeTypeForFile(filename)
	}
	if mimeType == "" {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	parsed, err := docparse.Decode(data, mimeType, filename)
	if err != nil {
		var unsupported *docparse.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "decode failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	doc := &pipeline.StoredDocument{
		ID:          uuid.NewString(),
		Filename:    filename,
		ContentHash: pipeline.ContentHashHex(data),
		Parsed:      parsed,
	}
	docID, duplicate := s.orchestrator.Documents().Put(doc)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"document_id": docID,
		"filename":    filename,
		"duplicate":   duplicate,
		"title":       parsed.Metadata.Title,
		"page_count":  parsed.Metadata.PageCount,
		"sections":    sectionOutline(parsed.Sections),
	})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	doc := s.orchestrator.Documents().Get(docID)
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"document_id": doc.ID,
		"filename":    doc.Filename,
		"metadata":    doc.Parsed.Metadata,
		"sections":    sectionOutline(doc.Parsed.Sections),
	})
}

// sectionOutline trims section bodies down to an outline the client can show
// without shipping the whole document back.
func sectionOutline(sections []document.Section) []map[string]any {
	out := make([]map[string]any, 0, len(sections))
	for _, sec := range sections {
		out = append(out, map[string]any{
			"id":      sec.ID,
			"title":   sec.Title,
			"level":   sec.Level,
			"preview": preview(sec.Content, 200),
		})
	}
	return out
}

func preview(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
