package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/markdown"
	"github.com/starford/sowilo/internal/pptx"
	"github.com/starford/sowilo/internal/storage"
)

// maxUploadBytes caps multipart markdown uploads.
const maxUploadBytes = 10 << 20 // 10 MB

// ConvertUpload handles POST /api/convert/upload (multipart/form-data, field "file").
// The deck download is named after the uploaded file's stem.
//
//	@Summary		Convert an uploaded markdown file into a PowerPoint deck
//	@Tags			convert
//	@Accept			mpfd
//	@Produce		application/vnd.openxmlformats-officedocument.presentationml.presentation
//	@Param			template	query		string	false	"Template name"	Enums(default, professional, modern, minimal)
//	@Param			file		formData	file	true	"Markdown file"
//	@Success		200			{file}		binary
//	@Failure		400			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/convert/upload [post]
func (h *Handler) ConvertUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return
	}
	defer file.Close()

	name := filepath.Base(header.Filename)
	if !storage.IsMarkdownFile(name) {
		writeJSON(w, http.StatusBadRequest, errorBody("expected a .md or .markdown file"))
		return
	}

	body, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read uploaded file"))
		return
	}

	doc, err := markdown.Parse(body)
	if err != nil {
		if errors.Is(err, apperr.ErrParsing) {
			writeJSON(w, http.StatusBadRequest, errorBody("markdown has no convertible content"))
		} else {
			slog.Error("upload parse failed", slog.String("file", name), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	deck, err := pptx.FromDocument(doc, h.template(r)).Build()
	if err != nil {
		slog.Error("upload convert failed", slog.String("file", name), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeDeck(w, strings.TrimSuffix(name, filepath.Ext(name))+".pptx", deck)
}
