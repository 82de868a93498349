package api

import (
	"cmp"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/markdown"
	"github.com/starford/sowilo/internal/pptx"
)

// Handler holds API route handlers.
type Handler struct {
	resolver        *pptx.Resolver
	defaultTemplate string
}

// NewHandler creates a new Handler.
func NewHandler(resolver *pptx.Resolver, defaultTemplate string) *Handler {
	return &Handler{resolver: resolver, defaultTemplate: defaultTemplate}
}

// readMarkdownBody reads the raw markdown request body with a size cap.
// It writes the error response itself and reports success via ok.
func readMarkdownBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read body"))
		return nil, false
	}
	if strings.TrimSpace(string(body)) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("markdown body is required"))
		return nil, false
	}
	return body, true
}

// template resolves the template query parameter, falling back to the
// configured default.
func (h *Handler) template(r *http.Request) pptx.Template {
	return h.resolver.Resolve(cmp.Or(r.URL.Query().Get("template"), h.defaultTemplate))
}

// Convert handles POST /api/convert.
//
//	@Summary		Convert markdown into a PowerPoint deck
//	@Tags			convert
//	@Accept			plain
//	@Produce		application/vnd.openxmlformats-officedocument.presentationml.presentation
//	@Param			template	query	string	false	"Template name"	Enums(default, professional, modern, minimal)
//	@Param			filename	query	string	false	"Download filename"
//	@Param			body		body	string	true	"Markdown source"
//	@Success		200			{file}	binary
//	@Failure		400			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/convert [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	body, ok := readMarkdownBody(w, r)
	if !ok {
		return
	}
	doc, err := markdown.Parse(body)
	if err != nil {
		if errors.Is(err, apperr.ErrParsing) {
			writeJSON(w, http.StatusBadRequest, errorBody("markdown has no convertible content"))
		} else {
			slog.Error("convert parse failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	deck, err := pptx.FromDocument(doc, h.template(r)).Build()
	if err != nil {
		slog.Error("convert build failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeDeck(w, downloadName(r.URL.Query().Get("filename")), deck)
}

// Outline handles POST /api/outline.
//
//	@Summary		Preview the slide outline for markdown source
//	@Tags			convert
//	@Accept			plain
//	@Produce		json
//	@Param			body	body		string	true	"Markdown source"
//	@Success		200		{object}	OutlineResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/outline [post]
func (h *Handler) Outline(w http.ResponseWriter, r *http.Request) {
	body, ok := readMarkdownBody(w, r)
	if !ok {
		return
	}
	doc, err := markdown.Parse(body)
	if err != nil {
		if errors.Is(err, apperr.ErrParsing) {
			writeJSON(w, http.StatusBadRequest, errorBody("markdown has no convertible content"))
		} else {
			slog.Error("outline parse failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	b := pptx.FromDocument(doc, h.template(r))
	writeJSON(w, http.StatusOK, OutlineResponse{
		SlideCount: b.SlideCount(),
		Slides:     b.Outline(),
	})
}

// ListTemplates handles GET /api/templates.
//
//	@Summary		List available slide templates
//	@Tags			templates
//	@Produce		json
//	@Success		200	{object}	TemplateListResponse
//	@Security		BearerAuth
//	@Router			/templates [get]
func (h *Handler) ListTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, TemplateListResponse{
		Templates: h.resolver.Names(),
		Default:   h.defaultTemplate,
	})
}

// downloadName sanitizes a requested download filename, defaulting to
// presentation.pptx and forcing the extension.
func downloadName(raw string) string {
	name := filepath.Base(strings.TrimSpace(raw))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "presentation.pptx"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pptx") {
		name += ".pptx"
	}
	return name
}
