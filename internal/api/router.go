package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/sowilo/internal/pptx"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// defaultTemplate names the template used when a request does not pick one.
func NewRouter(resolver *pptx.Resolver, defaultTemplate string, authEnabled bool, token string) chi.Router {
	h := NewHandler(resolver, defaultTemplate)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Conversion.
	r.Post("/convert", h.Convert)
	r.Post("/convert/upload", h.ConvertUpload)
	r.Post("/outline", h.Outline)

	// Templates.
	r.Get("/templates", h.ListTemplates)

	return r
}
