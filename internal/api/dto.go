package api

import (
	"github.com/starford/sowilo/internal/pptx"
)

// SlideInfo describes one slide in an outline (aliased from the deck builder).
type SlideInfo = pptx.SlideInfo

// OutlineResponse wraps a deck outline preview.
type OutlineResponse struct {
	SlideCount int         `json:"slide_count" example:"4" validate:"required"`
	Slides     []SlideInfo `json:"slides" validate:"required"`
}

// TemplateListResponse wraps the available template names.
type TemplateListResponse struct {
	Templates []string `json:"templates" example:"default,minimal,modern,professional" validate:"required"`
	Default   string   `json:"default" example:"default" validate:"required"`
}
