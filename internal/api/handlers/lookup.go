package handlers

import (
	"net/http"

	"contact-scout/internal/api"
	"contact-scout/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// LookupRequest resolves a contact against live search results.
type LookupRequest struct {
	Contact ContactRequest `json:"contact" validate:"required"`
}

// LookupHandler handles end-to-end lookups through the search provider
type LookupHandler struct {
	lookup    *service.LookupService
	validator *validator.Validate
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookup *service.LookupService) *LookupHandler {
	return &LookupHandler{
		lookup:    lookup,
		validator: validator.New(),
	}
}

// Lookup searches for candidates matching the contact and returns them
// ranked. Candidate acquisition failures map to 502; the caller can
// retry without side effects.
func (h *LookupHandler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	result, err := h.lookup.Lookup(c.Request.Context(), req.Contact.toContact())
	if err != nil {
		api.SendUpstreamError(c, err.Error())
		return
	}

	meta := &api.Meta{Query: result.Query, FromCache: result.FromCache}
	api.SendSuccess(c, http.StatusOK, toMatchResponses(result.Matches), meta)
}
