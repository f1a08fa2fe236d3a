package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/filter-clauses/api/v1"
)

// ListSavedFilters returns every saved filter
// (GET /filters)
func (h *Handler) ListSavedFilters(c *gin.Context) {
	filters, err := h.filterSrv.List(c.Request.Context())
	if err != nil {
		respondError(c, zap.S().Named("filter_handler"), "failed to list saved filters", err)
		return
	}

	resp := v1.SavedFilterList{Filters: make([]v1.SavedFilter, 0, len(filters))}
	for _, f := range filters {
		resp.Filters = append(resp.Filters, v1.NewSavedFilter(f))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateSavedFilter validates and stores a filter expression
// (POST /filters)
func (h *Handler) CreateSavedFilter(c *gin.Context) {
	var body v1.SavedFilterCreate
	if !h.bindJSON(c, &body) {
		return
	}

	saved, err := h.filterSrv.Create(c.Request.Context(), body.Name, body.Expression)
	if err != nil {
		respondError(c, zap.S().Named("filter_handler"), "failed to save filter", err)
		return
	}

	c.JSON(http.StatusCreated, v1.NewSavedFilter(*saved))
}

// GetSavedFilter returns one saved filter
// (GET /filters/{id})
func (h *Handler) GetSavedFilter(c *gin.Context, id string) {
	saved, err := h.filterSrv.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, zap.S().Named("filter_handler"), "failed to get saved filter", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewSavedFilter(*saved))
}

// DeleteSavedFilter removes a saved filter
// (DELETE /filters/{id})
func (h *Handler) DeleteSavedFilter(c *gin.Context, id string) {
	if err := h.filterSrv.Delete(c.Request.Context(), id); err != nil {
		respondError(c, zap.S().Named("filter_handler"), "failed to delete saved filter", err)
		return
	}

	c.Status(http.StatusNoContent)
}
