package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/alsalamah/sitecms/pkg/sitecms"
)

// SiteHandler serves the public site's aggregated data endpoint.
type SiteHandler struct {
	service sitecms.Service
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(service sitecms.Service) *SiteHandler {
	return &SiteHandler{service: service}
}

// GetData returns the full site snapshot. Missing sections appear as null;
// the call only fails on a persistence error.
func (h *SiteHandler) GetData(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.GetSiteSnapshot(r.Context())
	if err != nil {
		slog.Error("Failed to fetch site snapshot", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch data")
		return
	}
	render.JSON(w, r, snapshot)
}
