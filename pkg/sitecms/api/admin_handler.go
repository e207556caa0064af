package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/alsalamah/sitecms/pkg/sitecms"
)

// adminSectionRoutes maps URL slugs to singleton section kinds.
var adminSectionRoutes = []struct {
	Slug string
	Kind sitecms.SectionKind
}{
	{"hero", sitecms.SectionHero},
	{"services", sitecms.SectionServices},
	{"stats", sitecms.SectionStats},
	{"showcase", sitecms.SectionShowcase},
	{"record", sitecms.SectionRecord},
	{"truck-reveal", sitecms.SectionTruckReveal},
	{"truck-rotation", sitecms.SectionTruckRotation},
	{"coverage", sitecms.SectionCoverage},
}

// AdminHandler serves the admin panel's section editors: one GET/POST pair
// per singleton section plus the site config singleton.
type AdminHandler struct {
	service sitecms.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service sitecms.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// Routes returns the routes for the admin section editors
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	for _, route := range adminSectionRoutes {
		r.Get("/"+route.Slug, h.getSection(route.Kind))
		r.Post("/"+route.Slug, h.saveSection(route.Kind))
	}

	r.Get("/site-config", h.GetSiteConfig)
	r.Post("/site-config", h.SaveSiteConfig)

	return r
}

// getSection returns the single stored row for the kind, or null when the
// section has never been saved. Absence is not an error.
func (h *AdminHandler) getSection(kind sitecms.SectionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section, err := h.service.GetSiteSection(r.Context(), kind)
		if err != nil {
			slog.Error("Failed to fetch section", "kind", kind, "error", err)
			renderError(w, r, http.StatusInternalServerError, "Failed to fetch "+kind.Label())
			return
		}
		if section == nil {
			render.JSON(w, r, nil)
			return
		}
		render.JSON(w, r, sectionResponse(section))
	}
}

// saveSection upserts the section from the request body. The whole body is
// the payload; it is validated against the kind's schema before storage.
func (h *AdminHandler) saveSection(kind sitecms.SectionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, "Failed to read request body")
			return
		}

		section, err := h.service.SaveSiteSection(r.Context(), sitecms.SaveSectionRequest{
			Kind:    kind,
			Payload: body,
		})
		if err != nil {
			if errors.Is(err, sitecms.ErrInvalidPayload) {
				slog.Error("Invalid section payload", "kind", kind, "error", err)
				renderError(w, r, http.StatusBadRequest, "Invalid "+kind.Label()+" payload")
				return
			}
			slog.Error("Failed to save section", "kind", kind, "error", err)
			renderError(w, r, http.StatusInternalServerError, "Failed to save "+kind.Label())
			return
		}

		slog.Info("Section saved", "kind", kind, "section_id", section.ID.String())
		render.JSON(w, r, sectionResponse(section))
	}
}

// GetSiteConfig returns the site config singleton, or null before first save.
func (h *AdminHandler) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetSiteConfig(r.Context())
	if err != nil {
		slog.Error("Failed to fetch site config", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch site configuration")
		return
	}
	if cfg == nil {
		render.JSON(w, r, nil)
		return
	}
	render.JSON(w, r, cfg)
}

// SaveSiteConfig upserts the site config singleton.
func (h *AdminHandler) SaveSiteConfig(w http.ResponseWriter, r *http.Request) {
	var req sitecms.SaveSiteConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid site configuration payload")
		return
	}

	cfg, err := h.service.SaveSiteConfig(r.Context(), req)
	if err != nil {
		slog.Error("Failed to save site config", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to save site configuration")
		return
	}

	slog.Info("Site config saved", "config_id", cfg.ID.String())
	render.JSON(w, r, cfg)
}
