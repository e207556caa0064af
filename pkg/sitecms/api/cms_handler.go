package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/alsalamah/sitecms/pkg/sitecms"
)

// CMSHandler serves the general CMS surface: key/value config, the menu
// tree, generic sections, and admin users.
type CMSHandler struct {
	service sitecms.Service
}

// NewCMSHandler creates a new CMS handler
func NewCMSHandler(service sitecms.Service) *CMSHandler {
	return &CMSHandler{service: service}
}

// Routes returns the routes for the CMS surface
func (h *CMSHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/config", h.GetConfig)
	r.Post("/config", h.UpsertConfig)
	r.Get("/menu", h.GetMenu)
	r.Post("/menu", h.CreateMenuItem)
	r.Get("/sections", h.ListSections)
	r.Post("/sections", h.CreateSection)
	r.Get("/users", h.ListUsers)
	r.Post("/users", h.CreateUser)

	return r
}

// GetConfig returns all config entries as a key/value map, or a single entry
// when ?key= is given (null when the key does not exist).
func (h *CMSHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("key"); key != "" {
		entry, err := h.service.GetConfigEntry(r.Context(), key)
		if err != nil {
			slog.Error("Failed to fetch config entry", "key", key, "error", err)
			renderError(w, r, http.StatusInternalServerError, "Failed to fetch site configuration")
			return
		}
		if entry == nil {
			render.JSON(w, r, nil)
			return
		}
		render.JSON(w, r, entry)
		return
	}

	values, err := h.service.ListConfigValues(r.Context())
	if err != nil {
		slog.Error("Failed to fetch config entries", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch site configuration")
		return
	}
	render.JSON(w, r, values)
}

// UpsertConfig creates or updates one key/value entry.
func (h *CMSHandler) UpsertConfig(w http.ResponseWriter, r *http.Request) {
	var req sitecms.UpsertConfigEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid configuration payload")
		return
	}

	entry, err := h.service.UpsertConfigEntry(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update config entry", "key", req.Key, "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to update site configuration")
		return
	}
	render.JSON(w, r, entry)
}

// GetMenu returns only active top-level items, each with its own active
// children, ordered ascending by order.
func (h *CMSHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.ListActiveMenu(r.Context())
	if err != nil {
		slog.Error("Failed to fetch menu items", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch menu items")
		return
	}
	render.JSON(w, r, menu)
}

// CreateMenuItemRequest is the request body for creating a menu item.
type CreateMenuItemRequest struct {
	Title    string  `json:"title"`
	Href     *string `json:"href"`
	Order    int     `json:"order"`
	IsActive *bool   `json:"isActive"`
	ParentID *string `json:"parentId"`
}

// CreateMenuItem creates one menu item.
func (h *CMSHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid menu item payload")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item, err := h.service.CreateMenuItem(r.Context(), sitecms.CreateMenuItemRequest{
		Title:     req.Title,
		Href:      req.Href,
		SortOrder: req.Order,
		IsActive:  isActive,
		ParentID:  req.ParentID,
	})
	if err != nil {
		if errors.Is(err, sitecms.ErrMenuParentNotFound) {
			renderError(w, r, http.StatusBadRequest, "Parent menu item not found")
			return
		}
		slog.Error("Failed to create menu item", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to create menu item")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, item)
}

// ListSections returns generic sections filtered by ?name= and ?active=,
// ordered by order ascending.
func (h *CMSHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	var filter sitecms.SectionFilter

	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	if active := r.URL.Query().Get("active"); active != "" {
		parsed, err := strconv.ParseBool(active)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, "Invalid active filter")
			return
		}
		filter.IsActive = &parsed
	}

	sections, err := h.service.ListSections(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to fetch sections", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch sections")
		return
	}
	render.JSON(w, r, sections)
}

// CreateSectionRequest is the request body for creating a generic section.
// Data is accepted as arbitrary JSON and stored as-is.
type CreateSectionRequest struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Content     string          `json:"content"`
	SectionType string          `json:"sectionType"`
	Data        json.RawMessage `json:"data,omitempty"`
	IsActive    *bool           `json:"isActive"`
	Order       int             `json:"order"`
}

// CreateSection creates one generic section.
func (h *CMSHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req CreateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid section payload")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	section, err := h.service.CreateSection(r.Context(), sitecms.CreateSectionRequest{
		Name:        req.Name,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Content:     req.Content,
		SectionType: sitecms.SectionType(req.SectionType),
		Data:        req.Data,
		IsActive:    isActive,
		SortOrder:   req.Order,
	})
	if err != nil {
		if errors.Is(err, sitecms.ErrSectionNameExists) {
			renderError(w, r, http.StatusConflict, "Section name already exists")
			return
		}
		slog.Error("Failed to create section", "name", req.Name, "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to create section")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, section)
}

// ListUsers returns all admin users. Password hashes are never serialized.
func (h *CMSHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		slog.Error("Failed to fetch users", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	render.JSON(w, r, users)
}

// CreateUserRequest is the request body for creating an admin user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IsActive *bool  `json:"isActive"`
}

// CreateUser creates one admin user with a hashed password.
func (h *CMSHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid user payload")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user, err := h.service.CreateUser(r.Context(), sitecms.CreateUserRequest{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     sitecms.UserRole(req.Role),
		IsActive: isActive,
	})
	if err != nil {
		if errors.Is(err, sitecms.ErrEmailExists) {
			renderError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		slog.Error("Failed to create user", "email", req.Email, "error", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, user)
}
