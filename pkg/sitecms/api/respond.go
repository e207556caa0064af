package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"

	"github.com/alsalamah/sitecms/pkg/sitecms"
)

// ErrorResponse is the fixed error shape every endpoint returns on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: message})
}

// sectionResponse flattens a stored section into the admin row shape: the
// payload fields at the top level alongside id and timestamps, matching what
// the admin forms edit.
func sectionResponse(section *sitecms.SiteSection) map[string]any {
	resp := map[string]any{
		"id":         section.ID.String(),
		"kind":       string(section.Kind),
		"created_at": section.CreatedAt,
		"updated_at": section.UpdatedAt,
	}

	fields := map[string]any{}
	if err := json.Unmarshal(section.Payload, &fields); err == nil {
		for k, v := range fields {
			resp[k] = v
		}
	}
	return resp
}
