package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alsalamah/sitecms/pkg/sitecms"
	"github.com/alsalamah/sitecms/pkg/sitecms/repo/memory"
)

func setupAdminServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc, err := sitecms.New(
		sitecms.WithRepository(memory.New()),
		sitecms.WithBcryptCost(bcrypt.MinCost),
	)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Mount("/api/admin", NewAdminHandler(svc).Routes())

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAdminSectionEndpoints(t *testing.T) {
	server := setupAdminServer(t)

	t.Run("GetBeforeSaveReturnsNull", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/admin/hero")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body any
		decodeBody(t, resp, &body)
		assert.Nil(t, body)
	})

	t.Run("SaveThenGetRoundTrip", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/admin/hero", map[string]any{
			"title":      "Al Salamah",
			"subtitle":   "Transportation",
			"yearText":   "Since 1995",
			"scrollText": "Scroll",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var saved map[string]any
		decodeBody(t, resp, &saved)
		assert.Equal(t, "Al Salamah", saved["title"])
		assert.NotEmpty(t, saved["id"])
		assert.Equal(t, "hero", saved["kind"])

		getResp, err := http.Get(server.URL + "/api/admin/hero")
		require.NoError(t, err)
		var got map[string]any
		decodeBody(t, getResp, &got)
		assert.Equal(t, saved["id"], got["id"])
		assert.Equal(t, "Since 1995", got["yearText"])
	})

	t.Run("SecondSaveKeepsIdentity", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/admin/truck-reveal", map[string]any{"content": "v1"})
		var first map[string]any
		decodeBody(t, resp, &first)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, http.MethodPost, server.URL+"/api/admin/truck-reveal", map[string]any{"content": "v2"})
		var second map[string]any
		decodeBody(t, resp, &second)

		assert.Equal(t, first["id"], second["id"])
		assert.Equal(t, "v2", second["content"])
	})

	t.Run("InvalidPayloadRejected", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/admin/stats", map[string]any{"stats": "nope"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Invalid stats section payload", body.Error)
	})

	t.Run("AllSectionSlugsRegistered", func(t *testing.T) {
		for _, slug := range []string{"hero", "services", "stats", "showcase", "record", "truck-reveal", "truck-rotation", "coverage"} {
			resp, err := http.Get(server.URL + "/api/admin/" + slug)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", slug)
		}
	})
}

func TestAdminSiteConfigEndpoints(t *testing.T) {
	server := setupAdminServer(t)

	resp, err := http.Get(server.URL + "/api/admin/site-config")
	require.NoError(t, err)
	var empty any
	decodeBody(t, resp, &empty)
	assert.Nil(t, empty)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/admin/site-config", map[string]any{
		"companyName":     "Al Salamah Transportation",
		"parentCompany":   "SBTG",
		"headOfficeEmail": "info@example.com",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var saved map[string]any
	decodeBody(t, resp, &saved)
	assert.Equal(t, "Al Salamah Transportation", saved["companyName"])

	resp = doJSON(t, http.MethodPost, server.URL+"/api/admin/site-config", map[string]any{
		"companyName": "AST",
	})
	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, saved["id"], updated["id"])
	assert.Equal(t, "AST", updated["companyName"])
}
