// Package api provides HTTP handlers for the theme JSON API.
package api

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/server/internal"
)

// Handler handles API requests for /api/theme endpoints.
type Handler struct {
	cookies internal.CookieConfig
}

// themeResponse is the JSON body returned by all theme endpoints.
type themeResponse struct {
	Theme  string   `json:"theme"`
	Icon   string   `json:"icon"`
	Themes []string `json:"themes"`
}

// New creates a new API handler.
func New(cookies internal.CookieConfig) *Handler {
	return &Handler{cookies: cookies}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("POST /theme/next", h.handleNext)
	r.HandleFunc("PUT /theme/{name}", h.handleSet)
}

// handleGet returns the initial theme for the caller.
// GET /api/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctrl, view := internal.NewController(w, r, h.cookies)
	ctrl.Initialize()
	rest.RenderJSON(w, h.response(view))
}

// handleNext advances to the next theme in the cycle.
// POST /api/theme/next
func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	ctrl, view := internal.NewController(w, r, h.cookies)
	ctrl.Initialize()
	next := ctrl.Toggle()
	log.Printf("[DEBUG] api theme toggled to %s", next)
	rest.RenderJSON(w, h.response(view))
}

// handleSet applies the named theme, unknown names are rejected.
// PUT /api/theme/{name}
func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	t, err := enum.ParseTheme(r.PathValue("name"))
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "unknown theme")
		return
	}
	ctrl, view := internal.NewController(w, r, h.cookies)
	ctrl.Apply(t.String())
	log.Printf("[DEBUG] api theme set to %s", t)
	rest.RenderJSON(w, h.response(view))
}

func (h *Handler) response(view *internal.View) themeResponse {
	return themeResponse{Theme: view.Theme(), Icon: view.Label, Themes: enum.ThemeNames}
}
