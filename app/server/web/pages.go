package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/server/internal"
)

// handleIndex renders the main page with the initial theme applied.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctrl, view := internal.NewController(w, r, h.cookies)
	ctrl.Initialize()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", h.newTemplateData(view)); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle cycles the theme: light -> dark -> sepia -> light.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	ctrl, _ := internal.NewController(w, r, h.cookies)
	ctrl.Initialize()
	newTheme := ctrl.Toggle()
	log.Printf("[DEBUG] theme toggled to %s", newTheme)

	if r.Header.Get("HX-Request") == "true" {
		// trigger full page refresh
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
}
