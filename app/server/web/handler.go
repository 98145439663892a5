// Package web provides HTTP handlers for the web UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/server/internal"
	"github.com/umputun/themer/app/theme"
)

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Config holds web handler configuration.
type Config struct {
	BaseURL      string
	Version      string
	CookieConfig internal.CookieConfig
}

// Handler handles web UI requests.
type Handler struct {
	tmpl    *template.Template
	baseURL string
	version string
	cookies internal.CookieConfig
}

// New creates a new web handler.
func New(cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	h := &Handler{
		tmpl:    tmpl,
		baseURL: cfg.BaseURL,
		version: cfg.Version,
		cookies: cfg.CookieConfig,
	}
	if h.cookies.Path == "" {
		h.cookies.Path = h.cookiePath()
	}
	return h, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("")

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	_, err = tmpl.New("base.html").Parse(string(baseContent))
	if err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	partials := []string{"toggle"}
	for _, name := range partials {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		_, parseErr := tmpl.New(name).Parse(string(content))
		if parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Theme    string   // value of the root data-theme attribute
	Icon     string   // toggle button label
	ButtonID string   // toggle button element id
	Themes   []string // all known themes, in cycle order
	BaseURL  string
	Version  string
}

// newTemplateData fills template data from what the controller applied to the view.
func (h *Handler) newTemplateData(view *internal.View) templateData {
	return templateData{
		Theme:    view.Theme(),
		Icon:     view.Label,
		ButtonID: theme.ButtonID,
		Themes:   enum.ThemeNames,
		BaseURL:  h.baseURL,
		Version:  h.version,
	}
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}
