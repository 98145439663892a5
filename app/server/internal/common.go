// Package internal provides shared utilities for server subpackages.
package internal

import (
	"net/http"
	"strings"
	"time"

	"github.com/umputun/themer/app/theme"
)

// PrefersColorSchemeHeader is the client hint carrying the system color scheme preference.
const PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// DefaultCookieMaxAge is used when CookieConfig.MaxAge is not set.
const DefaultCookieMaxAge = 365 * 24 * time.Hour

// CookieConfig defines how the theme preference cookie is written.
type CookieConfig struct {
	Path   string        // cookie path, "/" if empty
	MaxAge time.Duration // cookie lifetime, DefaultCookieMaxAge if zero
	Secure bool          // mark cookie as secure (https only)
}

// CookieStore keeps preferences in browser cookies for a single request/response pair.
// It implements theme.Store.
type CookieStore struct {
	w       http.ResponseWriter
	r       *http.Request
	cfg     CookieConfig
	written map[string]string
}

// NewCookieStore makes a cookie store bound to the given request and response.
func NewCookieStore(w http.ResponseWriter, r *http.Request, cfg CookieConfig) *CookieStore {
	return &CookieStore{w: w, r: r, cfg: cfg, written: map[string]string{}}
}

// Get returns the value written during this request, or the request cookie.
func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		return v, true
	}
	cookie, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

// Set writes the cookie to the response, replacing a cookie with the same name set earlier in this response.
func (s *CookieStore) Set(key, value string) {
	s.written[key] = value

	hdr := s.w.Header()
	prev := hdr.Values("Set-Cookie")
	hdr.Del("Set-Cookie")
	for _, c := range prev {
		if !strings.HasPrefix(c, key+"=") {
			hdr.Add("Set-Cookie", c)
		}
	}

	path, maxAge := s.cfg.Path, s.cfg.MaxAge
	if path == "" {
		path = "/"
	}
	if maxAge <= 0 {
		maxAge = DefaultCookieMaxAge
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     path,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClientHints reads the system color scheme from request client hints. It implements theme.Preference.
type ClientHints struct {
	r *http.Request
}

// NewClientHints makes a preference reader for the request.
func NewClientHints(r *http.Request) *ClientHints {
	return &ClientHints{r: r}
}

// PrefersDark reports whether the client asked for a dark color scheme.
func (h *ClientHints) PrefersDark() bool {
	v := strings.Trim(h.r.Header.Get(PrefersColorSchemeHeader), `" `)
	return strings.EqualFold(v, "dark")
}

// AdvertiseHints asks the browser to send the color scheme hint on subsequent requests.
func AdvertiseHints(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", PrefersColorSchemeHeader)
	w.Header().Set("Critical-CH", PrefersColorSchemeHeader)
	w.Header().Add("Vary", PrefersColorSchemeHeader)
}

// View records what the controller applied to the page. It implements theme.Root and theme.Button.
type View struct {
	Attrs map[string]string
	Label string
}

// SetAttribute records the root element attribute.
func (v *View) SetAttribute(name, value string) {
	if v.Attrs == nil {
		v.Attrs = map[string]string{}
	}
	v.Attrs[name] = value
}

// SetLabel records the toggle button label.
func (v *View) SetLabel(label string) {
	v.Label = label
}

// Theme returns the theme set on the root element.
func (v *View) Theme() string {
	return v.Attrs[theme.RootAttribute]
}

// NewController wires a theme controller to the request cookies, client hints and a fresh view.
func NewController(w http.ResponseWriter, r *http.Request, cfg CookieConfig) (*theme.Controller, *View) {
	view := &View{}
	AdvertiseHints(w)
	return theme.New(NewCookieStore(w, r, cfg), view, view, NewClientHints(r)), view
}
