package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieStore_Get(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		s := NewCookieStore(httptest.NewRecorder(), req, CookieConfig{})
		v, ok := s.Get("theme")
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("request cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "sepia"})
		s := NewCookieStore(httptest.NewRecorder(), req, CookieConfig{})
		v, ok := s.Get("theme")
		assert.True(t, ok)
		assert.Equal(t, "sepia", v)
	})

	t.Run("written value shadows request cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "sepia"})
		s := NewCookieStore(httptest.NewRecorder(), req, CookieConfig{})
		s.Set("theme", "dark")
		v, ok := s.Get("theme")
		assert.True(t, ok)
		assert.Equal(t, "dark", v)
	})
}

func TestCookieStore_Set(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s := NewCookieStore(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody), CookieConfig{})
		s.Set("theme", "dark")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "theme", c.Name)
		assert.Equal(t, "dark", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, 365*24*60*60, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("custom config", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cfg := CookieConfig{Path: "/themer/", MaxAge: time.Hour, Secure: true}
		s := NewCookieStore(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody), cfg)
		s.Set("theme", "light")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "/themer/", cookies[0].Path)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.True(t, cookies[0].Secure)
	})

	t.Run("last write wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		http.SetCookie(rec, &http.Cookie{Name: "other", Value: "keep"})
		s := NewCookieStore(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody), CookieConfig{})
		s.Set("theme", "light")
		s.Set("theme", "dark")

		values := map[string]string{}
		for _, c := range rec.Result().Cookies() {
			values[c.Name] = c.Value
		}
		assert.Equal(t, map[string]string{"other": "keep", "theme": "dark"}, values)
	})
}

func TestClientHints_PrefersDark(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected bool
	}{
		{name: "no header", header: "", expected: false},
		{name: "quoted dark", header: `"dark"`, expected: true},
		{name: "bare dark", header: "dark", expected: true},
		{name: "upper case", header: `"DARK"`, expected: true},
		{name: "light", header: `"light"`, expected: false},
		{name: "garbage", header: "nope", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.header != "" {
				req.Header.Set(PrefersColorSchemeHeader, tc.header)
			}
			assert.Equal(t, tc.expected, NewClientHints(req).PrefersDark())
		})
	}
}

func TestAdvertiseHints(t *testing.T) {
	rec := httptest.NewRecorder()
	AdvertiseHints(rec)
	assert.Equal(t, PrefersColorSchemeHeader, rec.Header().Get("Accept-CH"))
	assert.Equal(t, PrefersColorSchemeHeader, rec.Header().Get("Critical-CH"))
	assert.Contains(t, rec.Header().Values("Vary"), PrefersColorSchemeHeader)
}

func TestNewController(t *testing.T) {
	t.Run("initialize from client hint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set(PrefersColorSchemeHeader, `"dark"`)

		c, view := NewController(rec, req, CookieConfig{})
		assert.Equal(t, "dark", c.Initialize())
		assert.Equal(t, "dark", view.Theme())
		assert.Equal(t, "🌙", view.Label)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "dark", cookies[0].Value)
	})

	t.Run("toggle from cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})

		c, view := NewController(rec, req, CookieConfig{})
		c.Initialize()
		assert.Equal(t, "sepia", c.Toggle())
		assert.Equal(t, "sepia", view.Theme())
		assert.Equal(t, "📜", view.Label)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sepia", cookies[0].Value)
	})
}
