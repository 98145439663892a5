package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themer/app/server/internal"
)

func TestNew(t *testing.T) {
	t.Run("default cookie path", func(t *testing.T) {
		h, err := New(Config{})
		require.NoError(t, err)
		assert.Equal(t, "/", h.cookies.Path)
		assert.NotNil(t, h.tmpl.Lookup("base.html"))
		assert.NotNil(t, h.tmpl.Lookup("toggle"))
	})

	t.Run("cookie path follows base URL", func(t *testing.T) {
		h, err := New(Config{BaseURL: "/themer"})
		require.NoError(t, err)
		assert.Equal(t, "/themer/", h.cookies.Path)
	})

	t.Run("explicit cookie path kept", func(t *testing.T) {
		h, err := New(Config{BaseURL: "/themer", CookieConfig: internal.CookieConfig{Path: "/custom/"}})
		require.NoError(t, err)
		assert.Equal(t, "/custom/", h.cookies.Path)
	})
}

func TestStaticFS(t *testing.T) {
	sfs, err := StaticFS()
	require.NoError(t, err)
	data, err := fs.ReadFile(sfs, "style.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), `[data-theme="sepia"]`)
}

func TestHandler_URL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
	}{
		{name: "empty base URL", baseURL: "", path: "/web/theme", want: "/web/theme"},
		{name: "with base URL", baseURL: "/themer", path: "/web/theme", want: "/themer/web/theme"},
		{name: "nested base URL", baseURL: "/app/themer", path: "/", want: "/app/themer/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandlerWithBaseURL(t, tc.baseURL)
			assert.Equal(t, tc.want, h.url(tc.path))
		})
	}
}

func TestHandler_CookiePath(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "empty base URL", baseURL: "", want: "/"},
		{name: "with base URL", baseURL: "/themer", want: "/themer/"},
		{name: "nested base URL", baseURL: "/app/themer", want: "/app/themer/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandlerWithBaseURL(t, tc.baseURL)
			assert.Equal(t, tc.want, h.cookiePath())
		})
	}
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return newTestHandlerWithBaseURL(t, "")
}

// newTestHandlerWithBaseURL creates a test handler with a specific base URL.
func newTestHandlerWithBaseURL(t *testing.T, baseURL string) *Handler {
	t.Helper()
	h, err := New(Config{BaseURL: baseURL, Version: "test"})
	require.NoError(t, err)
	return h
}
