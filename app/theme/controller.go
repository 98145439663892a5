// Package theme implements the theme controller: it picks the initial theme,
// applies a theme to the page and cycles through the known themes on toggle.
package theme

import (
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/root.go -pkg mocks -skip-ensure -fmt goimports . Root
//go:generate moq -out mocks/button.go -pkg mocks -skip-ensure -fmt goimports . Button
//go:generate moq -out mocks/preference.go -pkg mocks -skip-ensure -fmt goimports . Preference

const (
	// StorageKey is the key of the persisted theme preference.
	StorageKey = "theme"
	// RootAttribute is the attribute set on the document root.
	RootAttribute = "data-theme"
	// ButtonID identifies the toggle button on the page.
	ButtonID = "theme-toggle"
)

// Store is a durable client-side key/value storage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Root is the document root element receiving the theme attribute.
type Root interface {
	SetAttribute(name, value string)
}

// Button is the toggle button showing the theme icon.
type Button interface {
	SetLabel(label string)
}

// Preference reports the system-level color scheme preference.
type Preference interface {
	PrefersDark() bool
}

// Controller owns the current position in the theme cycle.
type Controller struct {
	store   Store
	root    Root
	button  Button
	pref    Preference
	index   int
	current string
}

// New makes a controller over the given host ports. Call Initialize before Toggle.
func New(st Store, root Root, btn Button, pref Preference) *Controller {
	return &Controller{store: st, root: root, button: btn, pref: pref}
}

// Initialize applies the stored preference if present, otherwise dark or light
// depending on the system preference. Returns the applied theme name.
// A stored name outside the known set is applied as is, but the cycle starts from the first theme.
func (c *Controller) Initialize() string {
	name, ok := c.store.Get(StorageKey)
	if !ok || name == "" {
		name = enum.ThemeLight.String()
		if c.pref.PrefersDark() {
			name = enum.ThemeDark.String()
		}
	}

	c.index = 0
	if t, err := enum.ParseTheme(name); err == nil {
		c.index = t.Index()
	} else {
		log.Printf("[DEBUG] unknown stored theme %q, cycle starts from %s", name, enum.ThemeValues[0])
	}
	c.Apply(name)
	return name
}

// Apply sets the root attribute, persists the name and updates the button label.
func (c *Controller) Apply(name string) {
	c.root.SetAttribute(RootAttribute, name)
	c.store.Set(StorageKey, name)
	c.button.SetLabel(enum.Icon(name))
	c.current = name
	log.Printf("[DEBUG] applied theme %q", name)
}

// Toggle advances to the next theme in the cycle, wrapping around, and applies it.
func (c *Controller) Toggle() string {
	c.index = (c.index + 1) % len(enum.ThemeValues)
	name := enum.ThemeValues[c.index].String()
	c.Apply(name)
	return name
}

// Current returns the last applied theme name.
func (c *Controller) Current() string {
	return c.current
}
