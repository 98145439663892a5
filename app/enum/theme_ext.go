package enum

// UnknownThemeIcon is the label used for a theme name outside the known set.
const UnknownThemeIcon = "🌓"

// Next returns the next theme in the cycle: light -> dark -> sepia -> light.
func (t Theme) Next() Theme {
	return ThemeValues[(t.Index()+1)%len(ThemeValues)]
}

// Icon returns the toggle button label for the theme.
func (t Theme) Icon() string {
	switch t {
	case ThemeLight:
		return "☀️"
	case ThemeDark:
		return "🌙"
	case ThemeSepia:
		return "📜"
	default:
		return UnknownThemeIcon
	}
}

// Icon returns the toggle button label for a raw theme name, falling back to UnknownThemeIcon.
func Icon(name string) string {
	t, err := ParseTheme(name)
	if err != nil {
		return UnknownThemeIcon
	}
	return t.Icon()
}
