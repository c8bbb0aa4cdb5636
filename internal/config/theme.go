package config

import "sort"

// Theme names accepted by display.background.
const (
	ThemeBlack    = "black"
	ThemeWhite    = "white"
	ThemeDarkCyan = "darkcyan"
)

// Theme is a background color with its inverted foreground, as hex strings.
type Theme struct {
	Name       string
	Background string
	Foreground string
}

var themes = map[string]Theme{
	ThemeBlack:    {Name: ThemeBlack, Background: "#000000", Foreground: "#ffffff"},
	ThemeWhite:    {Name: ThemeWhite, Background: "#ffffff", Foreground: "#000000"},
	ThemeDarkCyan: {Name: ThemeDarkCyan, Background: "#20586e", Foreground: "#dfa791"},
}

// LookupTheme returns the theme with the given name.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ThemeNames returns all theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
