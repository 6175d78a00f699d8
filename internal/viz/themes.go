package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a colour scheme for the shared styles. Colours are #rrggbb so
// GradientText can blend them.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
	Label      lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:       "neon",
		Primary:    lipgloss.Color("#00ffff"),
		Secondary:  lipgloss.Color("#00ccff"),
		Accent:     lipgloss.Color("#ff00ff"),
		Background: lipgloss.Color("#1a001a"),
		Border:     lipgloss.Color("#444466"),
		Label:      lipgloss.Color("#888899"),
		Muted:      lipgloss.Color("#666688"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"),
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Border:     lipgloss.Color("#005500"),
		Label:      lipgloss.Color("#00aa00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Border:     lipgloss.Color("#555555"),
		Label:      lipgloss.Color("#aaaaaa"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#00a8cc"),
		Secondary:  lipgloss.Color("#0077be"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Border:     lipgloss.Color("#224466"),
		Label:      lipgloss.Color("#88aacc"),
		Muted:      lipgloss.Color("#4488aa"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffcc00"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"),
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Border:     lipgloss.Color("#5d3b5e"),
		Label:      lipgloss.Color("#c8a8c9"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeNeon, ThemeRetro, ThemeMinimal, ThemeOcean, ThemeSunset}

	current Theme
)

// GetTheme looks a theme up by name.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ApplyTheme switches every shared style to the named theme. Not safe to
// call while other goroutines render.
func ApplyTheme(name string) error {
	t, ok := GetTheme(name)
	if !ok {
		return fmt.Errorf("viz: unknown theme %q (available: %v)", name, ThemeNames())
	}
	applyTheme(t)
	return nil
}

// CurrentTheme returns the theme in use.
func CurrentTheme() Theme { return current }

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
