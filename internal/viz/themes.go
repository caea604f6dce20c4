package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the tint of lit and dark pixels plus UI chrome colors.
type Theme struct {
	Name   string
	On     lipgloss.Color
	Off    lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

// Available themes
var (
	ThemePhosphor = Theme{
		Name:   "phosphor",
		On:     lipgloss.Color("#33ff66"), // Green phosphor
		Off:    lipgloss.Color("#001a08"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#ccffcc"),
		Muted:  lipgloss.Color("#2d6b3a"),
	}

	ThemeAmber = Theme{
		Name:   "amber",
		On:     lipgloss.Color("#ffb000"),
		Off:    lipgloss.Color("#1a1000"),
		Accent: lipgloss.Color("#ffd060"),
		Text:   lipgloss.Color("#ffe6b3"),
		Muted:  lipgloss.Color("#7a5a1a"),
	}

	ThemeLCD = Theme{
		Name:   "lcd",
		On:     lipgloss.Color("#1b1f0e"), // Dark segments on backlight
		Off:    lipgloss.Color("#ff8c1a"),
		Accent: lipgloss.Color("#ffa64d"),
		Text:   lipgloss.Color("#ffe0c2"),
		Muted:  lipgloss.Color("#8a5a2a"),
	}

	ThemeIce = Theme{
		Name:   "ice",
		On:     lipgloss.Color("#a8e6ff"),
		Off:    lipgloss.Color("#001a33"),
		Accent: lipgloss.Color("#00a8cc"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		On:     lipgloss.Color("#ff00ff"), // Magenta
		Off:    lipgloss.Color("#0a0a0a"),
		Accent: lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
	}

	// All available themes
	Themes = []Theme{
		ThemePhosphor,
		ThemeAmber,
		ThemeLCD,
		ThemeIce,
		ThemeCyberpunk,
	}
)

// GetTheme returns a theme by name, falling back to phosphor.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePhosphor
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Pixels returns the lit and dark pixel colors as RGBA.
func (t Theme) Pixels() (on, off color.RGBA) {
	return toRGBA(t.On), toRGBA(t.Off)
}

func toRGBA(c lipgloss.Color) color.RGBA {
	cf, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
