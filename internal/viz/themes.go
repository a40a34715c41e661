package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the figure viewer and animation player.
type Theme struct {
	Name      string
	TitleFrom lipgloss.Color
	TitleTo   lipgloss.Color
	Trace     lipgloss.Color
	Image     lipgloss.Color
	Legend    lipgloss.Color
	Muted     lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:      "neon",
		TitleFrom: lipgloss.Color("#ff00ff"),
		TitleTo:   lipgloss.Color("#00ffff"),
		Trace:     lipgloss.Color("#00ffff"),
		Image:     lipgloss.Color("#ffffff"),
		Legend:    lipgloss.Color("#ffff00"),
		Muted:     lipgloss.Color("#666666"),
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		TitleFrom: lipgloss.Color("#00ff00"),
		TitleTo:   lipgloss.Color("#88ff88"),
		Trace:     lipgloss.Color("#00ff00"),
		Image:     lipgloss.Color("#88ff88"),
		Legend:    lipgloss.Color("#00cc00"),
		Muted:     lipgloss.Color("#005500"),
	}

	ThemePaper = Theme{
		Name:      "paper",
		TitleFrom: lipgloss.Color("#ffffff"),
		TitleTo:   lipgloss.Color("#cccccc"),
		Trace:     lipgloss.Color("#0088ff"),
		Image:     lipgloss.Color("#ffffff"),
		Legend:    lipgloss.Color("#ffaa00"),
		Muted:     lipgloss.Color("#888888"),
	}

	CurrentTheme = ThemeNeon

	Themes = []Theme{ThemeNeon, ThemePhosphor, ThemePaper}
)

// GetTheme returns the named theme, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
