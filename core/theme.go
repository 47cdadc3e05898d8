package core

import "github.com/charmbracelet/lipgloss"

// Theme carries every color the shell draws with. Tabs and widgets read it
// through CurrentTheme so a config override lands everywhere at once.
type Theme struct {
	Name     string
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface  lipgloss.Color
	Accent   lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
	TabOff   lipgloss.Color
	Selected lipgloss.Color
	Focused  lipgloss.Color
}

func DarkTheme() Theme {
	return Theme{
		Name:     "dark",
		Text:     "#cdd6f4",
		Muted:    "#a6adc8",
		Border:   "#585b70",
		Base:     "#1e1e2e",
		Mantle:   "#181825",
		Surface:  "#313244",
		Accent:   "#89b4fa",
		Success:  "#a6e3a1",
		Warning:  "#f9e2af",
		Error:    "#f38ba8",
		TabOff:   "#7f849c",
		Selected: "#89b4fa",
		Focused:  "#a6e3a1",
	}
}

func LightTheme() Theme {
	return Theme{
		Name:     "light",
		Text:     "#4c4f69",
		Muted:    "#6c6f85",
		Border:   "#acb0be",
		Base:     "#eff1f5",
		Mantle:   "#e6e9ef",
		Surface:  "#ccd0da",
		Accent:   "#1e66f5",
		Success:  "#40a02b",
		Warning:  "#df8e1d",
		Error:    "#d20f39",
		TabOff:   "#8c8fa1",
		Selected: "#1e66f5",
		Focused:  "#40a02b",
	}
}

// ThemeOverrides are the optional color knobs exposed through config. Empty
// fields keep the base theme's value.
type ThemeOverrides struct {
	Base                string
	PrimaryColor        string
	BackgroundColor     string
	SecondaryBackground string
	TextColor           string
	BorderColor         string
}

// BuildTheme resolves a base theme by name and applies the overrides.
func BuildTheme(o ThemeOverrides) Theme {
	t := DarkTheme()
	if o.Base == "light" {
		t = LightTheme()
	}
	if o.PrimaryColor != "" {
		c := lipgloss.Color(o.PrimaryColor)
		t.Accent = c
		t.Selected = c
	}
	if o.BackgroundColor != "" {
		t.Base = lipgloss.Color(o.BackgroundColor)
	}
	if o.SecondaryBackground != "" {
		c := lipgloss.Color(o.SecondaryBackground)
		t.Mantle = c
		t.Surface = c
	}
	if o.TextColor != "" {
		t.Text = lipgloss.Color(o.TextColor)
	}
	if o.BorderColor != "" {
		t.Border = lipgloss.Color(o.BorderColor)
	}
	return t
}

var theme = DarkTheme()

// SetTheme installs a theme and rebuilds the shell styles.
func SetTheme(t Theme) {
	theme = t
	rebuildStyles()
}

func CurrentTheme() Theme { return theme }
