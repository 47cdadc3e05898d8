package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glintlabs/glint/elements"
)

// TextBlock renders a plain text element.
type TextBlock struct {
	Body string
}

func (t TextBlock) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(t.Body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}

// Alert renders a level-colored message line.
type Alert struct {
	Body  string
	Level string
}

func (a Alert) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	color := lipgloss.Color("#89b4fa") // info
	marker := "ℹ"
	switch a.Level {
	case "warning":
		color = lipgloss.Color("#f9e2af")
		marker = "▲"
	case "error":
		color = lipgloss.Color("#f38ba8")
		marker = "✖"
	case "success":
		color = lipgloss.Color("#a6e3a1")
		marker = "✔"
	}
	line := marker + " " + a.Body
	return lipgloss.NewStyle().Foreground(color).Render(ansi.Truncate(line, width, ""))
}

// Celebration renders a one-shot banner (balloons, snow). Exactly one banner
// per allowed node.
type Celebration struct {
	Glyph string
}

func (c Celebration) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	glyph := c.Glyph
	if glyph == "" {
		glyph = "✦"
	}
	cell := glyph + " "
	n := max(1, width/ansi.StringWidth(cell))
	return ansi.Truncate(strings.TrimRight(strings.Repeat(cell, n), " "), width, "")
}

// PickerResolver returns the live input component for a widget id. Input
// components are stateful and owned by the tab, not built per render pass.
type PickerResolver func(widgetID string) (elements.Visual, bool)

// DefaultRegistry wires the built-in element kinds. Input kinds delegate to
// the resolver so reruns keep the same live component.
func DefaultRegistry(resolve PickerResolver) *elements.Registry {
	r := elements.NewRegistry()
	r.Register(elements.KindText, func(n elements.Node) (elements.Visual, error) {
		return TextBlock{Body: n.Text}, nil
	})
	r.Register(elements.KindAlert, func(n elements.Node) (elements.Visual, error) {
		return Alert{Body: n.Text, Level: n.Level}, nil
	})
	r.Register(elements.KindBalloons, func(n elements.Node) (elements.Visual, error) {
		return Celebration{Glyph: "🎈"}, nil
	})
	r.Register(elements.KindSnow, func(n elements.Node) (elements.Visual, error) {
		return Celebration{Glyph: "❄"}, nil
	})
	r.Register(elements.KindColorPicker, func(n elements.Node) (elements.Visual, error) {
		if n.Widget == nil {
			return nil, fmt.Errorf("color_picker node %q has no widget spec", n.ID)
		}
		if resolve == nil {
			return nil, fmt.Errorf("color_picker node %q has no component resolver", n.ID)
		}
		v, ok := resolve(n.Widget.ID)
		if !ok {
			return nil, fmt.Errorf("no mounted component for widget %q", n.Widget.ID)
		}
		return v, nil
	})
	return r
}
