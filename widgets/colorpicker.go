package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glintlabs/glint/state"
)

// ColorPicker is the interactive control for a color_picker widget. Display
// always mirrors the binder; edits go through the binder so the store sees
// every accepted change in the same pass.
type ColorPicker struct {
	binder  *state.Binder
	input   textinput.Model
	editing bool
	errText string
}

func NewColorPicker(binder *state.Binder) *ColorPicker {
	inp := textinput.New()
	inp.Placeholder = "#rrggbb"
	inp.Prompt = "hex> "
	inp.CharLimit = 7
	return &ColorPicker{binder: binder, input: inp}
}

func (c *ColorPicker) WidgetID() string { return c.binder.WidgetID() }
func (c *ColorPicker) Editing() bool    { return c.editing }
func (c *ColorPicker) Value() string    { return c.binder.Value() }

// StartEdit opens the inline editor. The current value shows as the
// placeholder; an empty commit keeps it.
func (c *ColorPicker) StartEdit() tea.Cmd {
	c.editing = true
	c.errText = ""
	c.input.Placeholder = c.binder.Value()
	c.input.SetValue("")
	return c.input.Focus()
}

// Update handles key input while editing. Enter commits, esc cancels.
func (c *ColorPicker) Update(msg tea.Msg) tea.Cmd {
	if !c.editing {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			raw := c.input.Value()
			if strings.TrimSpace(raw) == "" {
				// Empty commit keeps the current value.
				c.editing = false
				c.input.Blur()
				return nil
			}
			c.commit(raw)
			return nil
		case "esc":
			c.editing = false
			c.errText = ""
			c.input.Blur()
			return nil
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// commit accepts the edit when it parses as a hex color. The binder itself
// never validates; malformed input is rejected here before it counts as an
// accepted change.
func (c *ColorPicker) commit(raw string) {
	hex, err := NormalizeHex(raw)
	if err != nil {
		c.errText = err.Error()
		return
	}
	c.editing = false
	c.errText = ""
	c.input.Blur()
	c.binder.SetFromUI(hex)
}

func (c *ColorPicker) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	def := c.binder.Definition()
	value := c.binder.Value()

	label := lipgloss.NewStyle().Bold(true).Render(def.Label)
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("    ")
	line := label + "  " + swatch + " " + value
	if def.FormID != "" {
		line += lipgloss.NewStyle().Faint(true).Render("  [form: " + def.FormID + "]")
	}

	rows := []string{ansi.Truncate(line, width, "")}
	if c.editing {
		rows = append(rows, ansi.Truncate(c.input.View(), width, ""))
		if c.errText != "" {
			rows = append(rows, ansi.Truncate(lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Render(c.errText), width, ""))
		}
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

// NormalizeHex canonicalizes user input to lowercase #rrggbb.
func NormalizeHex(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return "", fmt.Errorf("color must be 6 hex digits, got %q", raw)
	}
	for _, ch := range s {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return "", fmt.Errorf("invalid hex digit %q in %q", string(ch), raw)
		}
	}
	return "#" + s, nil
}
