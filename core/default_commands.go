package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCommands builds the built-in command set. Tabs and main may register
// more on top.
func DefaultCommands() []Command {
	return []Command{
		{
			ID:          "replay-step",
			Name:        "Replay: next push",
			Description: "Apply the next recorded push",
			Execute: func(m *Model) tea.Cmd {
				return m.stepReplay()
			},
			Disabled: func(m *Model) (bool, string) {
				if m.Advance == nil {
					return true, "no recording loaded"
				}
				return false, ""
			},
		},
		{
			ID:          "replay-autoplay",
			Name:        "Replay: toggle autoplay",
			Description: "Apply remaining pushes without stepping",
			Execute: func(m *Model) tea.Cmd {
				m.autoplay = !m.autoplay
				if !m.autoplay {
					return StatusCmd("Autoplay off")
				}
				return tea.Batch(StatusCmd("Autoplay on"), m.stepReplay())
			},
			Disabled: func(m *Model) (bool, string) {
				if m.Advance == nil {
					return true, "no recording loaded"
				}
				return false, ""
			},
		},
		{
			ID:          "submit-form",
			Name:        "Submit form",
			Description: "Commit buffered values for the first declared form",
			Execute: func(m *Model) tea.Cmd {
				forms := m.Session.Forms()
				if len(forms) == 0 {
					return StatusCmd("No form declared")
				}
				sub := m.Session.Store().SubmitForm(forms[0], "")
				return func() tea.Msg {
					return FormSubmittedMsg{FormID: sub.FormID, Committed: len(sub.Committed), Cleared: sub.Cleared}
				}
			},
			Disabled: func(m *Model) (bool, string) {
				if m.Session == nil || len(m.Session.Forms()) == 0 {
					return true, "no form declared"
				}
				return false, ""
			},
		},
		{
			ID:          "theme-dark",
			Name:        "Theme: dark",
			Description: "Switch to the dark palette",
			Execute: func(m *Model) tea.Cmd {
				SetTheme(DarkTheme())
				return StatusCmd("Theme: dark")
			},
		},
		{
			ID:          "theme-light",
			Name:        "Theme: light",
			Description: "Switch to the light palette",
			Execute: func(m *Model) tea.Cmd {
				SetTheme(LightTheme())
				return StatusCmd("Theme: light")
			},
		},
		{
			ID:          "quit",
			Name:        "Quit",
			Description: "Exit the client",
			Execute: func(m *Model) tea.Cmd {
				m.quitting = true
				return tea.Quit
			},
		},
	}
}
