package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintlabs/glint/protocol"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

// PushMsg carries one script push for the session to apply.
type PushMsg struct {
	Push protocol.Push
}

// ReplayDoneMsg signals that the recording has no more pushes.
type ReplayDoneMsg struct{}

// FormSubmittedMsg reports a submit handled by the store.
type FormSubmittedMsg struct {
	FormID    string
	Committed int
	Cleared   bool
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
