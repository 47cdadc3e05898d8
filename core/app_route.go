package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushMsg:
		return m.applyPush(msg)
	case ReplayDoneMsg:
		m.Advance = nil
		m.autoplay = false
		m.SetStatus("Recording finished")
		return m, nil
	case FormSubmittedMsg:
		text := fmt.Sprintf("Form %s submitted: %d value(s)", msg.FormID, msg.Committed)
		if msg.Cleared {
			text += ", cleared to defaults"
		}
		m.SetStatus(text)
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, cmd
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			m.screens.ReplaceTop(next)
			return m, cmd
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if len(m.tabs) > 0 {
			if handler, ok := m.tabs[m.activeTab].(PaneKeyHandler); ok {
				handled, cmd := handler.HandlePaneKey(&m, msg)
				if handled {
					return m, cmd
				}
			}
		}
		if m.keys.IsAction(msg, "replay-step", scope) {
			cmd := m.stepReplay()
			return m, cmd
		}
		if m.keys.IsAction(msg, "replay-autoplay", scope) {
			cmd := m.commands.Execute("replay-autoplay", &m)
			return m, cmd
		}
		if m.keys.IsAction(msg, "submit-form", scope) {
			cmd := m.commands.Execute("submit-form", &m)
			return m, cmd
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
				m.SwitchTab(i)
				return m, nil
			}
		}
		if len(m.tabs) > 0 {
			return m, m.tabs[m.activeTab].Update(&m, msg)
		}
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		m.screens.ReplaceTop(next)
		return m, cmd
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

func (m Model) applyPush(msg PushMsg) (tea.Model, tea.Cmd) {
	if m.Session == nil {
		return m, nil
	}
	if err := m.Session.Apply(msg.Push); err != nil {
		m.Log.Warn("push rejected", zap.String("type", string(msg.Push.Type)), zap.Error(err))
		m.SetError(err)
		return m, nil
	}
	m.SetStatus(fmt.Sprintf("Applied %s (run %s)", msg.Push.Type, shortRunID(m.Session.ActiveRunID())))
	if m.autoplay {
		cmd := m.stepReplay()
		return m, cmd
	}
	return m, nil
}

func (m *Model) stepReplay() tea.Cmd {
	if m.Advance == nil {
		m.SetStatus("No recording loaded")
		return nil
	}
	return m.Advance()
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
