package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintlabs/glint/core"
)

func testOptions(query string) []CommandOption {
	all := []CommandOption{
		{ID: "submit-form", Name: "Submit form"},
		{ID: "quit", Name: "Quit", Disabled: true, Reason: "blocked"},
	}
	if query == "" {
		return all
	}
	var out []CommandOption
	for _, o := range all {
		if o.ID == query {
			out = append(out, o)
		}
	}
	return out
}

func TestCommandScreenEscPops(t *testing.T) {
	s := NewCommandScreen("tab:app", testOptions, nil)
	_, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop {
		t.Fatalf("esc should close the palette")
	}
}

func TestCommandScreenEnterSelects(t *testing.T) {
	selected := ""
	s := NewCommandScreen("tab:app", testOptions, func(id string) tea.Msg {
		selected = id
		return core.CommandExecuteMsg{CommandID: id}
	})
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter should pop and emit the selection")
	}
	if msg, ok := cmd().(core.CommandExecuteMsg); !ok || msg.CommandID != "submit-form" {
		t.Fatalf("got %#v, want submit-form execute msg", cmd())
	}
	if selected != "submit-form" {
		t.Fatalf("onSelect not invoked")
	}
}
