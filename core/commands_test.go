package core

import (
	"testing"

	"github.com/glintlabs/glint/runtime"
	"github.com/glintlabs/glint/state"
)

func testModel(t *testing.T, cmds []Command) Model {
	t.Helper()
	session := runtime.NewSession(state.NewStore(), nil)
	return NewModel(nil, NewKeyRegistry(nil), NewCommandRegistry(cmds), session, nil)
}

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"tab:app"}},
		{ID: "b", Name: "Beta", Scopes: []string{"tab:state"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := testModel(t, nil)
	resA := reg.Search("", "tab:app", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in tab:app, got %+v", resA)
	}
	resB := reg.Search("", "tab:state", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in tab:state, got %+v", resB)
	}
}

func TestSearchRanksPrefixMatchesFirst(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "restart", Name: "Restart"},
		{ID: "step", Name: "Step"},
	})
	m := testModel(t, nil)
	res := reg.Search("st", "tab:app", &m)
	if len(res) != 2 {
		t.Fatalf("results = %+v, want both commands", res)
	}
	if res[0].CommandID != "step" {
		t.Fatalf("first = %q, want the prefix match ahead of the substring match", res[0].CommandID)
	}
}

func TestExecuteUnknownCommandSuggestsNearest(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "replay-step", Name: "Step Recording"},
		{ID: "quit", Name: "Quit"},
	})
	m := testModel(t, nil)
	cmd := reg.Execute("replay-stpe", &m)
	if cmd == nil {
		t.Fatalf("expected status cmd for unknown command")
	}
	msg, ok := cmd().(StatusMsg)
	if !ok {
		t.Fatalf("got %#v, want StatusMsg", cmd())
	}
	want := `Unknown command "replay-stpe" (did you mean "replay-step"?)`
	if msg.Text != want {
		t.Fatalf("status = %q, want %q", msg.Text, want)
	}
}

func TestSubmitFormCommandDisabledWithoutForms(t *testing.T) {
	m := testModel(t, DefaultCommands())
	results := m.CommandRegistry().Search("submit", "tab:app", &m)
	if len(results) != 1 {
		t.Fatalf("expected one submit command, got %+v", results)
	}
	if !results[0].Disabled {
		t.Fatalf("submit-form should be disabled before any form push")
	}
}

func TestReplayStepDisabledWithoutRecording(t *testing.T) {
	m := testModel(t, DefaultCommands())
	cmd := m.CommandRegistry().Execute("replay-step", &m)
	if cmd == nil {
		t.Fatalf("expected status cmd")
	}
	msg, ok := cmd().(StatusMsg)
	if !ok || msg.Text != "no recording loaded" {
		t.Fatalf("got %#v, want disabled reason", msg)
	}
}
