package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintlabs/glint/protocol"
	"github.com/glintlabs/glint/runtime"
)

func apply(t *testing.T, s *runtime.Session, pushes ...protocol.Push) {
	t.Helper()
	for _, p := range pushes {
		if err := s.Apply(p); err != nil {
			t.Fatalf("apply %q: %v", p.Type, err)
		}
	}
}

func TestAppTabMountsPickerPerWidget(t *testing.T) {
	m, session := newShellModel(t)
	tab := NewAppTab(session)
	apply(t, session,
		protocol.Push{Type: protocol.PushRunBegin, RunID: "run-1"},
		protocol.Push{Type: protocol.PushWidget, Widget: &protocol.WidgetPayload{
			ID: "picker", Kind: "color_picker", Label: "Pick", Default: "#000000",
		}},
	)

	out := tab.Build(&m).Render(80, 20)
	if !strings.Contains(out, "Pick") || !strings.Contains(out, "#000000") {
		t.Fatalf("widgets pane should show the mounted picker:\n%s", out)
	}

	// Rerun re-declares the widget; the same component must survive.
	apply(t, session,
		protocol.Push{Type: protocol.PushRunBegin, RunID: "run-2"},
		protocol.Push{Type: protocol.PushWidget, Widget: &protocol.WidgetPayload{
			ID: "picker", Kind: "color_picker", Label: "Pick", Default: "#000000",
		}},
		protocol.Push{Type: protocol.PushRunFinished},
	)
	tab.inputs.sync()
	if len(tab.inputs.order) != 1 {
		t.Fatalf("rerun must not mount a second component, got %d", len(tab.inputs.order))
	}
}

func TestAppTabOutputHidesStaleNodes(t *testing.T) {
	m, session := newShellModel(t)
	tab := NewAppTab(session)
	apply(t, session,
		protocol.Push{Type: protocol.PushRunBegin, RunID: "run-1"},
		protocol.Push{Type: protocol.PushElement, Node: &protocol.NodePayload{Kind: "text", Text: "from the old run"}},
	)

	out := tab.Build(&m).Render(80, 20)
	if !strings.Contains(out, "from the old run") {
		t.Fatalf("active run output should render:\n%s", out)
	}

	apply(t, session, protocol.Push{Type: protocol.PushRunBegin, RunID: "run-2"})
	out = tab.Build(&m).Render(80, 20)
	if strings.Contains(out, "from the old run") {
		t.Fatalf("stale output must disappear when a new run begins:\n%s", out)
	}
}

func TestWidgetsPaneEditCommitsThroughBinder(t *testing.T) {
	_, session := newShellModel(t)
	tab := NewAppTab(session)
	apply(t, session,
		protocol.Push{Type: protocol.PushRunBegin, RunID: "run-1"},
		protocol.Push{Type: protocol.PushWidget, Widget: &protocol.WidgetPayload{
			ID: "picker", Kind: "color_picker", Label: "Pick", Default: "#000000",
		}},
	)
	pane := tab.inputs
	pane.sync()

	pane.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	if cur := pane.current(); cur == nil || !cur.Editing() {
		t.Fatalf("e should open the editor on the selected widget")
	}
	for _, r := range "#e91e63" {
		pane.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	pane.Update(tea.KeyMsg{Type: tea.KeyEnter})

	v, ok := session.Store().Get("picker")
	if !ok || v.Raw != "#e91e63" || !v.FromUI {
		t.Fatalf("store = %+v, want #e91e63 fromUI", v)
	}
}
