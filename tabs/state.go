package tabs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/core"
	"github.com/glintlabs/glint/runtime"
	"github.com/glintlabs/glint/state"
	"github.com/glintlabs/glint/widgets"
)

// StateTab inspects the widget value store: every entry with its provenance,
// plus the declared forms.
type StateTab struct {
	host PaneHost
}

func NewStateTab(session *runtime.Session) *StateTab {
	return &StateTab{host: NewPaneHost(
		newValuesPane(session.Store()),
		&formsPane{session: session},
	)}
}

func (t *StateTab) ID() string    { return "state" }
func (t *StateTab) Title() string { return "State" }
func (t *StateTab) Scope() string {
	if s := t.host.Scope(); s != "" {
		return s
	}
	return "tab:state"
}
func (t *StateTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *StateTab) InitTab(m *core.Model) tea.Cmd {
	return t.host.Init()
}
func (t *StateTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *StateTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(msg)
}
func (t *StateTab) Build(m *core.Model) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("values"), t.host.BuildPane("forms")},
		Ratios:  []float64{0.68, 0.32},
		Gap:     1,
	}
}

// valuesPane shows the store snapshot in a scrollable table.
type valuesPane struct {
	store *state.Store
	table table.Model
}

func newValuesPane(store *state.Store) *valuesPane {
	cols := []table.Column{
		{Title: "Widget", Width: 24},
		{Title: "Value", Width: 12},
		{Title: "From", Width: 7},
		{Title: "Fragment", Width: 12},
	}
	tbl := table.New(table.WithColumns(cols), table.WithHeight(12))
	st := table.DefaultStyles()
	st.Selected = st.Selected.Foreground(core.CurrentTheme().Accent).Bold(true)
	tbl.SetStyles(st)
	return &valuesPane{store: store, table: tbl}
}

func (p *valuesPane) refresh() {
	entries := p.store.Snapshot()
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		from := "script"
		if e.Value.FromUI {
			from = "ui"
		}
		rows = append(rows, table.Row{e.WidgetID, e.Value.Raw, from, e.Value.FragmentID})
	}
	p.table.SetRows(rows)
}

func (p *valuesPane) ID() string      { return "values" }
func (p *valuesPane) Title() string   { return "Widget Values" }
func (p *valuesPane) Scope() string   { return "pane:state:values" }
func (p *valuesPane) Focusable() bool { return true }
func (p *valuesPane) Init() tea.Cmd   { return nil }
func (p *valuesPane) OnFocus() tea.Cmd {
	p.table.Focus()
	return nil
}
func (p *valuesPane) OnBlur() tea.Cmd {
	p.table.Blur()
	return nil
}
func (p *valuesPane) Update(msg tea.Msg) (Pane, tea.Cmd) {
	p.refresh()
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}
func (p *valuesPane) View(width, height int, selected, focused bool) string {
	p.refresh()
	p.table.SetHeight(maxOf(3, height-4))
	return widgets.Pane{Title: p.Title(), Height: height, Content: p.table.View(), Selected: selected, Focused: focused}.Render(width, height)
}

// formsPane lists declared forms and their submit behavior.
type formsPane struct {
	session *runtime.Session
}

func (p *formsPane) ID() string                         { return "forms" }
func (p *formsPane) Title() string                      { return "Forms" }
func (p *formsPane) Scope() string                      { return "pane:state:forms" }
func (p *formsPane) Focusable() bool                    { return false }
func (p *formsPane) Init() tea.Cmd                      { return nil }
func (p *formsPane) OnFocus() tea.Cmd                   { return nil }
func (p *formsPane) OnBlur() tea.Cmd                    { return nil }
func (p *formsPane) Update(msg tea.Msg) (Pane, tea.Cmd) { return p, nil }

func (p *formsPane) View(width, height int, selected, focused bool) string {
	store := p.session.Store()
	lines := make([]string, 0, 8)
	for _, formID := range p.session.Forms() {
		behavior := "keep values"
		if store.ClearsOnSubmit(formID) {
			behavior = "clear on submit"
		}
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(formID))
		lines = append(lines, fmt.Sprintf("  %s, %d widget(s)", behavior, len(store.FormMembers(formID))))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = lipgloss.NewStyle().Foreground(core.CurrentTheme().Muted).Render("No forms declared")
	}
	return widgets.Pane{Title: p.Title(), Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
