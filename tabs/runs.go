package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/core"
	"github.com/glintlabs/glint/widgets"
)

// RunRow is one persisted script run.
type RunRow struct {
	RunID     string
	StartedAt string
	EndedAt   string
	Active    bool
}

// RunsTab lists the run history loaded from the session database.
type RunsTab struct {
	load func() ([]RunRow, error)
	rows []RunRow
	err  error
}

func NewRunsTab(load func() ([]RunRow, error)) *RunsTab {
	return &RunsTab{load: load}
}

func (t *RunsTab) ID() string    { return "runs" }
func (t *RunsTab) Title() string { return "Runs" }
func (t *RunsTab) Scope() string { return "tab:runs" }

func (t *RunsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }

func (t *RunsTab) refresh() {
	if t.load == nil {
		return
	}
	t.rows, t.err = t.load()
}

func (t *RunsTab) Build(m *core.Model) widgets.Widget {
	t.refresh()
	return runsWidget{tab: t}
}

type runsWidget struct {
	tab *RunsTab
}

func (w runsWidget) Render(width, height int) string {
	th := core.CurrentTheme()
	var lines []string
	if w.tab.err != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(th.Error).Render("! "+w.tab.err.Error()))
	}
	for _, r := range w.tab.rows {
		id := r.RunID
		if len(id) > 8 {
			id = id[:8]
		}
		line := id + "  " + r.StartedAt
		if r.EndedAt != "" {
			line += " → " + r.EndedAt
		}
		if r.Active {
			line = lipgloss.NewStyle().Foreground(th.Success).Render(line + "  (active)")
		}
		lines = append(lines, line)
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = lipgloss.NewStyle().Foreground(th.Muted).Render("No runs recorded")
	}
	return widgets.Pane{Title: "Run History", Height: height, Content: content}.Render(width, height)
}
