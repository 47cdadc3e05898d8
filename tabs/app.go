package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/core"
	"github.com/glintlabs/glint/elements"
	"github.com/glintlabs/glint/runtime"
	"github.com/glintlabs/glint/widgets"
)

// AppTab shows the script's output feed next to its live input widgets.
type AppTab struct {
	session *runtime.Session
	host    PaneHost
	inputs  *widgetsPane
}

func NewAppTab(session *runtime.Session) *AppTab {
	inputs := newWidgetsPane(session)
	registry := widgets.DefaultRegistry(inputs.resolve)
	output := &outputPane{session: session, registry: registry}
	t := &AppTab{session: session, inputs: inputs}
	t.host = NewPaneHost(output, inputs)
	return t
}

func (t *AppTab) ID() string    { return "app" }
func (t *AppTab) Title() string { return "App" }
func (t *AppTab) Scope() string {
	if s := t.host.Scope(); s != "" {
		return s
	}
	return "tab:app"
}
func (t *AppTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }

func (t *AppTab) InitTab(m *core.Model) tea.Cmd { return t.host.Init() }

func (t *AppTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	t.inputs.sync()
	return t.host.HandlePaneKey(m, msg)
}

func (t *AppTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	t.inputs.sync()
	return t.host.UpdateActive(msg)
}

func (t *AppTab) Build(m *core.Model) widgets.Widget {
	t.inputs.sync()
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("output"), t.host.BuildPane("inputs")},
		Ratios:  []float64{0.62, 0.38},
		Gap:     1,
	}
}

// outputPane renders the gated element feed.
type outputPane struct {
	session  *runtime.Session
	registry *elements.Registry
}

func (p *outputPane) ID() string                         { return "output" }
func (p *outputPane) Title() string                      { return "Output" }
func (p *outputPane) Scope() string                      { return "pane:app:output" }
func (p *outputPane) Focusable() bool                    { return false }
func (p *outputPane) Init() tea.Cmd                      { return nil }
func (p *outputPane) OnFocus() tea.Cmd                   { return nil }
func (p *outputPane) OnBlur() tea.Cmd                    { return nil }
func (p *outputPane) Update(msg tea.Msg) (Pane, tea.Cmd) { return p, nil }

func (p *outputPane) View(width, height int, selected, focused bool) string {
	contentWidth := width - 4
	if contentWidth < 1 {
		contentWidth = 1
	}
	nodes := p.session.VisibleNodes()
	lines := make([]string, 0, len(nodes))
	for _, n := range nodes {
		v, err := p.registry.Build(n)
		if err != nil {
			lines = append(lines, lipgloss.NewStyle().Foreground(core.CurrentTheme().Error).Render("! "+err.Error()))
			continue
		}
		lines = append(lines, v.Render(contentWidth, 3))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = lipgloss.NewStyle().Foreground(core.CurrentTheme().Muted).Render("No output yet. Press n to step the recording.")
	}
	return widgets.Pane{Title: p.Title(), Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

// widgetsPane lists the mounted input widgets and routes edits to them.
type widgetsPane struct {
	session  *runtime.Session
	pickers  map[string]*widgets.ColorPicker
	order    []string
	selected int
}

func newWidgetsPane(session *runtime.Session) *widgetsPane {
	return &widgetsPane{session: session, pickers: map[string]*widgets.ColorPicker{}}
}

// sync mounts a picker component for every binder the session holds. Reruns
// reuse the existing component so edit state survives.
func (p *widgetsPane) sync() {
	for _, b := range p.session.Binders() {
		id := b.WidgetID()
		if _, ok := p.pickers[id]; ok {
			continue
		}
		p.pickers[id] = widgets.NewColorPicker(b)
		p.order = append(p.order, id)
	}
	if p.selected >= len(p.order) {
		p.selected = max(0, len(p.order)-1)
	}
}

func (p *widgetsPane) resolve(widgetID string) (elements.Visual, bool) {
	p.sync()
	c, ok := p.pickers[widgetID]
	return c, ok
}

func (p *widgetsPane) current() *widgets.ColorPicker {
	if p.selected < 0 || p.selected >= len(p.order) {
		return nil
	}
	return p.pickers[p.order[p.selected]]
}

func (p *widgetsPane) ID() string       { return "inputs" }
func (p *widgetsPane) Title() string    { return "Widgets" }
func (p *widgetsPane) Scope() string    { return "pane:app:widgets" }
func (p *widgetsPane) Focusable() bool  { return true }
func (p *widgetsPane) Init() tea.Cmd    { return nil }
func (p *widgetsPane) OnFocus() tea.Cmd { return nil }
func (p *widgetsPane) OnBlur() tea.Cmd {
	if c := p.current(); c != nil && c.Editing() {
		c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	}
	return nil
}

func (p *widgetsPane) Update(msg tea.Msg) (Pane, tea.Cmd) {
	p.sync()
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	cur := p.current()
	if cur != nil && cur.Editing() {
		return p, cur.Update(msg)
	}
	switch key.String() {
	case "j", "down":
		if p.selected < len(p.order)-1 {
			p.selected++
		}
	case "k", "up":
		if p.selected > 0 {
			p.selected--
		}
	case "e", "enter":
		if cur != nil {
			return p, cur.StartEdit()
		}
	}
	return p, nil
}

func (p *widgetsPane) View(width, height int, selected, focused bool) string {
	contentWidth := width - 6
	if contentWidth < 1 {
		contentWidth = 1
	}
	blocks := make([]string, 0, len(p.order))
	for i, id := range p.order {
		marker := "  "
		if i == p.selected {
			marker = "▶ "
		}
		body := p.pickers[id].Render(contentWidth, 4)
		rows := strings.Split(body, "\n")
		for j := range rows {
			prefix := "  "
			if j == 0 {
				prefix = marker
			}
			rows[j] = prefix + rows[j]
		}
		blocks = append(blocks, strings.Join(rows, "\n"))
	}
	content := strings.Join(blocks, "\n")
	if content == "" {
		content = lipgloss.NewStyle().Foreground(core.CurrentTheme().Muted).Render("No widgets mounted")
	}
	return widgets.Pane{Title: p.Title(), Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
