// Package runtime applies recorded pushes to a client session: it rotates
// the active run id, mounts widget binders, and prunes output from
// superseded runs.
package runtime

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/glintlabs/glint/elements"
	"github.com/glintlabs/glint/protocol"
	"github.com/glintlabs/glint/state"
)

// Session is one client's view of a script's output.
type Session struct {
	id          string
	store       *state.Store
	log         *zap.Logger
	activeRunID string
	nodes       []elements.Node
	binders     map[string]*state.Binder
	binderOrder []string
	forms       []string
	seeds       map[string]string
	seq         int

	// RunStarted and RunEnded are invoked synchronously on run boundary
	// pushes; main wires them to run-history persistence.
	RunStarted func(runID string)
	RunEnded   func(runID string)
}

// Option configures a Session.
type Option func(*Session)

// WithID fixes the session id instead of generating one.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// WithSeeds provides persisted widget values from a previous session; a seed
// replaces the definition default at mount time.
func WithSeeds(seeds map[string]string) Option {
	return func(s *Session) {
		for k, v := range seeds {
			s.seeds[k] = v
		}
	}
}

func NewSession(store *state.Store, log *zap.Logger, opts ...Option) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		id:      uuid.NewString(),
		store:   store,
		log:     log,
		binders: make(map[string]*state.Binder),
		seeds:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string          { return s.id }
func (s *Session) ActiveRunID() string { return s.activeRunID }
func (s *Session) Store() *state.Store { return s.store }

// Nodes returns every node the session holds, stale ones included.
func (s *Session) Nodes() []elements.Node {
	return append([]elements.Node(nil), s.nodes...)
}

// VisibleNodes returns the nodes the active run is allowed to display.
func (s *Session) VisibleNodes() []elements.Node {
	return elements.Visible(s.nodes, s.activeRunID)
}

// Binders returns mounted binders in mount order.
func (s *Session) Binders() []*state.Binder {
	out := make([]*state.Binder, 0, len(s.binderOrder))
	for _, id := range s.binderOrder {
		out = append(out, s.binders[id])
	}
	return out
}

// Binder returns the live binder for a widget id.
func (s *Session) Binder(widgetID string) (*state.Binder, bool) {
	b, ok := s.binders[widgetID]
	return b, ok
}

// Forms returns declared form ids in declaration order.
func (s *Session) Forms() []string {
	return append([]string(nil), s.forms...)
}

// Apply processes one push.
func (s *Session) Apply(p protocol.Push) error {
	switch p.Type {
	case protocol.PushRunBegin:
		runID := p.RunID
		if runID == "" {
			runID = uuid.NewString()
		}
		s.activeRunID = runID
		s.log.Info("run started", zap.String("run_id", runID))
		if s.RunStarted != nil {
			s.RunStarted(runID)
		}
		return nil

	case protocol.PushElement:
		s.nodes = append(s.nodes, s.nodeFromPush(p))
		return nil

	case protocol.PushWidget:
		return s.applyWidget(p)

	case protocol.PushForm:
		s.store.SetFormSubmitBehavior(p.Form.ID, p.Form.ClearOnSubmit)
		for _, f := range s.forms {
			if f == p.Form.ID {
				return nil
			}
		}
		s.forms = append(s.forms, p.Form.ID)
		return nil

	case protocol.PushRunFinished:
		s.pruneStale()
		s.log.Info("run finished",
			zap.String("run_id", s.activeRunID),
			zap.Int("nodes", len(s.nodes)))
		if s.RunEnded != nil {
			s.RunEnded(s.activeRunID)
		}
		return nil

	default:
		return fmt.Errorf("unhandled push type %q", p.Type)
	}
}

func (s *Session) nodeFromPush(p protocol.Push) elements.Node {
	origin := p.RunID
	if origin == "" {
		origin = s.activeRunID
	}
	id := p.Node.ID
	if id == "" {
		s.seq++
		id = fmt.Sprintf("node-%d", s.seq)
	}
	return elements.Node{
		ID:          id,
		Kind:        elements.Kind(p.Node.Kind),
		OriginRunID: origin,
		FragmentID:  p.Node.FragmentID,
		Text:        p.Node.Text,
		Level:       p.Node.Level,
	}
}

func (s *Session) applyWidget(p protocol.Push) error {
	def := state.Definition{
		ID:         p.Widget.ID,
		Kind:       p.Widget.Kind,
		Label:      p.Widget.Label,
		Default:    p.Widget.Default,
		FormID:     p.Widget.FormID,
		FragmentID: p.Widget.FragmentID,
	}
	widgetID := def.WidgetID()

	origin := p.RunID
	if origin == "" {
		origin = s.activeRunID
	}
	s.nodes = append(s.nodes, elements.Node{
		ID:          widgetID,
		Kind:        elements.Kind(p.Widget.Kind),
		OriginRunID: origin,
		FragmentID:  p.Widget.FragmentID,
		Widget: &elements.WidgetSpec{
			ID:      widgetID,
			Label:   def.Label,
			Default: def.Default,
			FormID:  def.FormID,
		},
	})

	// A rerun re-declares its widgets; the existing binder keeps its state.
	if _, ok := s.binders[widgetID]; ok {
		return nil
	}
	b := state.NewBinder(s.store, def)
	if seed, ok := s.seeds[widgetID]; ok {
		b.SeedValue(seed)
	}
	b.Mount()
	s.binders[widgetID] = b
	s.binderOrder = append(s.binderOrder, widgetID)
	s.log.Debug("widget mounted",
		zap.String("widget_id", widgetID),
		zap.String("kind", def.Kind),
		zap.String("form_id", def.FormID))
	return nil
}

// pruneStale drops nodes whose origin run no longer matches the active run.
// Stale widget nodes disappear from the feed, but their binders (and store
// values) survive reruns.
func (s *Session) pruneStale() {
	kept := s.nodes[:0]
	for _, n := range s.nodes {
		if elements.ShouldRender(n, s.activeRunID) {
			kept = append(kept, n)
		}
	}
	s.nodes = kept
}
