package state

import (
	"sort"
	"sync"
)

// Provenance tags a write with its origin: true when the user drove the
// change through the UI, false when the runtime seeded it.
type Provenance struct {
	FromUI bool
}

// Value is the current record for one widget id.
type Value struct {
	Raw        string
	FromUI     bool
	FragmentID string
}

// Event describes one store write, delivered synchronously to listeners in
// the same pass as the write.
type Event struct {
	WidgetID   string
	Value      string
	FromUI     bool
	FragmentID string
	// Reset is set on the broadcast writes of a clear-on-submit form reset.
	Reset bool
}

// Submission describes one committed form submit.
type Submission struct {
	FormID     string
	FragmentID string
	// Committed holds the user-driven values buffered since the last submit.
	Committed map[string]string
	Cleared   bool
}

type Listener func(Event)

type SubmitListener func(Submission)

// Entry is a snapshot row for inspection.
type Entry struct {
	WidgetID string
	Value    Value
}

// Store is the process-wide widget-value map. Each widget id has a single
// writer (its binder) plus the form-reset broadcast; notification is
// synchronous and happens outside the lock.
type Store struct {
	mu              sync.Mutex
	values          map[string]Value
	defaults        map[string]string
	formOf          map[string]string
	members         map[string][]string
	clearOnSubmit   map[string]bool
	pending         map[string]map[string]string
	listeners       map[string][]Listener
	watchers        []Listener
	submitListeners map[string][]SubmitListener
}

func NewStore() *Store {
	return &Store{
		values:          make(map[string]Value),
		defaults:        make(map[string]string),
		formOf:          make(map[string]string),
		members:         make(map[string][]string),
		clearOnSubmit:   make(map[string]bool),
		pending:         make(map[string]map[string]string),
		listeners:       make(map[string][]Listener),
		submitListeners: make(map[string][]SubmitListener),
	}
}

// RegisterWidget records the widget's default and form membership so the
// form-reset broadcast knows what to revert to. Returns the widget id.
func (s *Store) RegisterWidget(def Definition) string {
	id := def.WidgetID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[id] = def.Default
	prev, had := s.formOf[id]
	if had && prev == def.FormID {
		return id
	}
	// A re-registration with a different form moves the widget: the old
	// form's reset broadcast must not touch it anymore.
	if had {
		s.members[prev] = removeID(s.members[prev], id)
		delete(s.formOf, id)
	}
	if def.FormID == "" {
		return id
	}
	s.formOf[id] = def.FormID
	s.members[def.FormID] = append(s.members[def.FormID], id)
	return id
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// SetValue writes a value under the widget's id. FragmentID is forwarded
// unchanged to every listener.
func (s *Store) SetValue(widgetID, value string, p Provenance, fragmentID string) {
	s.mu.Lock()
	s.values[widgetID] = Value{Raw: value, FromUI: p.FromUI, FragmentID: fragmentID}
	if p.FromUI {
		if formID, ok := s.formOf[widgetID]; ok {
			if s.pending[formID] == nil {
				s.pending[formID] = make(map[string]string)
			}
			s.pending[formID][widgetID] = value
		}
	}
	targets := s.listenersFor(widgetID)
	s.mu.Unlock()

	ev := Event{WidgetID: widgetID, Value: value, FromUI: p.FromUI, FragmentID: fragmentID}
	for _, fn := range targets {
		fn(ev)
	}
}

// Get returns the current value for a widget id.
func (s *Store) Get(widgetID string) (Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[widgetID]
	return v, ok
}

// Default returns the registered default for a widget id.
func (s *Store) Default(widgetID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.defaults[widgetID]
	return d, ok
}

// Snapshot returns all current entries sorted by widget id.
func (s *Store) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.values))
	for id, v := range s.values {
		out = append(out, Entry{WidgetID: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WidgetID < out[j].WidgetID })
	return out
}

// SetFormSubmitBehavior sets the form-wide clear-on-submit flag.
func (s *Store) SetFormSubmitBehavior(formID string, clearOnSubmit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearOnSubmit[formID] = clearOnSubmit
}

// SubmitForm commits the form's buffered values and, when the form clears on
// submit, broadcasts a reset-to-default to every member widget. Reset writes
// carry FromUI true and the submit's fragment id. The returned Submission
// summarizes what was committed.
func (s *Store) SubmitForm(formID, fragmentID string) Submission {
	s.mu.Lock()
	committed := s.pending[formID]
	delete(s.pending, formID)
	if committed == nil {
		committed = make(map[string]string)
	}
	clear := s.clearOnSubmit[formID]

	type reset struct {
		ev      Event
		targets []Listener
	}
	var resets []reset
	if clear {
		ids := append([]string(nil), s.members[formID]...)
		sort.Strings(ids)
		for _, id := range ids {
			def := s.defaults[id]
			s.values[id] = Value{Raw: def, FromUI: true, FragmentID: fragmentID}
			resets = append(resets, reset{
				ev:      Event{WidgetID: id, Value: def, FromUI: true, FragmentID: fragmentID, Reset: true},
				targets: s.listenersFor(id),
			})
		}
	}
	subs := append([]SubmitListener(nil), s.submitListeners[formID]...)
	s.mu.Unlock()

	for _, r := range resets {
		for _, fn := range r.targets {
			fn(r.ev)
		}
	}
	sub := Submission{FormID: formID, FragmentID: fragmentID, Committed: committed, Cleared: clear}
	for _, fn := range subs {
		fn(sub)
	}
	return sub
}

// ClearsOnSubmit reports the declared submit behavior for a form.
func (s *Store) ClearsOnSubmit(formID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearOnSubmit[formID]
}

// FormMembers returns the widget ids registered to a form, sorted.
func (s *Store) FormMembers(formID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]string(nil), s.members[formID]...)
	sort.Strings(out)
	return out
}

// Subscribe registers a listener for one widget id.
func (s *Store) Subscribe(widgetID string, fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[widgetID] = append(s.listeners[widgetID], fn)
}

// Watch registers a listener for every write (used for persistence).
func (s *Store) Watch(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// OnSubmit registers a listener for one form's submissions.
func (s *Store) OnSubmit(formID string, fn SubmitListener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitListeners[formID] = append(s.submitListeners[formID], fn)
}

// listenersFor collects per-widget listeners plus watchers. Caller holds mu.
func (s *Store) listenersFor(widgetID string) []Listener {
	out := make([]Listener, 0, len(s.listeners[widgetID])+len(s.watchers))
	out = append(out, s.listeners[widgetID]...)
	out = append(out, s.watchers...)
	return out
}
