package state

// Binder keeps one widget's displayed value in lockstep with the store.
//
// Lifecycle:
//   - Mount seeds the store once with the seed value, provenance FromUI false.
//   - SetFromUI records an accepted user edit, provenance FromUI true; the
//     displayed value updates in the same pass.
//   - A clear-on-submit broadcast reverts the displayed value to the default
//     (the store performs the write; the binder observes it).
type Binder struct {
	store   *Store
	def     Definition
	id      string
	seed    string
	value   string
	mounted bool
}

// NewBinder registers the widget with the store and subscribes to writes
// under its id. It does not write anything until Mount.
func NewBinder(store *Store, def Definition) *Binder {
	b := &Binder{store: store, def: def, seed: def.Default}
	b.id = store.RegisterWidget(def)
	store.Subscribe(b.id, b.onEvent)
	return b
}

// SeedValue overrides the value Mount writes, used when a persisted session
// value survives a restart. The registered default is untouched, so a form
// reset still reverts to the definition's default.
func (b *Binder) SeedValue(v string) {
	if b.mounted {
		return
	}
	b.seed = v
}

// Mount seeds the store exactly once so downstream consumers observe a value
// before any interaction.
func (b *Binder) Mount() {
	if b.mounted {
		return
	}
	b.mounted = true
	b.store.SetValue(b.id, b.seed, Provenance{FromUI: false}, b.def.FragmentID)
}

// SetFromUI records a user-driven change.
func (b *Binder) SetFromUI(v string) {
	b.store.SetValue(b.id, v, Provenance{FromUI: true}, b.def.FragmentID)
}

// Value is the currently displayed value.
func (b *Binder) Value() string { return b.value }

// WidgetID is the store key this binder writes under.
func (b *Binder) WidgetID() string { return b.id }

// Definition returns the widget definition this binder was built from.
func (b *Binder) Definition() Definition { return b.def }

func (b *Binder) onEvent(ev Event) {
	// Every write under this id is authoritative for display, including the
	// form-reset broadcast and external (FromUI false) seeds.
	b.value = ev.Value
}
