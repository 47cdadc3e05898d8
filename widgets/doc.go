// Package widgets contains dumb render primitives and the element visuals.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, popup overlay)
// - visuals for element kinds and the color-picker input component
//
// Not allowed here:
// - app state transitions, scope logic, run gating, or store policy
package widgets
