// Package elements contains the render-node model and dispatch policy.
//
// Allowed here:
// - the node data model and run-provenance gating
// - the kind registry that resolves a node to its visual builder
//
// Not allowed here:
// - concrete terminal drawing (widgets) or app routing (core)
package elements
