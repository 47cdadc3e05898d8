package elements

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Visual is anything the terminal can draw at a given size.
type Visual interface {
	Render(width, height int) string
}

// Builder turns a node into its visual representation. A builder is invoked
// at most once per render pass for a given node.
type Builder func(n Node) (Visual, error)

// Registry maps element kinds to builders.
type Registry struct {
	builders map[Kind]Builder
}

func NewRegistry() *Registry {
	return &Registry{builders: make(map[Kind]Builder)}
}

func (r *Registry) Register(kind Kind, b Builder) {
	if b == nil {
		return
	}
	r.builders[kind] = b
}

// Kinds returns the registered kinds in stable order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.builders))
	for k := range r.builders {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Build resolves the node's kind and produces exactly one visual. Unknown
// kinds fail with the nearest registered kind as a hint.
func (r *Registry) Build(n Node) (Visual, error) {
	b, ok := r.builders[n.Kind]
	if !ok {
		if hint := r.nearestKind(n.Kind); hint != "" {
			return nil, fmt.Errorf("unknown element kind %q (did you mean %q?)", n.Kind, hint)
		}
		return nil, fmt.Errorf("unknown element kind %q", n.Kind)
	}
	return b(n)
}

// BuildVisible composes the run gate with dispatch: a stale node yields
// (nil, false, nil) and no builder runs.
func (r *Registry) BuildVisible(n Node, activeRunID string) (Visual, bool, error) {
	if !ShouldRender(n, activeRunID) {
		return nil, false, nil
	}
	v, err := r.Build(n)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// nearestKind suggests a registered kind within a small edit distance.
func (r *Registry) nearestKind(kind Kind) Kind {
	target := strings.ToLower(strings.TrimSpace(string(kind)))
	if target == "" {
		return ""
	}
	best := Kind("")
	bestDist := 4 // suggestions beyond 3 edits are noise
	for _, k := range r.Kinds() {
		d := levenshtein.ComputeDistance(target, string(k))
		if d < bestDist {
			best = k
			bestDist = d
		}
	}
	return best
}
