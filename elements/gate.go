package elements

// ShouldRender reports whether a node's output belongs to the currently
// active run. Nodes from a superseded run produce zero output, not a
// placeholder.
func ShouldRender(n Node, activeRunID string) bool {
	return n.OriginRunID == activeRunID
}

// Visible filters nodes through ShouldRender, preserving order.
func Visible(nodes []Node, activeRunID string) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if ShouldRender(n, activeRunID) {
			out = append(out, n)
		}
	}
	return out
}
