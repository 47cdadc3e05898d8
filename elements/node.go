package elements

// Kind names the visual element a node resolves to.
type Kind string

const (
	KindText        Kind = "text"
	KindAlert       Kind = "alert"
	KindBalloons    Kind = "balloons"
	KindSnow        Kind = "snow"
	KindColorPicker Kind = "color_picker"
)

// Node identifies one piece of content to display. A node is immutable once
// created; its OriginRunID records the script run that produced it.
type Node struct {
	ID          string
	Kind        Kind
	OriginRunID string
	FragmentID  string

	// Text carries the body for display kinds (text, alert).
	Text string
	// Level qualifies alert nodes: info | warning | error | success.
	Level string

	// Widget is set when the node is an input element.
	Widget *WidgetSpec
}

// WidgetSpec describes the input control a node mounts.
type WidgetSpec struct {
	ID      string
	Label   string
	Default string
	FormID  string
}
