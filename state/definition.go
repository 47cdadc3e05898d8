package state

import (
	"strings"

	"github.com/google/uuid"
)

// Definition describes a widget before it is bound to the store.
type Definition struct {
	ID         string
	Kind       string
	Label      string
	Default    string
	FormID     string
	FragmentID string
}

// WidgetID returns the definition's id, deriving a deterministic one from
// kind, label and form when the engine did not assign any. The same widget
// keeps the same identity across reruns.
func (d Definition) WidgetID() string {
	if id := strings.TrimSpace(d.ID); id != "" {
		return id
	}
	key := "widget:" + d.Kind + ":" + d.Label + ":" + d.FormID
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}
