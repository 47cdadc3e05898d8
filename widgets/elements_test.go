package widgets

import (
	"strings"
	"testing"

	"github.com/glintlabs/glint/elements"
)

func TestDefaultRegistryRendersOneVisualPerKind(t *testing.T) {
	r := DefaultRegistry(nil)

	cases := []struct {
		node elements.Node
		want string
	}{
		{elements.Node{Kind: elements.KindText, Text: "hello"}, "hello"},
		{elements.Node{Kind: elements.KindAlert, Text: "careful", Level: "warning"}, "careful"},
		{elements.Node{Kind: elements.KindBalloons}, "🎈"},
		{elements.Node{Kind: elements.KindSnow}, "❄"},
	}
	for _, tc := range cases {
		v, err := r.Build(tc.node)
		if err != nil {
			t.Fatalf("build %q: %v", tc.node.Kind, err)
		}
		out := v.Render(40, 3)
		if !strings.Contains(out, tc.want) {
			t.Fatalf("render %q = %q, want substring %q", tc.node.Kind, out, tc.want)
		}
	}
}

func TestDefaultRegistryGateScenario(t *testing.T) {
	r := DefaultRegistry(nil)
	node := elements.Node{Kind: elements.KindBalloons, OriginRunID: "SCRIPT_RUN_ID"}

	if _, ok, _ := r.BuildVisible(node, "NEW_SCRIPT_ID"); ok {
		t.Fatalf("stale balloons must produce zero output")
	}
	v, ok, err := r.BuildVisible(node, "SCRIPT_RUN_ID")
	if err != nil || !ok {
		t.Fatalf("active balloons must render once: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(v.Render(20, 1), "🎈") {
		t.Fatalf("expected balloon banner")
	}
}

func TestColorPickerKindDelegatesToResolver(t *testing.T) {
	r := DefaultRegistry(func(id string) (elements.Visual, bool) {
		if id == "live" {
			return TextBlock{Body: "component:" + id}, true
		}
		return nil, false
	})

	node := elements.Node{Kind: elements.KindColorPicker, Widget: &elements.WidgetSpec{ID: "live"}}
	v, err := r.Build(node)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(v.Render(30, 1), "component:live") {
		t.Fatalf("expected resolver component")
	}

	missing := elements.Node{Kind: elements.KindColorPicker, Widget: &elements.WidgetSpec{ID: "ghost"}}
	if _, err := r.Build(missing); err == nil {
		t.Fatalf("expected error for unmounted component")
	}
}

func TestCelebrationFillsWidth(t *testing.T) {
	out := Celebration{Glyph: "❄"}.Render(10, 1)
	if out == "" {
		t.Fatalf("expected banner output")
	}
	if strings.Count(out, "❄") < 2 {
		t.Fatalf("banner should repeat the glyph: %q", out)
	}
}
