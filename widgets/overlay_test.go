package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestRenderPopupKeepsBaseRightOfBorderRunes(t *testing.T) {
	// One distinct rune per column so a blanked column is detectable.
	cols := "abcdefghijklmnopqrstu"
	rows := make([]string, 9)
	for i := range rows {
		rows[i] = cols
	}
	out := RenderPopup(strings.Join(rows, "\n"), "Hi", len(cols), 9)

	found := false
	for _, line := range strings.Split(out, "\n") {
		plain := []rune(ansi.Strip(line))
		for i, r := range plain {
			if r != '╮' && r != '╯' {
				continue
			}
			found = true
			if i+1 >= len(plain) {
				t.Fatalf("border rune at line edge: %q", string(plain))
			}
			if got, want := plain[i+1], rune(cols[i+1]); got != want {
				t.Fatalf("column %d right of border = %q, want %q", i+1, string(got), string(want))
			}
		}
	}
	if !found {
		t.Fatalf("no right-border rune in output:\n%s", out)
	}
}

func TestHStackSplitsWidthByRatio(t *testing.T) {
	left := TextBlock{Body: "L"}
	right := TextBlock{Body: "R"}
	out := HStack{Widgets: []Widget{left, right}, Ratios: []float64{0.5, 0.5}, Gap: 1}.Render(21, 1)
	if !strings.Contains(out, "L") || !strings.Contains(out, "R") {
		t.Fatalf("stack output missing columns: %q", out)
	}
}

func TestVStackStacksRows(t *testing.T) {
	out := VStack{Widgets: []Widget{TextBlock{Body: "top"}, TextBlock{Body: "bottom"}}}.Render(10, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "top") || !strings.Contains(lines[1], "bottom") {
		t.Fatalf("unexpected stack order: %#v", lines)
	}
}
