package widgets

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintlabs/glint/state"
)

func newTestPicker(t *testing.T) (*state.Store, *state.Binder, *ColorPicker) {
	t.Helper()
	store := state.NewStore()
	binder := state.NewBinder(store, state.Definition{
		ID: "picker", Kind: "color_picker", Label: "Pick a colour", Default: "#000000", FormID: "form",
	})
	binder.Mount()
	return store, binder, NewColorPicker(binder)
}

func TestColorPickerShowsDefaultBeforeInteraction(t *testing.T) {
	store, _, picker := newTestPicker(t)

	if picker.Value() != "#000000" {
		t.Fatalf("value = %q, want #000000", picker.Value())
	}
	v, _ := store.Get("picker")
	if v.Raw != "#000000" || v.FromUI {
		t.Fatalf("store = %+v, want default FromUI false", v)
	}
	out := picker.Render(60, 3)
	if !strings.Contains(out, "Pick a colour") || !strings.Contains(out, "#000000") {
		t.Fatalf("render missing label or value:\n%s", out)
	}
}

func TestColorPickerCommitWritesFromUI(t *testing.T) {
	store, _, picker := newTestPicker(t)

	picker.StartEdit()
	picker.commit("#E91E63")

	if picker.Editing() {
		t.Fatalf("commit should close the editor")
	}
	if picker.Value() != "#e91e63" {
		t.Fatalf("displayed = %q, want #e91e63", picker.Value())
	}
	v, _ := store.Get("picker")
	if v.Raw != "#e91e63" || !v.FromUI {
		t.Fatalf("store = %+v, want #e91e63 fromUI", v)
	}
}

func TestColorPickerRejectsMalformedInput(t *testing.T) {
	store, _, picker := newTestPicker(t)

	picker.StartEdit()
	picker.commit("not-a-color")

	if !picker.Editing() {
		t.Fatalf("rejected input should keep the editor open")
	}
	v, _ := store.Get("picker")
	if v.Raw != "#000000" {
		t.Fatalf("store = %q, rejected input must not write", v.Raw)
	}
	out := picker.Render(60, 4)
	if !strings.Contains(out, "hex digits") {
		t.Fatalf("render should surface the validation error:\n%s", out)
	}
}

func TestColorPickerEscCancelsEdit(t *testing.T) {
	_, _, picker := newTestPicker(t)

	picker.StartEdit()
	picker.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if picker.Editing() {
		t.Fatalf("esc should close the editor")
	}
	if picker.Value() != "#000000" {
		t.Fatalf("cancel must not change the value")
	}
}

func TestColorPickerFormClearRevertsDisplay(t *testing.T) {
	store, _, picker := newTestPicker(t)
	store.SetFormSubmitBehavior("form", true)

	picker.StartEdit()
	picker.commit("#e91e63")
	store.SubmitForm("form", "")

	if picker.Value() != "#000000" {
		t.Fatalf("displayed after clear = %q, want #000000", picker.Value())
	}
}

func TestNormalizeHex(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#e91e63", want: "#e91e63"},
		{in: "E91E63", want: "#e91e63"},
		{in: "  #AbCdEf ", want: "#abcdef"},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := NormalizeHex(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("NormalizeHex(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeHex(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeHex(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
