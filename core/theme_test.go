package core

import "testing"

func TestBuildThemeAppliesOverrides(t *testing.T) {
	th := BuildTheme(ThemeOverrides{Base: "light", PrimaryColor: "#e91e63", TextColor: "#111111", BorderColor: "#ff00ff"})
	if th.Name != "light" {
		t.Fatalf("base = %q, want light", th.Name)
	}
	if string(th.Accent) != "#e91e63" || string(th.Selected) != "#e91e63" {
		t.Fatalf("primary override not applied: %q / %q", th.Accent, th.Selected)
	}
	if string(th.Text) != "#111111" {
		t.Fatalf("text override not applied: %q", th.Text)
	}
	if string(th.Border) != "#ff00ff" {
		t.Fatalf("border override not applied: %q", th.Border)
	}
	if string(th.Success) != string(LightTheme().Success) {
		t.Fatalf("untouched colors must come from the base theme")
	}
}

func TestBuildThemeDefaultsToDark(t *testing.T) {
	th := BuildTheme(ThemeOverrides{})
	if th.Name != "dark" {
		t.Fatalf("base = %q, want dark", th.Name)
	}
}
