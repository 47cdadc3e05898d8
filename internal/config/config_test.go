package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GLINT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme.Base != "dark" {
		t.Fatalf("theme base = %q, want dark", cfg.Theme.Base)
	}
	if cfg.Replay.DelayMs != 350 {
		t.Fatalf("delay = %d, want 350", cfg.Replay.DelayMs)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadReadsTomlFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[theme]
base = "light"
primary_color = "#e91e63"
border_color = "#d6d6d9"

[replay]
path = "app.jsonl"
delay_ms = 10
autoplay = true

[keybindings]
replay-step = ["x"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GLINT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme.Base != "light" || cfg.Theme.PrimaryColor != "#e91e63" || cfg.Theme.BorderColor != "#d6d6d9" {
		t.Fatalf("theme = %+v", cfg.Theme)
	}
	if cfg.Replay.Path != "app.jsonl" || cfg.Replay.DelayMs != 10 || !cfg.Replay.Autoplay {
		t.Fatalf("replay = %+v", cfg.Replay)
	}
	if keys := cfg.Keybindings["replay-step"]; len(keys) != 1 || keys[0] != "x" {
		t.Fatalf("keybindings = %+v", cfg.Keybindings)
	}
}

func TestEnvOverridesThemeColors(t *testing.T) {
	t.Setenv("GLINT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("GLINT_THEME_PRIMARY_COLOR", "#00ff00")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme.PrimaryColor != "#00ff00" {
		t.Fatalf("primary = %q, want env override", cfg.Theme.PrimaryColor)
	}
}
