package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Replay  ReplayConfig
	Theme   ThemeConfig
	Logging LoggingConfig
	// Keybindings remaps actions to keys, e.g. keybindings.replay-step = ["x"].
	Keybindings map[string][]string
}

// StorageConfig holds sqlite settings for the session database.
type StorageConfig struct {
	Path string
}

// ReplayConfig points at a recording and controls playback.
type ReplayConfig struct {
	Path     string
	DelayMs  int `mapstructure:"delay_ms"`
	Autoplay bool
}

// ThemeConfig mirrors the theme overrides exposed to scripts.
type ThemeConfig struct {
	Base                string
	PrimaryColor        string `mapstructure:"primary_color"`
	BackgroundColor     string `mapstructure:"background_color"`
	SecondaryBackground string `mapstructure:"secondary_background_color"`
	TextColor           string `mapstructure:"text_color"`
	BorderColor         string `mapstructure:"border_color"`
}

// LoggingConfig holds the file logger settings. An empty path disables
// logging entirely; stdout is never used because it would corrupt the TUI.
type LoggingConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// GLINT_, so GLINT_THEME_PRIMARY_COLOR overrides theme.primary_color.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("storage.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "glint", "glint.db"))
	v.SetDefault("replay.path", "")
	v.SetDefault("replay.delay_ms", 350)
	v.SetDefault("replay.autoplay", false)
	v.SetDefault("theme.base", "dark")
	v.SetDefault("theme.primary_color", "")
	v.SetDefault("theme.background_color", "")
	v.SetDefault("theme.secondary_background_color", "")
	v.SetDefault("theme.text_color", "")
	v.SetDefault("theme.border_color", "")
	v.SetDefault("logging.path", "")
	v.SetDefault("logging.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GLINT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "glint"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GLINT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
