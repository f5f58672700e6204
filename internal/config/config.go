package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Side     string `koanf:"side"`        // "top", "bottom", or "center"
	Duration int    `koanf:"duration_ms"` // on-screen time in milliseconds
	Offset   int    `koanf:"offset"`      // extra rows between toast and anchor edge
	MaxWidth int    `koanf:"max_width"`   // widget width in columns (0 = widget default)

	DragDismiss *bool  `koanf:"drag_dismiss"` // default: true
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "ascii"

	// Sound feedback (falls back to the terminal bell when unset)
	Sound SoundConfig `koanf:"sound"`

	// Mirror toasts to desktop notifications while the terminal is
	// unfocused
	DesktopNotify bool `koanf:"desktop_notify"`
}

// SoundConfig holds notification sound playback settings.
type SoundConfig struct {
	Path   string  `koanf:"path"`   // wav, ogg, or mp3 file
	Volume float64 `koanf:"volume"` // 0.0-1.0 (default: 0.8)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Sound.Path != "" {
		cfg.Sound.Path = expandPath(cfg.Sound.Path)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{
		// 1. XDG config dir, typically ~/.config/pill/config.toml
		filepath.Join(xdg.ConfigHome, "pill", "config.toml"),

		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DisplayDuration returns the configured display duration, or zero when
// none is set so the widget default applies.
func (c *Config) DisplayDuration() time.Duration {
	if c.Duration <= 0 {
		return 0
	}
	return time.Duration(c.Duration) * time.Millisecond
}

// DragEnabled returns drag-to-dismiss with its default applied.
func (c *Config) DragEnabled() bool {
	if c.DragDismiss == nil {
		return true
	}
	return *c.DragDismiss
}

// GetSoundConfig returns the sound configuration with defaults applied.
func (c *Config) GetSoundConfig() SoundConfig {
	cfg := c.Sound
	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = 0.8
	}
	return cfg
}

// HasSound returns true if a notification sound is configured.
func (c *Config) HasSound() bool {
	return c.Sound.Path != ""
}
