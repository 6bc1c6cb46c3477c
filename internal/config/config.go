// Package config provides YAML-based engine configuration loading and
// keyboard binding overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/hittest"
)

// EngineConfig contains all configuration for a crawl session.
type EngineConfig struct {
	Engine  EngineSettings  `yaml:"engine"`
	Screen  ScreenSettings  `yaml:"screen"`
	Log     LogSettings     `yaml:"log"`
	Storage StorageSettings `yaml:"storage"`
	Journal JournalSettings `yaml:"journal"`
	Server  ServerSettings  `yaml:"server"`
	Keys    []KeyBinding    `yaml:"keys"` // Replaces the movement bindings when set
}

// EngineSettings defines simulation parameters.
type EngineSettings struct {
	TickRate int   `yaml:"tick_rate"` // Ticks per second
	Seed     int64 `yaml:"seed"`      // 0 picks a seed from the clock
}

// ScreenSettings defines the fallback terminal size.
type ScreenSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogSettings selects the log level and destination.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used by interactive play; serve logs to stderr
}

// StorageSettings locates the session history database.
type StorageSettings struct {
	DBPath string `yaml:"db_path"`
}

// JournalSettings controls input journals.
type JournalSettings struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// ServerSettings configures the SSH server.
type ServerSettings struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	HostKey string `yaml:"host_key"`
}

// KeyBinding maps a key press to a movement command.
type KeyBinding struct {
	Command string   `yaml:"command"`
	Key     string   `yaml:"key"`
	Mods    []string `yaml:"mods"`
}

// MovementKeys converts the configured bindings into a keyboard table, or
// returns nil when none are configured.
func (c EngineConfig) MovementKeys() (hittest.KeyTable, error) {
	if len(c.Keys) == 0 {
		return nil, nil
	}
	table := make(hittest.KeyTable, 0, len(c.Keys))
	for i, b := range c.Keys {
		cmd, ok := command.ParseType(b.Command)
		if !ok {
			return nil, fmt.Errorf("config: keys[%d]: unknown command %q", i, b.Command)
		}
		if !cmd.IsMovement() {
			return nil, fmt.Errorf("config: keys[%d]: %s is not a movement command", i, cmd)
		}
		key, err := core.ParseKeycode(b.Key)
		if err != nil {
			return nil, fmt.Errorf("config: keys[%d]: %w", i, err)
		}
		mods, err := parseMods(b.Mods)
		if err != nil {
			return nil, fmt.Errorf("config: keys[%d]: %w", i, err)
		}
		table = append(table, hittest.KeyRule{Command: cmd, Key: key, Mods: mods})
	}
	return table, nil
}

func parseMods(names []string) (core.Modifier, error) {
	var m core.Modifier
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "shift":
			m |= core.ModShift
		case "ctrl":
			m |= core.ModCtrl
		case "alt":
			m |= core.ModAlt
		case "", "none":
		default:
			return core.ModNone, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}

// Runtime returns the core runtime settings for a terminal of the given
// size. Non-positive sizes fall back to the configured screen.
func (c EngineConfig) Runtime(width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if c.Engine.TickRate > 0 {
		rc.TickRate = c.Engine.TickRate
	}
	rc.Seed = c.Engine.Seed
	rc.ScreenW, rc.ScreenH = width, height
	if rc.ScreenW <= 0 && c.Screen.Width > 0 {
		rc.ScreenW = c.Screen.Width
	}
	if rc.ScreenH <= 0 && c.Screen.Height > 0 {
		rc.ScreenH = c.Screen.Height
	}
	return rc
}
