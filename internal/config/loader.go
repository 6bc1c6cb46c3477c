package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the engine configuration.
// Search order: customPath -> ~/.crawl/configs/engine.yaml -> ./configs/engine.yaml -> embedded default
func Load(customPath string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.validate()
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "engine.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, c.validate()
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "engine.yaml")); ok {
		return c, c.validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		return DefaultEngineConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (EngineConfig, bool) {
	cfg := DefaultEngineConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

func (c EngineConfig) validate() error {
	if c.Engine.TickRate < 0 {
		return fmt.Errorf("config: tick_rate must not be negative, got %d", c.Engine.TickRate)
	}
	if _, err := c.MovementKeys(); err != nil {
		return err
	}
	return nil
}

// UserPath returns a path under ~/.crawl, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".crawl"}, elem...)...)
}

// DBPath returns the configured database path, defaulting to
// ~/.crawl/history.db.
func (c EngineConfig) DBPath() string {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath
	}
	if p := UserPath("history.db"); p != "" {
		return p
	}
	return "history.db"
}

// JournalDir returns the configured journal directory, defaulting to
// ~/.crawl/journals.
func (c EngineConfig) JournalDir() string {
	if c.Journal.Dir != "" {
		return c.Journal.Dir
	}
	if p := UserPath("journals"); p != "" {
		return p
	}
	return "journals"
}

// LogFile returns the log file used while the TUI owns the terminal,
// defaulting to ~/.crawl/crawl.log.
func (c EngineConfig) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	if p := UserPath("crawl.log"); p != "" {
		return p
	}
	return "crawl.log"
}
