package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Engine: EngineSettings{
			TickRate: 18,
			Seed:     0,
		},
		Screen: ScreenSettings{
			Width:  80,
			Height: 25,
		},
		Log: LogSettings{
			Level: "info",
			File:  "",
		},
		Storage: StorageSettings{
			DBPath: "",
		},
		Journal: JournalSettings{
			Enabled: true,
			Dir:     "",
		},
		Server: ServerSettings{
			Host:    "0.0.0.0",
			Port:    2323,
			HostKey: ".ssh/crawl_host_ed25519",
		},
	}
}
