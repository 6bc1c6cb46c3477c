// crawl runs dungeon crawl scenarios in the terminal.
//
// Usage:
//
//	crawl list                   - List built-in scenarios
//	crawl play <scenario|file>   - Play a scenario
//	crawl menu                   - Pick scenarios interactively
//	crawl serve                  - Start SSH server for remote play
//	crawl history [scenario]     - Show recorded sessions
//	crawl replay <journal>       - Re-run a session journal and verify it
//	crawl validate <file>...     - Check scenario files
//
// Global flags:
//
//	--config <path>   - Engine config YAML
//	--fps <rate>      - Set tick rate (default: from config)
//	--pace <preset>   - slow, normal or fast
//	--seed <value>    - Set RNG seed for reproducible play
//	--db <path>       - Set history database path
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crawlcore/internal/config"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/logging"
	"github.com/vovakirdan/crawlcore/internal/registry"
	"github.com/vovakirdan/crawlcore/internal/scenario"
	"github.com/vovakirdan/crawlcore/internal/storage"

	// Import built-in scenarios to register them
	_ "github.com/vovakirdan/crawlcore/internal/scenarios"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagPace     string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl - a dungeon crawl engine in your terminal",
	Long: `Crawl runs grid dungeon scenarios with a party of up to four champions.
Every session is recorded to the history database and, when enabled, to an
input journal that can be replayed deterministically.

Available commands:
  list      - Show built-in scenarios
  play      - Play a scenario directly
  menu      - Interactive scenario picker
  serve     - Start SSH server for remote play
  history   - Show recorded sessions
  replay    - Verify a session journal
  validate  - Check scenario files

Examples:
  crawl list
  crawl play hall
  crawl play ./my-dungeon.yaml --seed 42
  crawl serve
  crawl replay ~/.crawl/journals/<session>.jsonl.zst`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Pace preset: slow, normal, fast")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default: ~/.crawl/history.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadConfig loads the engine config and applies the global flags.
func loadConfig() (config.EngineConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPace != "" && !config.ApplyPacePreset(&cfg, config.PacePreset(flagPace)) {
		return cfg, fmt.Errorf("unknown pace %q (use slow, normal or fast)", flagPace)
	}
	if flagFPS > 0 {
		cfg.Engine.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Engine.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// mustConfig loads the config or exits.
func mustConfig() config.EngineConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates the command logger. Interactive commands log to the
// configured file so the TUI keeps the terminal.
func newLogger(cfg config.EngineConfig, toFile bool) (*log.Logger, io.Closer) {
	opts := logging.Options{Level: cfg.Log.Level, Prefix: "crawl"}
	if toFile {
		opts.File = cfg.LogFile()
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

// openStore opens the history database. Play goes on without history when
// it cannot be opened.
func openStore(cfg config.EngineConfig, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("history disabled", "error", err)
		return nil
	}
	return store
}

// journalDir returns where sessions write journals, or empty when disabled.
func journalDir(cfg config.EngineConfig) string {
	if !cfg.Journal.Enabled {
		return ""
	}
	return cfg.JournalDir()
}

// runtimeConfig sizes the runtime config to the current terminal.
func runtimeConfig(cfg config.EngineConfig) core.RuntimeConfig {
	width, height := 0, 0
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return cfg.Runtime(width, height)
}

// resolveScenario loads a built-in scenario by ID or a scenario file by path.
func resolveScenario(arg string) (*scenario.Scenario, error) {
	if registry.Exists(arg) {
		return registry.Create(arg)
	}
	if _, err := os.Stat(arg); err == nil {
		return scenario.Load(arg)
	}
	return nil, fmt.Errorf("unknown scenario %q (run 'crawl list' to see built-in scenarios)", arg)
}
