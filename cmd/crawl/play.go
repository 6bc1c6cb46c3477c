package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crawlcore/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <scenario|file.yaml>",
	Short: "Play a scenario",
	Long: `Start playing a built-in scenario or a scenario file.

Controls:
  W/A/S/D      - Move forward, left, back, right
  Q/E          - Turn left, right
  Keypad 1-6   - Movement pad
  Mouse        - Click the view, status boxes and panels
  Esc          - Close inventory
  Ctrl+H       - Toggle help
  Ctrl+B       - Leave the session
  Ctrl+Q       - Quit

Examples:
  crawl play hall
  crawl play crypt --pace slow
  crawl play ./my-dungeon.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := mustConfig()
	logger, closer := newLogger(cfg, true)
	defer closer.Close()

	sc, err := resolveScenario(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	keys, err := cfg.MovementKeys()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg, logger)
	rc := runtimeConfig(cfg)

	session, err := tui.NewSession(tui.SessionOptions{
		Scenario:     sc,
		Seed:         rc.Seed,
		MovementKeys: keys,
		Store:        store,
		JournalDir:   journalDir(cfg),
		Origin:       "local",
		Logger:       logger,
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error starting scenario: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(session, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("Session %s ended after %d commands.\n", session.ID, session.Commands())
}
