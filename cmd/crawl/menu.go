package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crawlcore/internal/platform/tui"
	"github.com/vovakirdan/crawlcore/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start crawl with a scenario picker menu",
	Long: `Start crawl in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scenario.
After a session ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scenario
  Tab          - Session history
  Q            - Quit

Examples:
  crawl menu
  crawl menu --pace fast
  crawl menu --db ./history.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := mustConfig()
	logger, closer := newLogger(cfg, true)
	defer closer.Close()

	keys, err := cfg.MovementKeys()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg, logger)
	rc := runtimeConfig(cfg)

	for {
		menuResult, err := tui.RunMenu(rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, hErr := tui.RunHistory(store, rc.ScreenW, rc.ScreenH)
			if hErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.Scenario == nil {
			break
		}

		sc, err := registry.Create(menuResult.Scenario.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating scenario: %v\n", err)
			continue
		}

		// A fixed seed from flags or config applies to every session.
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
			fmt.Fprintf(os.Stderr, "Error starting scenario: %v\n", err)
			continue
		}

		goBack, err := tui.Run(session, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err)
		}
		if !goBack {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
