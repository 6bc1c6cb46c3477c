package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crawlcore/internal/engine"
	"github.com/vovakirdan/crawlcore/internal/input"
	"github.com/vovakirdan/crawlcore/internal/journal"
	"github.com/vovakirdan/crawlcore/internal/registry"
	"github.com/vovakirdan/crawlcore/internal/scenario"
)

var flagScenarioFile string

var replayCmd = &cobra.Command{
	Use:   "replay <journal>",
	Short: "Re-run a session journal and verify it",
	Long: `Feed a recorded input journal through a fresh engine built from the
same scenario and seed, checking every dispatched command and the final
state against the recording.

The scenario is looked up by the ID stored in the journal. Sessions played
from a file need --scenario-file. Custom key bindings from the config must
match the ones used when the session was recorded.

Examples:
  crawl replay ~/.crawl/journals/<session>.jsonl.zst
  crawl replay ./run.jsonl.zst --scenario-file ./my-dungeon.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagScenarioFile, "scenario-file", "", "Scenario file the session was played from")
}

func runReplay(_ *cobra.Command, args []string) {
	cfg := mustConfig()
	logger, closer := newLogger(cfg, false)
	defer closer.Close()

	j, err := journal.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var sc *scenario.Scenario
	if flagScenarioFile != "" {
		sc, err = scenario.Load(flagScenarioFile)
	} else {
		sc, err = registry.Create(j.Header.Scenario)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if sc.ID != j.Header.Scenario {
		fmt.Fprintf(os.Stderr, "Error: journal was recorded on %q, not %q\n", j.Header.Scenario, sc.ID)
		os.Exit(1)
	}

	keys, err := cfg.MovementKeys()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src := input.NewScriptSource()
	e, err := sc.NewEngine(engine.Options{
		Source:       src,
		MovementKeys: keys,
		Seed:         j.Header.Seed,
		Logger:       logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap, err := journal.Replay(j, e, src)
	fmt.Printf("Session   %s\n", j.Header.Session)
	fmt.Printf("Scenario  %s (seed %d)\n", j.Header.Scenario, j.Header.Seed)
	fmt.Printf("Commands  %d\n", j.Commands())
	fmt.Printf("Final     tick %d at (%d,%d) facing %s, %d champions\n",
		snap.Tick, snap.X, snap.Y, snap.Dir, snap.Champions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Replay failed: %v\n", err)
		os.Exit(1)
	}
	if j.End == nil {
		fmt.Println("Journal has no end record; commands matched up to the last tick.")
		return
	}
	fmt.Println("Replay matches the recording.")
}
