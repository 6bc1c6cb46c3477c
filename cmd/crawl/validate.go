package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crawlcore/internal/scenario"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check scenario files",
	Long: `Validate scenario files against the scenario schema and build each
one to catch layout and placement errors.

Examples:
  crawl validate ./my-dungeon.yaml
  crawl validate scenarios/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		sc, err := scenario.Load(path)
		if err != nil {
			fmt.Printf("FAIL  %s\n      %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s (%s)\n", path, sc.ID)
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d scenario files are invalid\n", failed, len(args))
		os.Exit(1)
	}
}
