package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [scenario]",
	Short: "Show recorded sessions",
	Long: `Display the most recent sessions, newest first. Without a scenario,
a summary per scenario is printed before the session list.

Examples:
  crawl history
  crawl history crypt --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
}

func runHistory(_ *cobra.Command, args []string) {
	cfg := mustConfig()
	logger, closer := newLogger(cfg, false)
	defer closer.Close()

	store := openStore(cfg, logger)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	scenarioID := ""
	if len(args) == 1 {
		scenarioID = args[0]
	}

	if scenarioID == "" {
		stats, err := store.AllScenarioStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		ids := make([]string, 0, len(stats))
		for id := range stats {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		if len(ids) > 0 {
			fmt.Println("Scenarios")
			fmt.Println()
			fmt.Printf("  %-12s  %8s  %10s  %10s  %s\n", "Scenario", "Sessions", "Ticks", "Longest", "Last played")
			for _, id := range ids {
				st := stats[id]
				fmt.Printf("  %-12s  %8d  %10d  %10d  %s\n",
					id, st.Sessions, st.TotalTicks, st.LongestRun, st.LastPlayed.Local().Format("2006-01-02 15:04"))
			}
			fmt.Println()
		}
	}

	sessions, err := store.RecentSessions(scenarioID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Println("Recent sessions")
	fmt.Println()
	fmt.Printf("  %-36s  %-10s  %-10s  %8s  %6s  %8s  %s\n", "ID", "Scenario", "Player", "Ticks", "Cmds", "Duration", "Ended")
	for _, s := range sessions {
		player := s.Player
		if player == "" {
			player = s.Origin
		}
		fmt.Printf("  %-36s  %-10s  %-10s  %8d  %6d  %8s  %s\n",
			s.ID, s.Scenario, player, s.Ticks, s.Commands,
			s.Duration().Round(time.Second), s.EndedAt.Local().Format("2006-01-02 15:04"))
	}
}
