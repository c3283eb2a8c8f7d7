package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/game"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	wonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	deadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best recorded runs and overall statistics.

Runs are only kept when --db points at a file; the default
in-memory database is empty on every start.

Examples:
  doodle scores --db ~/.doodle/runs.db
  doodle scores --db ~/.doodle/runs.db --recent --limit 5
  doodle scores --db ~/.doodle/runs.db --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	if hint := historyHint(flagDBPath); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	var runs []storage.RunEntry
	title := "Best Runs"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println(titleStyle.Render(title))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'doodle --db <file>' and pass the same --db here.")
		return
	}

	fmt.Println(headStyle.Render(fmt.Sprintf("  %-4s  %-22s  %-7s  %-7s  %-8s  %s",
		"Rank", "Score", "Outcome", "Markers", "Time", "Date")))
	for i, r := range runs {
		outcome := deadStyle.Render(fmt.Sprintf("%-7s", r.Outcome))
		if r.Outcome == game.OutcomeWon {
			outcome = wonStyle.Render(fmt.Sprintf("%-7s", r.Outcome))
		}
		fmt.Printf("  %-4d  %-22s  %s  %-7d  %-8s  %s\n",
			i+1,
			game.FormatScore(r.Score),
			outcome,
			r.Markers,
			r.Duration.Round(time.Second),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Best: %s  Average: %s  Played: %s\n",
		stats.Runs,
		stats.Wins,
		game.FormatScore(stats.BestScore),
		game.FormatScore(int64(stats.AvgScore)),
		stats.TotalTime.Round(time.Second))
}

// historyHint explains why a database path can never hold past runs.
func historyHint(dbPath string) string {
	if dbPath == "" || dbPath == storage.MemoryPath {
		return "Note: --db is not set, so no history is kept between runs. " +
			"Pass the --db file used when playing, e.g. 'doodle scores --db ~/.doodle/runs.db'."
	}
	return ""
}
