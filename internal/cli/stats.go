package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AliAmouz/rustyPromodo/internal/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show productivity statistics from the stored history",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	database, sessions, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := sessions.Stats(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Productivity Statistics")
	fmt.Fprintln(out, "=======================")
	fmt.Fprintf(out, "Total Sessions: %d\n", stats.TotalSessions)
	fmt.Fprintf(out, "Completed Sessions: %d\n", stats.CompletedSessions)
	fmt.Fprintf(out, "Completion Rate: %.0f%%\n", stats.CompletionRate)
	fmt.Fprintf(out, "Total Focus Time: %d hours %d minutes\n", stats.FocusMinutes/60, stats.FocusMinutes%60)

	if len(stats.TopDays) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Most Productive Days:")
		fmt.Fprintln(out, "---------------------")
		for _, day := range stats.TopDays {
			fmt.Fprintf(out, "%s: %d sessions, %d hours %d minutes\n",
				day.Day, day.Sessions, day.Minutes/60, day.Minutes%60)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Tip: run 'pomodoro export' to get detailed session data")
	return nil
}
