package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AliAmouz/rustyPromodo/internal/config"
	"github.com/AliAmouz/rustyPromodo/internal/tui"
)

var (
	startWorkDuration  time.Duration
	startBreakDuration time.Duration
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run an interactive pomodoro session",
	RunE:  runStart,
}

func init() {
	startCmd.Flags().DurationVarP(&startWorkDuration, "work", "w", 0, "work phase duration (e.g. 25m)")
	startCmd.Flags().DurationVarP(&startBreakDuration, "break", "b", 0, "break phase duration (e.g. 5m)")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	work := cfg.WorkDuration
	if startWorkDuration > 0 {
		work = startWorkDuration
	}
	brk := cfg.BreakDuration
	if startBreakDuration > 0 {
		brk = startBreakDuration
	}

	database, sessions, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	screen := tui.New(tui.Config{
		WorkDuration:  work,
		BreakDuration: brk,
		Recorder:      sessions,
	})

	program := tea.NewProgram(screen, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
