// Package cli defines the pomodoro command tree.
package cli

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AliAmouz/rustyPromodo/internal/config"
	"github.com/AliAmouz/rustyPromodo/internal/db"
	"github.com/AliAmouz/rustyPromodo/internal/repository"
	"github.com/AliAmouz/rustyPromodo/internal/service"
)

var rootCmd = &cobra.Command{
	Use:           "pomodoro",
	Short:         "A terminal pomodoro timer with local session history",
	Long:          "pomodoro runs interval work/break sessions in the terminal and keeps a local SQLite history for stats and export.",
	SilenceUsage:  true,
	SilenceErrors: true,
	// Running the bare command starts a session with default durations.
	RunE: runStart,
}

// Execute runs the command tree and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// openStore opens the session database, applies migrations, and wires the
// service stack shared by every subcommand.
func openStore(cfg config.Config) (*sql.DB, *service.SessionService, error) {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.RunMigrations(database); err != nil {
		_ = database.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	repo := repository.NewSessionRepository(database)
	return database, service.NewSessionService(repo), nil
}
