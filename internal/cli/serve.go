package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AliAmouz/rustyPromodo/internal/config"
	"github.com/AliAmouz/rustyPromodo/internal/handler"
	"github.com/AliAmouz/rustyPromodo/internal/router"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only history API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Port = servePort
	}

	database, sessions, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	sessionHandler := handler.NewSessionHandler(sessions)
	engine := router.New(sessionHandler, cfg.CORSOrigins)

	log.Info("history API listening", "port", cfg.Port, "db", cfg.DBPath)
	if err := engine.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}
