package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AliAmouz/rustyPromodo/internal/config"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session history as JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path (defaults to stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	database, sessions, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	exported, err := sessions.Export(cmd.Context())
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	}

	if err := os.WriteFile(exportOutput, raw, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	log.Info("data exported", "path", exportOutput, "sessions", len(exported))
	return nil
}
