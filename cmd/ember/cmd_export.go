package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zyphonz/ember/internal/store"
)

var exportOutput string

// exportCmd dumps the remote catalog to a local JSON file without starting
// the TUI.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the remote catalog to a JSON file",
	Long: `Fetches the full application database and writes it to a local file
in the same shape as the remote document. Unlike 'dev export' inside the
terminal, this command needs no developer login; it performs no writes.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "ember-data.json", "Output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	logger.Info("Fetching catalog", zap.String("bin", cfg.BinID))
	client := store.NewClient(cfg.BinURL(), cfg.MasterKey)
	doc, err := client.Load(ctx)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}

	if err := store.WriteExport(exportOutput, doc); err != nil {
		return err
	}

	logger.Info("Export written",
		zap.String("path", exportOutput),
		zap.Int("applications", len(doc.Applications)),
		zap.Int("categories", len(doc.Categories)))
	fmt.Printf("Data exported to %s (%d applications, %d categories)\n",
		exportOutput, len(doc.Applications), len(doc.Categories))
	return nil
}
