package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zyphonz/ember/internal/catalog"
	"github.com/zyphonz/ember/internal/store"
)

// statsCmd prints catalog statistics without starting the TUI.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
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

	s := catalog.Summarize(doc.Applications, doc.Categories)
	fmt.Println("EMBER Database Statistics")
	fmt.Println("=========================")
	fmt.Printf("Total Applications: %d\n", s.Total)
	fmt.Printf("Categories:         %d\n", s.Categories)
	fmt.Printf("Free Apps:          %d\n", s.Free)
	fmt.Printf("Premium Apps:       %d\n", s.Premium)
	fmt.Printf("Average Rating:     %.1f/10\n", s.AvgRating)
	return nil
}
