package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/bankradar/internal/store"
)

var evictRetention string

var evictCmd = &cobra.Command{
	Use:   "evict",
	Short: "Delete postings older than the retention window",
	RunE:  runEvict,
}

func init() {
	evictCmd.Flags().StringVar(&evictRetention, "retention", "", "override the configured retention, e.g. 720h")
	rootCmd.AddCommand(evictCmd)
}

func runEvict(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	window := cfg.Retention
	if evictRetention != "" {
		if window, err = parsePositiveDuration(evictRetention); err != nil {
			return fmt.Errorf("--retention: %w", err)
		}
	}

	sqlStore, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	n, err := sqlStore.EvictOlderThan(context.Background(), window)
	if err != nil {
		logger.Error("eviction failed", "error", err)
		os.Exit(1)
	}
	remaining, err := sqlStore.Count(context.Background())
	if err != nil {
		logger.Error("counting postings failed", "error", err)
		os.Exit(1)
	}
	logger.Info("evicted postings", "count", n, "remaining", remaining, "retention", window.String())
	return nil
}
