package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/bankradar/internal/model"
	"github.com/amishk599/bankradar/internal/store"
)

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one collection cycle and exit",
	Long:  "Fetches every enabled source once, stores and notifies new postings, evicts expired ones, then exits.",
	RunE:  runOnce,
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "do not persist anything; every posting counts as new")
	rootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	path := resolveConfigPath(cfgPath)
	cfg, err := loadConfig(path)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logConfig(cfg, logger)

	var st model.Store
	if dryRun {
		logger.Info("dry-run mode enabled, nothing will be stored")
		st = store.NewNopStore()
	} else {
		sqlStore, err := store.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		st = sqlStore
	}

	n := setupNotifier(cfg, newHTTPClient(), logger)
	cycle, err := buildCycle(cfg, path, st, n, logger)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sum, err := cycle.Run(ctx)
	if err != nil {
		logger.Error("cycle failed", "error", err)
		os.Exit(1)
	}
	if sum.Tasks > 0 && len(sum.Failures) == sum.Tasks {
		logger.Error("every fetch task failed", "tasks", sum.Tasks)
		os.Exit(1)
	}
	return nil
}
