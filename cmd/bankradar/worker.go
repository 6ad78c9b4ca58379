package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/bankradar/internal/orchestrator"
)

// workerCmd is the child side of process isolation. stdout carries the JSON
// response, so logs go to stderr.
var workerCmd = &cobra.Command{
	Use:    "worker",
	Short:  "Run one fetch task read from stdin",
	Hidden: true,
	RunE:   runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	fetchers, err := buildFetchers(cfg, newHTTPClient(), newLimiters(cfg), logger)
	if err != nil {
		logger.Error("failed to build fetchers", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The parent enforces the task timeout by killing this process.
	runner := orchestrator.NewInProcessRunner(fetchers, 0)
	if err := orchestrator.ServeWorker(ctx, runner, os.Stdin, os.Stdout); err != nil {
		logger.Debug("task failed", "error", err)
		os.Exit(2)
	}
	return nil
}
