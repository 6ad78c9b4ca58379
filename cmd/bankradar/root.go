package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amishk599/bankradar/internal/config"
	"github.com/amishk599/bankradar/internal/model"
	"github.com/amishk599/bankradar/internal/notifier"
)

var (
	cfgPath string
	debug   bool
)

// rootCmd without a subcommand runs one cycle so cron entries can call the
// binary directly.
var rootCmd = &cobra.Command{
	Use:          "bankradar",
	Short:        "Bank job radar",
	Long:         "bankradar collects postings from bank career sites, classifies them and alerts on new ones.",
	RunE:         runOnce,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: BANKRADAR_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// resolveConfigPath applies the priority: explicit path > BANKRADAR_CONFIG > "./config.yaml".
func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv("BANKRADAR_CONFIG"); env != "" {
		return env
	}
	return "config.yaml"
}

// loadConfig resolves the config path and parses it.
func loadConfig(path string) (*config.Config, error) {
	return config.Load(resolveConfigPath(path))
}

func setupLogger(dbg bool) *slog.Logger {
	return newLogger(os.Stdout, dbg)
}

func newLogger(w io.Writer, dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Notifier {
	switch cfg.Notification.Type {
	case "discord":
		logger.Info("using discord notifier")
		return notifier.NewDiscordNotifier(cfg.Notification.WebhookURL, httpClient, logger)
	default:
		return notifier.NewLogNotifier(logger)
	}
}

func logConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("config loaded",
		"sources", len(cfg.EnabledSources()),
		"keywords", len(cfg.Keywords),
		"hours", cfg.Hours,
		"workers", cfg.Workers,
		"isolation", cfg.Isolation,
		"interval", cfg.Interval.String(),
		"retention", cfg.Retention.String(),
		"db", cfg.DBPath,
	)
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %q must be positive", s)
	}
	return d, nil
}
