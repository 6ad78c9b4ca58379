package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/bankradar/internal/audit"
	"github.com/amishk599/bankradar/internal/classify"
	"github.com/amishk599/bankradar/internal/model"
	"github.com/amishk599/bankradar/internal/store"
)

var auditLimit int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Browse stored postings interactively (TUI)",
	Long:  "Shows the source picker, then a split-pane view of stored postings and those the current rules would classify differently.",
	RunE:  runAuditCmd,
}

func init() {
	auditCmd.Flags().IntVar(&auditLimit, "limit", 500, "number of most recent postings to load")
	rootCmd.AddCommand(auditCmd)
}

func runAuditCmd(cmd *cobra.Command, args []string) error {
	// Any log line written before the alt-screen starts corrupts the display.
	silentLogger := newLogger(io.Discard, false)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	classifier, err := classify.Default()
	if err != nil {
		return fmt.Errorf("building classifier: %w", err)
	}
	inspector := audit.Inspector{
		Classifier: classifier,
		Countries:  loadCountries(cfg, silentLogger),
	}

	postings, err := audit.RunLoader("stored postings", func(ctx context.Context) ([]model.EnrichedPosting, error) {
		return sqlStore.Recent(ctx, auditLimit)
	})
	if err != nil {
		fmt.Printf("Error loading postings: %v\n", err)
		return nil
	}
	if len(postings) == 0 {
		fmt.Println("No stored postings.")
		return nil
	}

	runAudit(postings, inspector)
	return nil
}

func runAudit(postings []model.EnrichedPosting, inspector audit.Inspector) {
	sources := audit.CountBySource(postings)
	for {
		choice, err := audit.RunSourcePicker(sources)
		if err != nil {
			fmt.Printf("Picker error: %v\n", err)
			return
		}
		if choice < 0 {
			return
		}

		selected := audit.OfSource(postings, sources[choice].Source)
		wantQuit, err := audit.RunAuditTUI(selected, inspector)
		if err != nil {
			fmt.Printf("TUI error: %v\n", err)
		}
		if wantQuit {
			return
		}
		// else: loop → back to picker
	}
}
