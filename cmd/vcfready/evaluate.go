package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcfready/vcfready/internal/assessment"
	"github.com/vcfready/vcfready/internal/blob"
	"github.com/vcfready/vcfready/internal/history"
	"github.com/vcfready/vcfready/pkg/config"
	"github.com/vcfready/vcfready/pkg/ledger"
	"github.com/vcfready/vcfready/pkg/readiness"
	"github.com/vcfready/vcfready/pkg/surface"
)

type evaluateOpts struct {
	ledger      ledgerFlags
	catalogPath string
	classifier  string
	outputFmt   string
	noHistory   bool
}

func newEvaluateCmd() *cobra.Command {
	var opts evaluateOpts

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a ledger and print the readiness report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.Context(), opts)
		},
	}

	opts.ledger.register(cmd)
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog file (default: built-in)")
	cmd.Flags().StringVar(&opts.classifier, "classifier", "", "Classifier: phrase or severity (default from config)")
	cmd.Flags().StringVar(&opts.outputFmt, "output", "text", "Output format: text, json or markdown")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "Do not record this evaluation in the history database")

	return cmd
}

func runEvaluate(ctx context.Context, opts evaluateOpts) error {
	cfg := loadConfig()
	renderer, err := surface.ForFormat(opts.outputFmt)
	if err != nil {
		return err
	}
	result, engine, path, err := evaluateLedger(cfg, opts.ledger, opts.catalogPath, opts.classifier)
	if err != nil {
		return err
	}

	if err := renderer.Render(os.Stdout, result); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if !opts.noHistory {
		recordHistory(ctx, history.NewRecord(path, engine.Classifier().Name(), result))
	}
	return nil
}

func evaluateLedger(cfg *config.Config, lf ledgerFlags, catalogPath, classifier string) (*readiness.Result, *readiness.Engine, string, error) {
	cat, err := loadCatalog(cfg, catalogPath)
	if err != nil {
		return nil, nil, "", err
	}
	engine, err := newEngine(cfg, cat, classifier)
	if err != nil {
		return nil, nil, "", err
	}
	path := lf.resolve()
	l, err := ledger.Load(path)
	if err != nil {
		return nil, nil, "", err
	}
	return engine.Evaluate(l), engine, path, nil
}

// recordHistory appends to the local history database. Failures only warn.
func recordHistory(ctx context.Context, rec history.Record) {
	store, err := history.Open(config.HistoryPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if _, err := store.Add(ctx, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", err)
	}
}

func newExportCmd() *cobra.Command {
	var (
		lf          ledgerFlags
		catalogPath string
		classifier  string
		title       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a Markdown readiness report to report storage",
		Long: `Scores the ledger and writes the Markdown report, plus a copy of the
ledger, to the storage backend configured under storage: in
.vcfready/config.yaml (local directory, S3 or GCS).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := loadConfig()
			result, _, path, err := evaluateLedger(cfg, lf, catalogPath, classifier)
			if err != nil {
				return err
			}

			store, err := blob.Open(ctx, blob.Options{
				Backend:  cfg.Storage.Backend,
				LocalDir: firstNonEmpty(cfg.Storage.LocalDir, config.ReportDir()),
				Bucket:   cfg.Storage.Bucket,
				Region:   cfg.Storage.Region,
				Endpoint: cfg.Storage.Endpoint,
			})
			if err != nil {
				return fmt.Errorf("opening report storage: %w", err)
			}

			rep, err := exportReport(ctx, store, path, title, result)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Report %s saved (%s, Score %d%%)\n", rep.ID, rep.Label, rep.Score)
			fmt.Println(rep.ID)
			return nil
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in)")
	cmd.Flags().StringVar(&classifier, "classifier", "", "Classifier: phrase or severity (default from config)")
	cmd.Flags().StringVar(&title, "title", "", "Report title")

	return cmd
}

func exportReport(ctx context.Context, store blob.Storage, ledgerPath, title string, result *readiness.Result) (*assessment.Report, error) {
	raw, err := os.ReadFile(ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	assessmentID := strings.TrimSuffix(filepath.Base(ledgerPath), filepath.Ext(ledgerPath))
	return assessment.PublishReport(ctx, store, assessmentID, title, raw, result, time.Now())
}
