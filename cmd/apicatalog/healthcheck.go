package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/config"
	"github.com/jonathan/api-catalog/internal/fetch"
	"github.com/jonathan/api-catalog/internal/healthcheck"
	"github.com/spf13/cobra"
)

var healthcheckCommand = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check the try-it endpoints of working APIs",
	Long: `Requests the try-it URL of every working API and checks that it still answers with the
expected kind of response. Exits with status 1 when any check fails. With --fix, failed APIs
are marked broken in the store.`,
	RunE: runHealthcheck,
}

var (
	healthConfigPath  string
	healthData        string
	healthCategory    string
	healthTimeout     int
	healthFix         bool
	healthVerbose     bool
	healthConcurrency int
	healthRate        float64
	healthInsecure    bool
	healthReport      string
)

func init() {
	healthcheckCommand.Flags().StringVar(&healthConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	healthcheckCommand.Flags().StringVar(&healthData, "data", "", "Path to the canonical store")
	healthcheckCommand.Flags().StringVar(&healthCategory, "category", "", "Only check APIs in this category")
	healthcheckCommand.Flags().IntVar(&healthTimeout, "timeout", 0, "Request timeout in seconds (default 10)")
	healthcheckCommand.Flags().BoolVar(&healthFix, "fix", false, "Mark failed APIs as broken")
	healthcheckCommand.Flags().BoolVarP(&healthVerbose, "verbose", "v", false, "Print content type and a body preview per check")
	healthcheckCommand.Flags().IntVar(&healthConcurrency, "concurrency", 0, "Number of checks in flight (default 1)")
	healthcheckCommand.Flags().Float64Var(&healthRate, "rate", 0, "Maximum checks started per second (0 = unlimited)")
	healthcheckCommand.Flags().BoolVar(&healthInsecure, "insecure", false, "Skip TLS certificate verification")
	healthcheckCommand.Flags().StringVar(&healthReport, "report", "", "Write the run report as JSON to this path")

	rootCmd.AddCommand(healthcheckCommand)
}

func runHealthcheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(healthConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("data") {
		cfg.DataFile = healthData
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = healthTimeout
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = healthConcurrency
	}
	if cmd.Flags().Changed("rate") {
		cfg.RatePerSecond = healthRate
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := catalog.Load(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	checker := healthcheck.NewChecker(&fetch.Options{
		Timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
		Insecure: healthInsecure,
	})
	if healthVerbose {
		log.Printf("[VERBOSE] Timeout: %ds, concurrency: %d, rate: %.2f/s", cfg.TimeoutSeconds, cfg.Concurrency, cfg.RatePerSecond)
	}

	printer := newPrinter()
	scope := "all categories"
	if healthCategory != "" {
		scope = healthCategory
	}
	printer.Heading("Health check: %s", scope)
	printer.Printf("\n")

	report, err := healthcheck.Run(ctx, checker, store.Records, healthcheck.RunOptions{
		Category:      healthCategory,
		Concurrency:   cfg.Concurrency,
		RatePerSecond: cfg.RatePerSecond,
		OnResult: func(done, total int, r healthcheck.Result) {
			printer.PrintCheck(done, total, r, healthVerbose)
		},
	})
	if err != nil {
		return fmt.Errorf("health check interrupted: %w", err)
	}

	if report.Candidates == 0 {
		printer.Warn("No working APIs to check")
		return nil
	}
	for _, s := range report.Skipped {
		printer.Printf("  SKIP %s (no try-it URL)\n", s.Name)
	}
	printer.PrintHealthSummary(report)

	if healthReport != "" {
		if err := report.Save(healthReport); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		printer.Printf("\nReport written to %s\n", healthReport)
	}

	failed := report.Failed()
	if healthFix && len(failed) > 0 {
		store.Records = healthcheck.MarkBroken(store.Records, failed, today())
		if err := store.Save(); err != nil {
			return fmt.Errorf("failed to save store: %w", err)
		}
		printer.Success("Marked %d APIs as broken in %s", len(failed), cfg.DataFile)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d health checks failed", len(failed), len(report.Results))
	}
	return nil
}
