package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/config"
	"github.com/jonathan/api-catalog/internal/merge"
	"github.com/jonathan/api-catalog/internal/report"
	"github.com/spf13/cobra"
)

var mergeCommand = &cobra.Command{
	Use:   "merge",
	Short: "Merge a secondary source catalog into the store",
	Long: `Classifies every entry of the secondary source against the store: exact duplicates,
renames, URL changes, cross-category name matches, same-domain siblings and genuinely new APIs.

Without --apply the run is a preview: the report files are written but the store is not.
Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMerge,
}

var (
	mergeConfigPath   string
	mergeApply        bool
	mergeVerbose      bool
	mergeSource       string
	mergeData         string
	mergeReportDir    string
	mergeDomainPolicy string
)

func init() {
	mergeCommand.Flags().StringVar(&mergeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	mergeCommand.Flags().BoolVar(&mergeApply, "apply", false, "Write the merged store (default is a preview)")
	mergeCommand.Flags().BoolVarP(&mergeVerbose, "verbose", "v", false, "Print the classification of every source entry")
	mergeCommand.Flags().StringVar(&mergeSource, "source", "", "Path to the secondary source catalog")
	mergeCommand.Flags().StringVar(&mergeData, "data", "", "Path to the canonical store")
	mergeCommand.Flags().StringVar(&mergeReportDir, "report-dir", "", "Directory for the merge report files")
	mergeCommand.Flags().StringVar(&mergeDomainPolicy, "domain-policy", "", "Same-domain handling: insert-and-flag, insert-only or suppress")

	rootCmd.AddCommand(mergeCommand)
}

func runMerge(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(mergeConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if mergeVerbose && mergeConfigPath != "" {
		log.Printf("[VERBOSE] Loaded config from: %s", mergeConfigPath)
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("source") {
		cfg.SourceFile = mergeSource
	}
	if cmd.Flags().Changed("data") {
		cfg.DataFile = mergeData
	}
	if cmd.Flags().Changed("report-dir") {
		cfg.ReportDir = mergeReportDir
	}
	if cmd.Flags().Changed("domain-policy") {
		cfg.DomainPolicy = mergeDomainPolicy
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	policy, err := merge.ParseDomainPolicy(cfg.DomainPolicy)
	if err != nil {
		return err
	}

	store, err := catalog.Load(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	source, err := catalog.LoadSource(cfg.SourceFile)
	if err != nil {
		return fmt.Errorf("failed to load source: %w", err)
	}
	if mergeVerbose {
		log.Printf("[VERBOSE] Store: %s, source: %s, policy: %s", cfg.DataFile, cfg.SourceFile, policy)
	}

	printer := newPrinter()
	printer.PrintMergeHeader(merge.DefaultSourceLabel, len(source), len(store.Records), catalog.TestedCount(store.Records), !mergeApply)

	opts := merge.RunOptions{
		DomainPolicy: policy,
		SourceLabel:  merge.DefaultSourceLabel,
	}
	if mergeVerbose {
		opts.OnOutcome = func(_ int, out merge.Outcome) {
			printer.PrintOutcome(out)
		}
	}

	res, runErr := merge.Run(store.Records, source, opts)
	var integrityErr *merge.IntegrityError
	if runErr != nil && !errors.As(runErr, &integrityErr) {
		return fmt.Errorf("merge failed: %w", runErr)
	}

	rep := report.Build(report.Input{
		Result:      res,
		Target:      store.Records,
		SourceCount: len(source),
		SourceLabel: merge.DefaultSourceLabel,
		Date:        today(),
	})
	printer.PrintMergeReport(rep)

	written, err := report.WriteArtifacts(rep, cfg.ReportDir)
	if err != nil {
		return fmt.Errorf("failed to write merge report: %w", err)
	}
	printer.PrintFiles(written)

	if integrityErr != nil {
		printer.Fail("ABORTING: store not written")
		return integrityErr
	}

	if rep.NothingToMerge() {
		printer.Printf("\nNothing to merge.\n")
		return nil
	}

	if !mergeApply {
		printer.Printf("\n")
		printer.Warn("Preview only. Run with --apply to write %d entries to %s", len(res.Merged), cfg.DataFile)
		return nil
	}

	store.Records = res.Merged
	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}
	printer.Printf("\n")
	printer.Success("Wrote %d entries to %s (%d tested preserved)", len(res.Merged), cfg.DataFile, res.TestedAfter)
	return nil
}
