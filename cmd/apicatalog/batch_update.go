package main

import (
	"fmt"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/update"
	"github.com/spf13/cobra"
)

var batchUpdateCommand = &cobra.Command{
	Use:   "batch-update SESSION",
	Short: "Apply a session file of verification results to the store",
	Long: `Reads a JSON array of directives ({"name", "status", "notes", optional "try-it"}) and applies
each to the first record whose name matches case-insensitively. The whole session is validated
before anything is applied. Unmatched names are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatchUpdate,
}

var (
	batchData   string
	batchDryRun bool
)

func init() {
	batchUpdateCommand.Flags().StringVar(&batchData, "data", "", "Path to the canonical store")
	batchUpdateCommand.Flags().BoolVar(&batchDryRun, "dry-run", false, "Show what would change without writing")

	rootCmd.AddCommand(batchUpdateCommand)
}

func runBatchUpdate(cmd *cobra.Command, args []string) error {
	dataFile, err := resolveDataFile(cmd, batchData)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	directives, err := update.LoadSession(args[0])
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	store, err := catalog.Load(dataFile)
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	printer := newPrinter()
	printer.Heading("Applying %d updates from %s", len(directives), args[0])
	if batchDryRun {
		printer.Warn("(dry run: no changes will be written)")
	}
	printer.Printf("\n")

	updated, res := update.ApplyBatch(store.Records, directives, today())
	printer.PrintBatchResult(res)

	if batchDryRun || res.Succeeded() == 0 {
		return nil
	}

	store.Records = updated
	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}
	printer.Success("Saved to %s", dataFile)
	return nil
}
