package main

import (
	"fmt"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/types"
	"github.com/jonathan/api-catalog/internal/update"
	"github.com/spf13/cobra"
)

var updateCommand = &cobra.Command{
	Use:   "update NAME",
	Short: "Update the verification fields of one API",
	Long: `Finds the API by exact case-insensitive name, falling back to a substring match, and
updates its status, notes or try-it endpoint. Use --category to narrow an ambiguous name.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateData       string
	updateStatus     string
	updateNotes      string
	updateTryURL     string
	updateTryType    string
	updateTryParams  string
	updateClearTryIt bool
	updateCategory   string
	updateDryRun     bool
)

func init() {
	updateCommand.Flags().StringVar(&updateData, "data", "", "Path to the canonical store")
	updateCommand.Flags().StringVar(&updateStatus, "status", "", "New status: pending, working, broken, needs-key, paid-only, skipped")
	updateCommand.Flags().StringVar(&updateNotes, "notes", "", "Verification notes")
	updateCommand.Flags().StringVar(&updateTryURL, "try-url", "", "Try-it endpoint URL, may contain {placeholders}")
	updateCommand.Flags().StringVar(&updateTryType, "try-type", "", "Try-it response type: json, image, text (required with --try-url)")
	updateCommand.Flags().StringVar(&updateTryParams, "try-params", "", "Try-it placeholder values as a JSON object")
	updateCommand.Flags().BoolVar(&updateClearTryIt, "clear-tryit", false, "Remove the try-it endpoint")
	updateCommand.Flags().StringVar(&updateCategory, "category", "", "Only match APIs in this category")
	updateCommand.Flags().BoolVar(&updateDryRun, "dry-run", false, "Show the change without writing")

	rootCmd.AddCommand(updateCommand)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var changes update.Changes
	if cmd.Flags().Changed("status") {
		status := types.Status(updateStatus)
		changes.Status = &status
	}
	if cmd.Flags().Changed("notes") {
		notes := updateNotes
		changes.Notes = &notes
	}
	tryIt, err := update.BuildTryIt(updateTryURL, updateTryType, updateTryParams)
	if err != nil {
		return err
	}
	changes.TryIt = tryIt
	changes.ClearTryIt = updateClearTryIt
	if err := changes.Validate(); err != nil {
		return err
	}

	dataFile, err := resolveDataFile(cmd, updateData)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store, err := catalog.Load(dataFile)
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	idx, err := update.Resolve(store.Records, args[0], updateCategory)
	if err != nil {
		return err
	}

	rec := &store.Records[idx]
	printer := newPrinter()
	printer.PrintRecord("BEFORE:", rec)

	update.Apply(rec, changes, today())
	printer.Printf("\n")
	printer.PrintRecord("AFTER:", rec)

	if updateDryRun {
		printer.Printf("\n")
		printer.Warn("(dry run: no changes written)")
		return nil
	}

	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}
	printer.Printf("\n")
	printer.Success("Saved to %s", dataFile)
	return nil
}
