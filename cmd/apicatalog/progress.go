package main

import (
	"fmt"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/progress"
	"github.com/spf13/cobra"
)

var progressCommand = &cobra.Command{
	Use:   "progress",
	Short: "Show verification progress per category",
	RunE:  runProgress,
}

var (
	progressData     string
	progressCategory string
	progressAuth     string
	progressSort     string
	progressPending  bool
	progressNext     bool
	progressXLSX     string
)

func init() {
	progressCommand.Flags().StringVar(&progressData, "data", "", "Path to the canonical store")
	progressCommand.Flags().StringVar(&progressCategory, "category", "", "Show every API of one category")
	progressCommand.Flags().StringVar(&progressAuth, "auth", "", "Only count APIs with this auth value")
	progressCommand.Flags().StringVar(&progressSort, "sort", "name", "Sort categories by name, total, done or pending")
	progressCommand.Flags().BoolVar(&progressPending, "pending", false, "List the pending APIs of --category")
	progressCommand.Flags().BoolVar(&progressNext, "next", false, "Show the categories closest to completion")
	progressCommand.Flags().StringVar(&progressXLSX, "xlsx", "", "Export the progress table and all APIs to an xlsx workbook")

	rootCmd.AddCommand(progressCommand)
}

func runProgress(cmd *cobra.Command, _ []string) error {
	if progressPending && progressCategory == "" {
		return fmt.Errorf("--pending requires --category")
	}
	mode, err := progress.ParseSortMode(progressSort)
	if err != nil {
		return err
	}

	dataFile, err := resolveDataFile(cmd, progressData)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store, err := catalog.Load(dataFile)
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	records := store.Records
	title := "API Verification Progress"
	if progressAuth != "" {
		records = progress.FilterAuth(records, progressAuth)
		title = fmt.Sprintf("%s (auth: %s)", title, progressAuth)
	}

	printer := newPrinter()
	switch {
	case progressNext:
		printer.PrintNext(progress.Next(records, progress.NextLimit))
	case progressPending:
		printer.PrintPendingList(progressCategory, progress.PendingIn(records, progressCategory))
	case progressCategory != "":
		detail := progress.Detail(records, progressCategory)
		if len(detail) == 0 {
			return fmt.Errorf("no APIs in category %q", progressCategory)
		}
		printer.PrintCategoryDetail(progressCategory, detail)
	default:
		stats := progress.Compute(records)
		progress.Sort(stats, mode)
		printer.PrintProgressTable(title, stats)
	}

	if progressXLSX != "" {
		stats := progress.Compute(records)
		progress.Sort(stats, mode)
		if err := progress.ExportXLSX(progressXLSX, stats, records); err != nil {
			return fmt.Errorf("failed to export xlsx: %w", err)
		}
		printer.Printf("\nWorkbook written to %s\n", progressXLSX)
	}
	return nil
}
