package main

import (
	"os"
	"time"

	"github.com/jonathan/api-catalog/internal/config"
	"github.com/jonathan/api-catalog/internal/observability"
	"github.com/spf13/cobra"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

func newPrinter() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}

// resolveDataFile returns --data when given, otherwise the store path from
// the environment or the built-in default
func resolveDataFile(cmd *cobra.Command, flagValue string) (string, error) {
	if cmd.Flags().Changed("data") {
		return flagValue, nil
	}
	cfg, err := config.Resolve("")
	if err != nil {
		return "", err
	}
	return cfg.DataFile, nil
}
