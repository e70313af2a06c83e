// Package main provides the entry point for the apicatalog CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "apicatalog",
	Short: "Curate the public API catalog",
	Long:  "apicatalog merges secondary API sources into the verified public API catalog, records manual verification results and checks working APIs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
