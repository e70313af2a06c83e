package main

import (
	"fmt"
	"sort"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/config"
	"github.com/jonathan/api-catalog/internal/parsing"
	"github.com/jonathan/api-catalog/internal/types"
	"github.com/spf13/cobra"
)

var parseMarkdownCommand = &cobra.Command{
	Use:   "parse-markdown MARKDOWN",
	Short: "Build the store from the public API markdown list",
	Long: `Parses the "### Category" sections and API table rows of the markdown list into the canonical
store. Every parsed API starts pending. Refuses to replace a store that already holds verification
results unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runParseMarkdown,
}

var (
	parseOut   string
	parseForce bool
)

func init() {
	parseMarkdownCommand.Flags().StringVarP(&parseOut, "out", "o", "", "Output store path (default: the configured data file)")
	parseMarkdownCommand.Flags().BoolVar(&parseForce, "force", false, "Overwrite a store that holds tested APIs")

	rootCmd.AddCommand(parseMarkdownCommand)
}

func runParseMarkdown(cmd *cobra.Command, args []string) error {
	out := parseOut
	if !cmd.Flags().Changed("out") {
		cfg, err := config.Resolve("")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		out = cfg.DataFile
	}

	if !parseForce {
		tested, err := catalog.HasTested(out)
		if err != nil {
			return err
		}
		if tested > 0 {
			return &parsing.OverwriteError{Path: out, Tested: tested}
		}
	}

	res, err := parsing.ParseMarkdownFile(args[0])
	if err != nil {
		return err
	}

	printer := newPrinter()
	for _, w := range res.Warnings {
		printer.Warn("warning: %s", w)
	}

	if err := catalog.WriteJSON(out, res.Records); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	printer.Success("Parsed %d APIs in %d categories", len(res.Records), len(catalog.Categories(res.Records)))
	printer.Printf("Output: %s\n\n", out)

	counts := res.AuthCounts()
	auths := make([]types.Auth, 0, len(counts))
	for a := range counts {
		auths = append(auths, a)
	}
	sort.Slice(auths, func(i, j int) bool { return counts[auths[i]] > counts[auths[j]] })
	printer.Heading("Auth breakdown:")
	for _, a := range auths {
		printer.Printf("  %-15s %d\n", a, counts[a])
	}
	return nil
}
