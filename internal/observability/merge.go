package observability

import (
	"fmt"
	"strings"

	"github.com/jonathan/api-catalog/internal/merge"
	"github.com/jonathan/api-catalog/internal/report"
)

// PrintMergeHeader announces a merge run
func (p *Printer) PrintMergeHeader(label string, sourceCount, targetCount, tested int, dryRun bool) {
	p.Heading("Merging %s into the catalog", label)
	p.Printf("Source: %d entries\n", sourceCount)
	p.Printf("Target: %d entries (%d tested)\n", targetCount, tested)
	if dryRun {
		p.Warn("(dry run: no changes will be written)")
	}
	p.Printf("\n")
}

// PrintOutcome prints the one-line classification trace of a source entry
func (p *Printer) PrintOutcome(o merge.Outcome) {
	name := o.Record.Name
	switch o.Kind {
	case merge.OutcomeDuplicate:
		p.Printf("  %s %s\n", p.paint(dim, "DUPLICATE:"), name)
	case merge.OutcomeRenamed:
		p.Printf("  %s %s = %s\n", p.paint(dim, "RENAMED:"), name, o.Existing.Name)
	case merge.OutcomeURLUpdateApplied:
		p.Printf("  %s %s\n", p.paint(green, "URL UPDATE (broken -> pending):"), name)
	case merge.OutcomeURLUpdateFlagged:
		p.Printf("  %s %s (%s)\n", p.paint(yellow, "URL DIFF:"), name, o.Existing.Status)
	case merge.OutcomeCrossCategory:
		p.Printf("  %s %s (%s vs %s)\n", p.paint(yellow, "CROSS-CAT:"), name, o.Record.Category, o.Existing.Category)
	case merge.OutcomeDomainMatchAdded:
		p.Printf("  %s %s ~ %s\n", p.paint(cyan, "DOMAIN MATCH (added):"), name, o.Existing.Name)
	case merge.OutcomeDomainMatchSuppressed:
		p.Printf("  %s %s ~ %s\n", p.paint(cyan, "DOMAIN MATCH (suppressed):"), name, o.Existing.Name)
	default:
		p.Printf("  %s %s (%s)\n", p.paint(green, "NEW:"), name, o.Record.Category)
	}
}

// PrintMergeReport outputs the classification counts and the notable lists
// of a merge report
func (p *Printer) PrintMergeReport(r *report.Report) {
	if r == nil {
		return
	}

	var sb strings.Builder
	row := func(label string, n int) {
		sb.WriteString(fmt.Sprintf("%-36s %4d\n", label, n))
	}
	row("Exact duplicates (skipped):", r.Counts[merge.OutcomeDuplicate])
	row("URL match, renamed (skipped):", r.Counts[merge.OutcomeRenamed])
	row("Name+cat match, URL differs:", r.Counts[merge.OutcomeURLUpdateFlagged])
	row("Name+cat match, URL auto-updated:", r.Counts[merge.OutcomeURLUpdateApplied])
	row("Name match, diff category:", r.Counts[merge.OutcomeCrossCategory])
	row("Domain match (added as new):", r.Counts[merge.OutcomeDomainMatchAdded])
	if n := r.Counts[merge.OutcomeDomainMatchSuppressed]; n > 0 {
		row("Domain match (suppressed):", n)
	}
	row("Genuinely new:", r.Counts[merge.OutcomeNew])
	sb.WriteString(fmt.Sprintf("\nSource: %d entries, target: %d entries", r.SourceCount, r.TargetCount))
	p.printBox("MERGE REPORT: "+r.SourceLabel, sb.String())

	if len(r.TopCategories) > 0 {
		p.Printf("\n")
		p.Heading("NEW ENTRIES BY CATEGORY")
		for _, c := range r.TopCategories {
			p.Printf("  %-35s %3d\n", c.Category, c.Count)
		}
		if r.MoreCategories > 0 {
			p.Printf("  %s\n", p.paint(dim, fmt.Sprintf("... %d more categories (%d entries)", r.MoreCategories, r.MoreEntries)))
		}
	}

	if applied := r.Applied(); len(applied) > 0 {
		p.Printf("\n")
		p.Heading("URL UPDATES APPLIED (broken -> pending)")
		for _, u := range applied {
			p.Printf("  %s: %s\n    -> %s\n", u.Name, p.paint(dim, u.CurrentURL), p.paint(green, u.SourceURL))
		}
	}

	if flagged := r.Flagged(); len(flagged) > 0 {
		p.Printf("\n")
		p.Heading("URL DIFFS (not broken, flagged only)")
		for i, u := range flagged {
			if i == maxItemsToShow {
				p.Printf("  %s\n", p.paint(dim, fmt.Sprintf("... %d more", len(flagged)-maxItemsToShow)))
				break
			}
			p.Printf("  %s (%s): %s\n    -> %s\n", u.Name, u.CurrentStatus, p.paint(dim, u.CurrentURL), p.paint(yellow, u.SourceURL))
		}
	}

	if len(r.NewCategories) > 0 {
		p.Printf("\n")
		p.Heading("NEW CATEGORIES")
		for _, c := range r.NewCategories {
			p.Printf("  %s: %d entries\n", p.paint(green, c.Category), c.Count)
		}
	}

	if len(r.Anomalies) > 0 {
		p.Printf("\n")
		p.Heading("SOURCE ANOMALIES")
		for _, a := range r.Anomalies {
			p.Printf("  %s: %s\n", a.Name, a.Reason)
		}
	}
}

// PrintFiles lists written files
func (p *Printer) PrintFiles(paths []string) {
	if len(paths) == 0 {
		return
	}
	p.Printf("\n")
	p.Heading("Files written:")
	for _, path := range paths {
		p.Printf("  %s\n", path)
	}
}
