package observability

import (
	"fmt"
	"strings"

	"github.com/jonathan/api-catalog/internal/progress"
	"github.com/jonathan/api-catalog/internal/types"
)

var (
	tableHeaders = []string{"Category", "Total", "Wkg", "Brk", "Key", "Paid", "Skip", "Pnd", "Done"}
	tableWidths  = []int{22, 6, 5, 5, 5, 5, 5, 5, 6}
)

// barWidth is the width of the completion bar in the next-categories list
const barWidth = 20

func tableRule() string {
	total := len(tableWidths)
	for _, w := range tableWidths {
		total += w
	}
	return strings.Repeat("─", total)
}

// PrintProgressTable outputs the per-category status table with a total row
func (p *Printer) PrintProgressTable(title string, stats []progress.CategoryStats) {
	totals := progress.Totals(stats)
	p.Heading("%s", title)
	p.Printf("%d/%d tested (%s)\n\n", totals.Tested(), totals.Total, totals.Done())

	header := make([]string, len(tableHeaders))
	for i, h := range tableHeaders {
		header[i] = p.paint(bold, fmt.Sprintf("%-*s", tableWidths[i], h))
	}
	p.Printf("%s\n", strings.Join(header, " "))
	p.Printf("%s\n", tableRule())

	for _, c := range stats {
		p.Printf("%s\n", p.progressRow(c, false))
	}
	p.Printf("%s\n", tableRule())
	p.Printf("%s\n", p.progressRow(totals, true))
}

func (p *Printer) progressRow(c progress.CategoryStats, total bool) string {
	cell := func(i int, v interface{}) string {
		return fmt.Sprintf("%-*v", tableWidths[i], v)
	}
	emphasis := ""
	if total {
		emphasis = bold
	}
	parts := []string{
		p.paint(emphasis, cell(0, c.Name)),
		p.paint(emphasis, cell(1, c.Total)),
		p.paint(green, cell(2, c.Count(types.StatusWorking))),
		p.paint(red, cell(3, c.Count(types.StatusBroken))),
		p.paint(yellow, cell(4, c.Count(types.StatusNeedsKey))),
		p.paint(yellow, cell(5, c.Count(types.StatusPaidOnly))),
		p.paint(dim, cell(6, c.Count(types.StatusSkipped))),
		p.paint(dim, cell(7, c.Pending())),
		p.paint(emphasis, cell(8, c.Done())),
	}
	return strings.Join(parts, " ")
}

// PrintCategoryDetail lists every record of a category with a status summary.
// records must already be in display order.
func (p *Printer) PrintCategoryDetail(category string, records []types.APIRecord) {
	p.Printf("\n%s - %d APIs\n\n", p.paint(bold, category), len(records))

	for i := range records {
		r := &records[i]
		notes := ""
		if r.Notes != "" {
			notes = p.paint(dim, " - "+r.Notes)
		}
		p.Printf("  %s %s %s%s\n", p.Status(r.Status, 10), p.paint(dim, fmt.Sprintf("%-12s", r.Auth)), r.Name, notes)
	}

	stats := progress.Compute(records)
	if len(stats) == 0 {
		return
	}
	s := stats[0]
	p.Printf("\n  %s %d/%d tested (%s)\n", p.paint(bold, "Summary:"), s.Tested(), s.Total, s.Done())
	for _, status := range types.Statuses {
		if n := s.Count(status); n > 0 {
			p.Printf("    %s %d\n", p.paint(statusColors[status], string(status)+":"), n)
		}
	}
}

// PrintPendingList lists the pending records of a category with their URLs
func (p *Printer) PrintPendingList(category string, records []types.APIRecord) {
	if len(records) == 0 {
		p.Success("No pending APIs in '%s'", category)
		return
	}
	p.Printf("\n%s - %d pending\n\n", p.paint(bold, category), len(records))
	for i := range records {
		p.Printf("  %s %s\n", p.paint(dim, fmt.Sprintf("%-12s", records[i].Auth)), records[i].Name)
		p.Printf("             %s\n", p.paint(dim, records[i].URL))
	}
	p.Printf("\n")
}

// PrintNext lists the categories closest to completion with a progress bar
func (p *Printer) PrintNext(stats []progress.CategoryStats) {
	p.Printf("\n")
	p.Heading("Categories closest to completion:")
	p.Printf("\n")
	for _, c := range stats {
		filled := 0
		if c.Total > 0 {
			filled = c.Tested() * barWidth / c.Total
		}
		bar := p.paint(green, strings.Repeat("█", filled)) + p.paint(dim, strings.Repeat("░", barWidth-filled))
		p.Printf("  %-25s %s %d/%d (%d pending)\n", c.Name, bar, c.Tested(), c.Total, c.Pending())
	}
	p.Printf("\n")
}
