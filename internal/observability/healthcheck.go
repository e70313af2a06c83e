package observability

import (
	"strconv"
	"strings"

	"github.com/jonathan/api-catalog/internal/healthcheck"
)

// PrintCheck prints one health check result as it completes
func (p *Printer) PrintCheck(done, total int, r healthcheck.Result, verbose bool) {
	if r.Passed {
		p.Printf("  [%d/%d] %-30s %s  %s\n", done, total, r.Name, p.paint(green, "PASS"), p.paint(dim, r.Detail))
	} else {
		p.Printf("  [%d/%d] %-30s %s  %s\n", done, total, r.Name, p.paint(red, "FAIL"), r.Detail)
	}
	if !verbose {
		return
	}
	if r.ContentType != "" {
		p.Printf("    Content-Type: %s\n", r.ContentType)
	}
	if r.Preview != "" {
		p.Printf("    Preview: %s\n", strings.ReplaceAll(r.Preview, "\n", " "))
	}
}

// PrintHealthSummary outputs the pass/fail totals and the failed records
func (p *Printer) PrintHealthSummary(report *healthcheck.Report) {
	passed, failed := report.Passed(), report.Failed()
	p.Printf("\n%s\n", strings.Repeat("─", boxWidth))
	p.Printf("%s %s, %s, %s\n",
		p.paint(bold, "Results:"),
		p.paint(green, strconv.Itoa(len(passed))+" passed"),
		p.paint(red, strconv.Itoa(len(failed))+" failed"),
		p.paint(dim, strconv.Itoa(len(report.Skipped))+" skipped"))

	if len(failed) > 0 {
		p.Printf("\n%s\n", p.paint(red, "Failed APIs:"))
		for _, f := range failed {
			p.Printf("  - %s (%s)\n", f.Name, f.Category)
		}
	}
}
