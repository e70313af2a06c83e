package observability

import (
	"fmt"

	"github.com/jonathan/api-catalog/internal/types"
	"github.com/jonathan/api-catalog/internal/update"
)

// PrintRecord outputs one record's verification fields under a label
func (p *Printer) PrintRecord(label string, r *types.APIRecord) {
	none := p.paint(dim, "(none)")

	notes := none
	if r.Notes != "" {
		notes = r.Notes
	}
	checked := none
	if r.DateChecked != nil {
		checked = *r.DateChecked
	}

	p.Printf("%s %s (%s)\n", label, p.paint(bold, r.Name), r.Category)
	p.Printf("  status:       %s\n", p.Status(r.Status, 0))
	p.Printf("  notes:        %s\n", notes)
	p.Printf("  date-checked: %s\n", checked)
	p.Printf("  try-it:       %s\n", p.formatTryIt(r.TryIt))
}

func (p *Printer) formatTryIt(t *types.TryIt) string {
	if t == nil {
		return p.paint(dim, "null")
	}
	s := fmt.Sprintf("%s (%s)", t.URL, t.ResponseType)
	if len(t.Params) > 0 {
		s += " params=" + t.Params.String()
	}
	return s
}

// PrintBatchLine prints one applied or missed directive
func (p *Printer) PrintBatchLine(a update.Applied) {
	p.Printf("  %-40s %s -> %s\n", a.Name, p.paint(dim, fmt.Sprintf("%-10s", a.OldStatus)), p.Status(a.NewStatus, 0))
}

// PrintBatchResult outputs the per-directive lines and the batch totals
func (p *Printer) PrintBatchResult(res *update.BatchResult) {
	for _, a := range res.Applied {
		p.PrintBatchLine(a)
	}
	for _, name := range res.NotFound {
		p.Printf("  %s %s\n", p.paint(red, "NOT FOUND:"), name)
	}
	p.Printf("\n%s %d updated, %d failed out of %d total\n", p.paint(bold, "Done:"), res.Succeeded(), res.Failed(), res.Total)
}
