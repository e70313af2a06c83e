package update

import (
	"strings"

	"github.com/jonathan/api-catalog/internal/types"
)

// Applied is one directive that found its record
type Applied struct {
	Name      string
	OldStatus types.Status
	NewStatus types.Status
}

// BatchResult summarizes a batch run
type BatchResult struct {
	Applied  []Applied
	NotFound []string
	Total    int
}

// Succeeded returns how many directives found their record
func (r *BatchResult) Succeeded() int {
	return len(r.Applied)
}

// Failed returns how many directives matched nothing
func (r *BatchResult) Failed() int {
	return len(r.NotFound)
}

// ApplyBatch applies directives in order to a copy of records. Each directive
// updates the first record whose name matches case-insensitively; misses are
// counted and do not stop the batch.
func ApplyBatch(records []types.APIRecord, directives []types.UpdateDirective, today string) ([]types.APIRecord, *BatchResult) {
	out := types.CloneRecords(records)
	res := &BatchResult{Total: len(directives)}

	for _, d := range directives {
		idx := indexByName(out, d.Name)
		if idx < 0 {
			res.NotFound = append(res.NotFound, d.Name)
			continue
		}

		rec := &out[idx]
		res.Applied = append(res.Applied, Applied{Name: d.Name, OldStatus: rec.Status, NewStatus: d.Status})
		applyDirective(rec, d, today)
	}

	return out, res
}

func applyDirective(rec *types.APIRecord, d types.UpdateDirective, today string) {
	rec.Status = d.Status
	if d.Notes != nil {
		rec.Notes = *d.Notes
	}
	if d.Status != types.StatusPending {
		date := today
		rec.DateChecked = &date
	}
	if d.TryIt.Set {
		rec.TryIt = nil
		if d.TryIt.Value != nil {
			t := *d.TryIt.Value
			rec.TryIt = &t
		}
	}
}

func indexByName(records []types.APIRecord, name string) int {
	for i := range records {
		if strings.EqualFold(records[i].Name, name) {
			return i
		}
	}
	return -1
}
