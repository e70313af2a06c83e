package healthcheck

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/types"
)

// Skipped is a working record without a try-it
type Skipped struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Report is the outcome of one health-check run
type Report struct {
	RunID      uuid.UUID `json:"run-id"`
	StartedAt  time.Time `json:"started-at"`
	FinishedAt time.Time `json:"finished-at"`
	Category   string    `json:"category,omitempty"`
	Candidates int       `json:"candidates"`
	Results    []Result  `json:"results"`
	Skipped    []Skipped `json:"skipped"`
}

// Passed returns the checks that succeeded
func (r *Report) Passed() []Result {
	return r.filter(true)
}

// Failed returns the checks that failed
func (r *Report) Failed() []Result {
	return r.filter(false)
}

func (r *Report) filter(passed bool) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Passed == passed {
			out = append(out, res)
		}
	}
	return out
}

// Save writes the report as JSON
func (r *Report) Save(path string) error {
	return catalog.WriteJSON(path, r)
}

// MarkBroken returns a copy of records with every failed check's record set
// to broken: today's check date, a note recording the failure in front of the
// previous notes, and the try-it removed
func MarkBroken(records []types.APIRecord, failed []Result, today string) []types.APIRecord {
	out := types.CloneRecords(records)
	for _, f := range failed {
		if f.Index < 0 || f.Index >= len(out) {
			continue
		}
		rec := &out[f.Index]
		date := today
		rec.Status = types.StatusBroken
		rec.Notes = fmt.Sprintf("Health check failed on %s. Previous: %s", today, rec.Notes)
		rec.DateChecked = &date
		rec.TryIt = nil
	}
	return out
}
