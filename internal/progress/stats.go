// Package progress computes verification progress per category.
package progress

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/api-catalog/internal/types"
)

// TotalRow names the aggregate row
const TotalRow = "TOTAL"

// NextLimit is how many categories the closest-to-completion list shows
const NextLimit = 10

// SortMode orders the category table
type SortMode string

// Sort modes
const (
	SortName    SortMode = "name"
	SortTotal   SortMode = "total"
	SortDone    SortMode = "done"
	SortPending SortMode = "pending"
)

// SortModes lists the valid sort modes
var SortModes = []SortMode{SortName, SortTotal, SortDone, SortPending}

// ParseSortMode validates a sort mode name
func ParseSortMode(s string) (SortMode, error) {
	for _, m := range SortModes {
		if SortMode(s) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown sort %q (want name, total, done or pending)", s)
}

// CategoryStats counts the records of one category by status
type CategoryStats struct {
	Name   string
	Total  int
	Counts map[types.Status]int
}

// Count returns the number of records with status s
func (c CategoryStats) Count(s types.Status) int {
	return c.Counts[s]
}

// Pending returns the number of untested records
func (c CategoryStats) Pending() int {
	return c.Counts[types.StatusPending]
}

// Tested returns the number of records no longer pending
func (c CategoryStats) Tested() int {
	return c.Total - c.Pending()
}

// Done returns the tested share as a whole percentage string
func (c CategoryStats) Done() string {
	return Percent(c.Tested(), c.Total)
}

// Percent formats n/total as a rounded percentage; zero totals give "0%"
func Percent(n, total int) string {
	if total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(n)/float64(total)*100)
}

// Compute groups records by category in order of first appearance
func Compute(records []types.APIRecord) []CategoryStats {
	pos := make(map[string]int)
	var stats []CategoryStats
	for i := range records {
		r := &records[i]
		p, ok := pos[r.Category]
		if !ok {
			p = len(stats)
			pos[r.Category] = p
			stats = append(stats, CategoryStats{Name: r.Category, Counts: make(map[types.Status]int)})
		}
		stats[p].Total++
		stats[p].Counts[r.Status]++
	}
	return stats
}

// Totals sums every category into one row
func Totals(stats []CategoryStats) CategoryStats {
	total := CategoryStats{Name: TotalRow, Counts: make(map[types.Status]int)}
	for _, c := range stats {
		total.Total += c.Total
		for s, n := range c.Counts {
			total.Counts[s] += n
		}
	}
	return total
}

// Sort orders stats in place. Name sorts ascending; the other modes sort
// descending and keep first-appearance order among equal values.
func Sort(stats []CategoryStats, mode SortMode) {
	switch mode {
	case SortTotal:
		sort.SliceStable(stats, func(i, j int) bool { return stats[i].Total > stats[j].Total })
	case SortDone:
		sort.SliceStable(stats, func(i, j int) bool { return stats[i].Tested() > stats[j].Tested() })
	case SortPending:
		sort.SliceStable(stats, func(i, j int) bool { return stats[i].Pending() > stats[j].Pending() })
	default:
		sort.SliceStable(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	}
}

// FilterAuth keeps records with the given auth value
func FilterAuth(records []types.APIRecord, auth string) []types.APIRecord {
	var out []types.APIRecord
	for i := range records {
		if string(records[i].Auth) == auth {
			out = append(out, records[i])
		}
	}
	return out
}

// Next returns up to limit categories that still have pending records,
// fewest pending first
func Next(records []types.APIRecord, limit int) []CategoryStats {
	var candidates []CategoryStats
	for _, c := range Compute(records) {
		if c.Pending() > 0 {
			candidates = append(candidates, c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Pending() < candidates[j].Pending()
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// PendingIn returns the pending records of a category sorted by name
func PendingIn(records []types.APIRecord, category string) []types.APIRecord {
	var out []types.APIRecord
	for i := range records {
		if records[i].Category == category && records[i].Status == types.StatusPending {
			out = append(out, records[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Detail returns a category's records ordered by status (tested kinds
// first, pending last) and then by name
func Detail(records []types.APIRecord, category string) []types.APIRecord {
	rank := make(map[types.Status]int, len(types.Statuses))
	for i, s := range types.Statuses {
		rank[s] = i
	}

	var out []types.APIRecord
	for i := range records {
		if records[i].Category == category {
			out = append(out, records[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank[out[i].Status], rank[out[j].Status]
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
