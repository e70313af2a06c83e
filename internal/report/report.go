// Package report aggregates merge outcomes into the text summary and the
// JSON artifacts written next to the store.
package report

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/jonathan/api-catalog/internal/merge"
	"github.com/jonathan/api-catalog/internal/types"
)

// TopCategoryLimit is how many categories the new-entry breakdown lists
const TopCategoryLimit = 15

// Report is the aggregated view of one merge run. Building it never touches
// the store, so a preview and a real run produce the same report.
type Report struct {
	Date         string `json:"date"`
	SourceLabel  string `json:"source"`
	SourceCount  int    `json:"source-count"`
	TargetCount  int    `json:"target-count"`
	MergedCount  int    `json:"merged-count"`
	TestedBefore int    `json:"tested-before"`
	TestedAfter  int    `json:"tested-after"`
	Changed      bool   `json:"changed"`

	Counts map[merge.OutcomeKind]int `json:"counts"`

	TopCategories  []CategoryCount `json:"top-categories"`
	MoreCategories int             `json:"more-categories"`
	MoreEntries    int             `json:"more-entries"`
	NewCategories  []CategoryCount `json:"new-categories"`

	URLUpdates    []URLUpdate     `json:"url-updates"`
	Renamed       []Renamed       `json:"renamed"`
	CrossCategory []CrossCategory `json:"cross-category"`
	DomainMatches []DomainMatch   `json:"domain-matches"`
	Anomalies     []Anomaly       `json:"anomalies"`

	NewRecords []types.APIRecord `json:"-"`
}

// Input is everything Build needs from a merge run
type Input struct {
	Result      *merge.Result
	Target      []types.APIRecord
	SourceCount int
	SourceLabel string
	Date        string
}

// Build aggregates a merge result
func Build(in Input) *Report {
	res := in.Result
	r := &Report{
		Date:          in.Date,
		SourceLabel:   in.SourceLabel,
		SourceCount:   in.SourceCount,
		TargetCount:   len(in.Target),
		MergedCount:   len(res.Merged),
		TestedBefore:  res.TestedBefore,
		TestedAfter:   res.TestedAfter,
		Changed:       res.HasChanges(),
		Counts:        make(map[merge.OutcomeKind]int, len(merge.OutcomeKinds)),
		TopCategories: []CategoryCount{},
		NewCategories: []CategoryCount{},
		URLUpdates:    []URLUpdate{},
		Renamed:       []Renamed{},
		CrossCategory: []CrossCategory{},
		DomainMatches: []DomainMatch{},
		Anomalies:     []Anomaly{},
		NewRecords:    res.NewRecords,
	}
	if r.NewRecords == nil {
		r.NewRecords = []types.APIRecord{}
	}
	if r.SourceLabel == "" {
		r.SourceLabel = merge.DefaultSourceLabel
	}
	for _, k := range merge.OutcomeKinds {
		r.Counts[k] = 0
	}

	var applied []URLUpdate
	for _, o := range res.Outcomes {
		r.Counts[o.Kind]++

		switch o.Kind {
		case merge.OutcomeRenamed:
			r.Renamed = append(r.Renamed, newRenamed(o))
		case merge.OutcomeURLUpdateFlagged:
			r.URLUpdates = append(r.URLUpdates, newURLUpdate(o))
		case merge.OutcomeURLUpdateApplied:
			applied = append(applied, newURLUpdate(o))
		case merge.OutcomeCrossCategory:
			r.CrossCategory = append(r.CrossCategory, newCrossCategory(o))
		case merge.OutcomeDomainMatchAdded, merge.OutcomeDomainMatchSuppressed:
			if o.Flagged {
				r.DomainMatches = append(r.DomainMatches, newDomainMatch(o))
			}
		}

		if reason := anomaly(o.Record.URL); reason != "" {
			r.Anomalies = append(r.Anomalies, Anomaly{Name: o.Record.Name, URL: o.Record.URL, Reason: reason})
		}
	}
	r.URLUpdates = append(r.URLUpdates, applied...)

	r.TopCategories, r.MoreCategories, r.MoreEntries = topCategories(res.NewRecords, TopCategoryLimit)
	r.NewCategories = newCategories(in.Target, res.NewRecords)
	return r
}

// Applied returns the URL updates that were applied automatically
func (r *Report) Applied() []URLUpdate {
	return r.urlUpdates(ActionAutoUpdated)
}

// Flagged returns the URL updates left for review
func (r *Report) Flagged() []URLUpdate {
	return r.urlUpdates(ActionFlagged)
}

func (r *Report) urlUpdates(action string) []URLUpdate {
	var out []URLUpdate
	for _, u := range r.URLUpdates {
		if u.Action == action {
			out = append(out, u)
		}
	}
	return out
}

// FlaggedForReview returns the cross-category then domain-match entries
func (r *Report) FlaggedForReview() []interface{} {
	out := make([]interface{}, 0, len(r.CrossCategory)+len(r.DomainMatches))
	for _, c := range r.CrossCategory {
		out = append(out, c)
	}
	for _, d := range r.DomainMatches {
		out = append(out, d)
	}
	return out
}

// NothingToMerge reports whether the run neither adds nor repairs anything
func (r *Report) NothingToMerge() bool {
	return !r.Changed
}

// Text renders the plain-text summary written to merge-report.txt
func (r *Report) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Merge Report - %s\n", r.Date)
	fmt.Fprintf(&sb, "Source: %s (%d entries)\n", r.SourceLabel, r.SourceCount)
	fmt.Fprintf(&sb, "Target: %d entries (%d tested)\n", r.TargetCount, r.TestedBefore)
	fmt.Fprintf(&sb, "New APIs added: %d\n", len(r.NewRecords))
	fmt.Fprintf(&sb, "URL updates applied (broken): %d\n", r.Counts[merge.OutcomeURLUpdateApplied])
	fmt.Fprintf(&sb, "URL diffs flagged: %d\n", r.Counts[merge.OutcomeURLUpdateFlagged])
	fmt.Fprintf(&sb, "Cross-category flags: %d\n", r.Counts[merge.OutcomeCrossCategory])
	fmt.Fprintf(&sb, "Domain match flags: %d\n", len(r.DomainMatches))
	fmt.Fprintf(&sb, "Duplicates skipped: %d\n", r.Counts[merge.OutcomeDuplicate])
	fmt.Fprintf(&sb, "Renamed skipped: %d\n", r.Counts[merge.OutcomeRenamed])

	if len(r.TopCategories) > 0 {
		sb.WriteString("\nNew entries by category:\n")
		for _, c := range r.TopCategories {
			fmt.Fprintf(&sb, "  %-35s %3d\n", c.Category, c.Count)
		}
		if r.MoreCategories > 0 {
			fmt.Fprintf(&sb, "  ... %d more categories (%d entries)\n", r.MoreCategories, r.MoreEntries)
		}
	}

	if len(r.NewCategories) > 0 {
		sb.WriteString("\nNew categories:\n")
		for _, c := range r.NewCategories {
			fmt.Fprintf(&sb, "  %s: %d entries\n", c.Category, c.Count)
		}
	}

	if applied := r.Applied(); len(applied) > 0 {
		sb.WriteString("\nURL updates applied (broken -> pending):\n")
		for _, u := range applied {
			fmt.Fprintf(&sb, "  %s: %s\n    -> %s\n", u.Name, u.CurrentURL, u.SourceURL)
		}
	}

	if len(r.Anomalies) > 0 {
		sb.WriteString("\nSource anomalies:\n")
		for _, a := range r.Anomalies {
			fmt.Fprintf(&sb, "  %s: %s (%q)\n", a.Name, a.Reason, a.URL)
		}
	}
	return sb.String()
}

func anomaly(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "empty url"
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "unparseable url"
	}
	if u.Host == "" {
		return "url has no host"
	}
	return ""
}

// topCategories counts new records per category, most first. Ties keep the
// order in which categories first appear. Beyond limit only totals are kept.
func topCategories(records []types.APIRecord, limit int) (top []CategoryCount, moreCategories, moreEntries int) {
	counts := countByCategory(records)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) <= limit {
		return counts, 0, 0
	}
	for _, c := range counts[limit:] {
		moreEntries += c.Count
	}
	return counts[:limit], len(counts) - limit, moreEntries
}

// newCategories lists categories that only new records use, sorted by name
func newCategories(target, added []types.APIRecord) []CategoryCount {
	existing := make(map[string]struct{}, len(target))
	for i := range target {
		existing[target[i].Category] = struct{}{}
	}

	out := []CategoryCount{}
	for _, c := range countByCategory(added) {
		if _, ok := existing[c.Category]; !ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}

func countByCategory(records []types.APIRecord) []CategoryCount {
	pos := make(map[string]int)
	counts := []CategoryCount{}
	for i := range records {
		c := records[i].Category
		if p, ok := pos[c]; ok {
			counts[p].Count++
			continue
		}
		pos[c] = len(counts)
		counts = append(counts, CategoryCount{Category: c, Count: 1})
	}
	return counts
}
