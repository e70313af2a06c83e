package merge

import "github.com/jonathan/api-catalog/internal/types"

// OutcomeKind is the classification given to one source entry
type OutcomeKind string

// Classification outcomes
const (
	OutcomeDuplicate             OutcomeKind = "duplicate"
	OutcomeRenamed               OutcomeKind = "renamed"
	OutcomeURLUpdateApplied      OutcomeKind = "url-update-applied"
	OutcomeURLUpdateFlagged      OutcomeKind = "url-update-flagged"
	OutcomeCrossCategory         OutcomeKind = "cross-category-flagged"
	OutcomeDomainMatchAdded      OutcomeKind = "domain-match-added"
	OutcomeDomainMatchSuppressed OutcomeKind = "domain-match-suppressed"
	OutcomeNew                   OutcomeKind = "new"
)

// OutcomeKinds lists every outcome in tier order
var OutcomeKinds = []OutcomeKind{
	OutcomeDuplicate,
	OutcomeRenamed,
	OutcomeURLUpdateFlagged,
	OutcomeURLUpdateApplied,
	OutcomeCrossCategory,
	OutcomeDomainMatchAdded,
	OutcomeDomainMatchSuppressed,
	OutcomeNew,
}

// Outcome is the result of classifying one source entry
type Outcome struct {
	Kind OutcomeKind
	Tier string

	// Record is the source entry in canonical form
	Record types.APIRecord

	// Existing is the matched target record as it looked when this entry was
	// classified (before this outcome's patch). Nil for new entries.
	Existing *types.APIRecord

	// Insert is set when Record is queued for insertion
	Insert bool

	// Flagged is set when the outcome needs human review
	Flagged bool

	// Patch is the auto-update this outcome applies to the target, if any
	Patch *Patch
}

// Patch is an auto-applied URL repair of a broken target record. It is
// recorded during classification and applied to a copy of the target once
// the pass is complete.
type Patch struct {
	Index int
	URL   string
	Notes string
}

// Apply rewrites r: new URL, back to pending with its try-it and check date
// cleared, and the provenance note in front of the previous notes
func (p Patch) Apply(r *types.APIRecord) {
	r.URL = p.URL
	r.Status = types.StatusPending
	r.Notes = p.Notes
	r.DateChecked = nil
	r.TryIt = nil
}

// ApplyPatches returns a deep copy of records with patches applied
func ApplyPatches(records []types.APIRecord, patches []Patch) []types.APIRecord {
	out := types.CloneRecords(records)
	for _, p := range patches {
		p.Apply(&out[p.Index])
	}
	return out
}
