package merge

import (
	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/types"
)

// OutcomeCallback is called once per classified source entry, in source order
type OutcomeCallback func(index int, out Outcome)

// RunOptions holds configuration for a merge run
type RunOptions struct {
	DomainPolicy DomainPolicy
	SourceLabel  string
	OnOutcome    OutcomeCallback
}

// Result is everything a merge run produced. Target and source are untouched;
// Merged is a new slice ready to be saved.
type Result struct {
	Outcomes     []Outcome
	Patches      []Patch
	NewRecords   []types.APIRecord
	Merged       []types.APIRecord
	TestedBefore int
	TestedAfter  int
}

// HasChanges reports whether saving Merged would change the store
func (r *Result) HasChanges() bool {
	return len(r.NewRecords) > 0 || len(r.Patches) > 0
}

// Applied returns the outcomes whose URL update was applied automatically
func (r *Result) Applied() []Outcome {
	return r.filter(OutcomeURLUpdateApplied)
}

// Count returns how many outcomes have the given kind
func (r *Result) Count(kind OutcomeKind) int {
	return len(r.filter(kind))
}

func (r *Result) filter(kinds ...OutcomeKind) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		for _, k := range kinds {
			if o.Kind == k {
				out = append(out, o)
				break
			}
		}
	}
	return out
}

// Run classifies every source entry against target, applies the recorded
// URL patches to a copy of target, merges the new records in, and verifies
// that no verification history was lost. On IntegrityError the partial
// Result is still returned so it can be reported.
func Run(target []types.APIRecord, source []types.SourceRecord, opts RunOptions) (*Result, error) {
	classifier := NewClassifier(target, BuildIndex(target),
		WithDomainPolicy(opts.DomainPolicy),
		WithSourceLabel(opts.SourceLabel),
	)

	res := &Result{
		Outcomes:     make([]Outcome, 0, len(source)),
		NewRecords:   []types.APIRecord{},
		TestedBefore: catalog.TestedCount(target),
	}

	for i, src := range source {
		out := classifier.Classify(src)
		res.Outcomes = append(res.Outcomes, out)
		if out.Insert {
			res.NewRecords = append(res.NewRecords, out.Record)
		}
		if opts.OnOutcome != nil {
			opts.OnOutcome(i, out)
		}
	}

	res.Patches = classifier.Patches()
	res.Merged = Merge(ApplyPatches(target, res.Patches), res.NewRecords)
	res.TestedAfter = catalog.TestedCount(res.Merged)

	if err := VerifyIntegrity(res.TestedBefore, res.Merged, len(res.Patches)); err != nil {
		return res, err
	}
	return res, nil
}
