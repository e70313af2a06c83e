package merge

import (
	"fmt"
	"strings"

	"github.com/jonathan/api-catalog/internal/normalize"
	"github.com/jonathan/api-catalog/internal/types"
)

// DefaultSourceLabel names the foreign catalog in provenance notes
const DefaultSourceLabel = "public-apis-2"

// Candidate is a source entry in canonical form with its match keys
type Candidate struct {
	Record  types.APIRecord
	NameKey string
	URLKey  string
	Domain  string
}

// NewCandidate normalizes a source entry and computes its match keys.
// An empty or malformed URL simply yields an empty or raw key.
func NewCandidate(src types.SourceRecord) *Candidate {
	rec := normalize.Transform(src)
	return &Candidate{
		Record:  rec,
		NameKey: strings.ToLower(rec.Name),
		URLKey:  normalize.URL(rec.URL),
		Domain:  normalize.MatchDomain(rec.URL),
	}
}

// Tier is one ranked classification rule. Match reports whether the rule
// applies and, if so, the outcome it produces.
type Tier struct {
	Name  string
	Match func(c *Classifier, cand *Candidate) (Outcome, bool)
}

// DefaultTiers returns the classification rules in priority order. The first
// rule that matches decides the outcome, so the order is part of the
// behaviour; the last rule always matches.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "exact-duplicate", Match: matchDuplicate},
		{Name: "renamed", Match: matchRenamed},
		{Name: "url-update", Match: matchURLUpdate},
		{Name: "cross-category", Match: matchCrossCategory},
		{Name: "domain-match", Match: matchDomain},
		{Name: "new", Match: matchNew},
	}
}

// Classifier runs source entries through the tiers against an indexed target.
// The target slice is never modified: auto-updates are kept as patches, and
// later entries see patched records in their patched state.
type Classifier struct {
	target  []types.APIRecord
	index   *Index
	tiers   []Tier
	policy  DomainPolicy
	label   string
	patches []Patch
	patched map[int]int
}

// Option configures a Classifier
type Option func(*Classifier)

// WithDomainPolicy sets the domain-match policy
func WithDomainPolicy(p DomainPolicy) Option {
	return func(c *Classifier) {
		if p != "" {
			c.policy = p
		}
	}
}

// WithSourceLabel sets the catalog name written into provenance notes
func WithSourceLabel(label string) Option {
	return func(c *Classifier) {
		if label != "" {
			c.label = label
		}
	}
}

// WithTiers replaces the rule list
func WithTiers(tiers []Tier) Option {
	return func(c *Classifier) {
		c.tiers = tiers
	}
}

// NewClassifier creates a classifier over target using index, which must
// have been built from the same slice
func NewClassifier(target []types.APIRecord, index *Index, opts ...Option) *Classifier {
	c := &Classifier{
		target:  target,
		index:   index,
		tiers:   DefaultTiers(),
		policy:  DefaultDomainPolicy,
		label:   DefaultSourceLabel,
		patched: make(map[int]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify assigns exactly one outcome to src
func (c *Classifier) Classify(src types.SourceRecord) Outcome {
	return c.ClassifyCandidate(NewCandidate(src))
}

// ClassifyCandidate assigns exactly one outcome to an already normalized entry
func (c *Classifier) ClassifyCandidate(cand *Candidate) Outcome {
	for _, tier := range c.tiers {
		out, ok := tier.Match(c, cand)
		if !ok {
			continue
		}
		out.Tier = tier.Name
		out.Record = cand.Record
		if out.Patch != nil {
			c.patched[out.Patch.Index] = len(c.patches)
			c.patches = append(c.patches, *out.Patch)
		}
		return out
	}
	return Outcome{Kind: OutcomeNew, Tier: "new", Record: cand.Record, Insert: true}
}

// Patches returns the auto-updates recorded so far, in classification order
func (c *Classifier) Patches() []Patch {
	return append([]Patch(nil), c.patches...)
}

// view returns a copy of target record i with any pending patch applied
func (c *Classifier) view(i int) *types.APIRecord {
	rec := c.target[i].Clone()
	if pos, ok := c.patched[i]; ok {
		c.patches[pos].Apply(&rec)
	}
	return &rec
}

// Tier 1: name and normalized URL both already present
func matchDuplicate(c *Classifier, cand *Candidate) (Outcome, bool) {
	_, nameHit := c.index.ByName(cand.NameKey)
	urlIdx, urlHit := c.index.ByURL(cand.URLKey)
	if !nameHit || !urlHit {
		return Outcome{}, false
	}
	return Outcome{Kind: OutcomeDuplicate, Existing: c.view(urlIdx)}, true
}

// Tier 2: URL present under another name
func matchRenamed(c *Classifier, cand *Candidate) (Outcome, bool) {
	idx, ok := c.index.ByURL(cand.URLKey)
	if !ok {
		return Outcome{}, false
	}
	return Outcome{Kind: OutcomeRenamed, Existing: c.view(idx), Flagged: true}, true
}

// Tier 3: same name and category, different URL. Broken records are
// repaired automatically; anything else is only flagged.
func matchURLUpdate(c *Classifier, cand *Candidate) (Outcome, bool) {
	idx, ok := c.index.ByNameCategory(cand.NameKey, cand.Record.Category)
	if !ok {
		return Outcome{}, false
	}

	existing := c.view(idx)
	if existing.Status != types.StatusBroken {
		return Outcome{Kind: OutcomeURLUpdateFlagged, Existing: existing, Flagged: true}, true
	}

	patch := &Patch{
		Index: idx,
		URL:   cand.Record.URL,
		Notes: fmt.Sprintf("URL updated from %s (was broken). Previous: %s", c.label, existing.Notes),
	}
	return Outcome{Kind: OutcomeURLUpdateApplied, Existing: existing, Patch: patch}, true
}

// Tier 4: same name in another category
func matchCrossCategory(c *Classifier, cand *Candidate) (Outcome, bool) {
	idx, ok := c.index.ByName(cand.NameKey)
	if !ok {
		return Outcome{}, false
	}
	return Outcome{Kind: OutcomeCrossCategory, Existing: c.view(idx), Flagged: true}, true
}

// Tier 5: a different API on the same non-generic domain
func matchDomain(c *Classifier, cand *Candidate) (Outcome, bool) {
	if cand.Domain == "" {
		return Outcome{}, false
	}
	idx, ok := c.index.ByDomain(cand.Domain)
	if !ok {
		return Outcome{}, false
	}
	kind, insert, flagged := c.policy.outcome()
	return Outcome{Kind: kind, Existing: c.view(idx), Insert: insert, Flagged: flagged}, true
}

// Tier 6: nothing matched
func matchNew(_ *Classifier, _ *Candidate) (Outcome, bool) {
	return Outcome{Kind: OutcomeNew, Insert: true}, true
}
