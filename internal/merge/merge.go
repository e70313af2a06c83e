package merge

import (
	"sort"
	"strings"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/types"
)

// Merge combines existing and new records into a fresh slice grouped by
// category (lexicographic) and ordered by case-insensitive name within each
// category. Records with equal names keep their relative input order,
// existing before new. Neither input is modified.
func Merge(existing, added []types.APIRecord) []types.APIRecord {
	byCategory := make(map[string][]types.APIRecord)
	for _, r := range existing {
		byCategory[r.Category] = append(byCategory[r.Category], r.Clone())
	}
	for _, r := range added {
		byCategory[r.Category] = append(byCategory[r.Category], r.Clone())
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	merged := make([]types.APIRecord, 0, len(existing)+len(added))
	for _, c := range categories {
		group := byCategory[c]
		sort.SliceStable(group, func(i, j int) bool {
			return strings.ToLower(group[i].Name) < strings.ToLower(group[j].Name)
		})
		merged = append(merged, group...)
	}
	return merged
}

// VerifyIntegrity checks that merging lost no verification history: every
// tested record before the merge is still tested afterwards, except those
// reset to pending by an applied URL update
func VerifyIntegrity(testedBefore int, merged []types.APIRecord, applied int) error {
	testedAfter := catalog.TestedCount(merged)
	expected := testedBefore - applied
	if testedAfter != expected {
		return &IntegrityError{
			TestedBefore: testedBefore,
			TestedAfter:  testedAfter,
			Expected:     expected,
			Applied:      applied,
		}
	}
	return nil
}
