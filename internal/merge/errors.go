// Package merge classifies foreign catalog entries against the canonical
// store and merges the genuinely new ones into it.
package merge

import "fmt"

// IntegrityError is returned when a merge would lose verification history:
// the tested-record count after merging differs from the count before minus
// the auto-applied URL updates.
type IntegrityError struct {
	TestedBefore int
	TestedAfter  int
	Expected     int
	Applied      int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity error: tested count changed from %d to %d (expected %d after %d URL updates)",
		e.TestedBefore, e.TestedAfter, e.Expected, e.Applied)
}

// PolicyError represents an unknown domain-match policy
type PolicyError struct {
	Value string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("policy error: unknown domain policy %q (want %s, %s or %s)",
		e.Value, PolicyInsertAndFlag, PolicyInsertOnly, PolicySuppress)
}
