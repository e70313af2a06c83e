// Package update applies status changes to catalog records, either as a
// validated batch from a session file or one record at a time.
package update

import (
	"fmt"
	"strings"

	"github.com/jonathan/api-catalog/internal/types"
)

// ValidationError represents an invalid session file or directive. A single
// invalid directive rejects the whole batch.
type ValidationError struct {
	Index   int
	Name    string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	where := "session"
	if e.Index >= 0 {
		where = fmt.Sprintf("entry %d", e.Index)
		if e.Name != "" {
			where = fmt.Sprintf("entry %d (%s)", e.Index, e.Name)
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s: %s", where, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NotFoundError is returned when no record matches a single-update query
type NotFoundError struct {
	Query       string
	Suggestions []types.APIRecord
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no API found matching %q", e.Query)
	}
	names := make([]string, 0, len(e.Suggestions))
	for _, s := range e.Suggestions {
		names = append(names, fmt.Sprintf("%s (%s)", s.Name, s.Category))
	}
	return fmt.Sprintf("no API found matching %q; did you mean: %s", e.Query, strings.Join(names, ", "))
}

// AmbiguousError is returned when a single-update query matches more than
// one record
type AmbiguousError struct {
	Query   string
	Matches []types.APIRecord
}

func (e *AmbiguousError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "multiple matches found for %q (be more specific or add --category):", e.Query)
	for i, m := range e.Matches {
		fmt.Fprintf(&sb, "\n  [%d] %s (%s) %s", i+1, m.Name, m.Category, m.Status)
	}
	return sb.String()
}

// ChangeError represents an invalid set of single-update changes
type ChangeError struct {
	Message string
	Cause   error
}

func (e *ChangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid changes: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid changes: %s", e.Message)
}

func (e *ChangeError) Unwrap() error {
	return e.Cause
}
