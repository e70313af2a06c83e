package update

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/api-catalog/internal/types"
)

// MaxSuggestions caps the "did you mean" list
const MaxSuggestions = 5

// FindMatches returns the positions of records matching query: exact
// case-insensitive name matches if there are any, otherwise substring
// matches. A non-empty category narrows the result.
func FindMatches(records []types.APIRecord, query, category string) []int {
	q := strings.ToLower(query)

	var exact, partial []int
	for i := range records {
		name := strings.ToLower(records[i].Name)
		switch {
		case name == q:
			exact = append(exact, i)
		case strings.Contains(name, q):
			partial = append(partial, i)
		}
	}

	matches := exact
	if len(matches) == 0 {
		matches = partial
	}
	if category == "" {
		return matches
	}

	var filtered []int
	for _, i := range matches {
		if records[i].Category == category {
			filtered = append(filtered, i)
		}
	}
	return filtered
}

// Suggest returns up to limit records whose name contains any word of query
func Suggest(records []types.APIRecord, query string, limit int) []types.APIRecord {
	words := strings.Fields(strings.ToLower(query))
	var out []types.APIRecord
	for i := range records {
		if len(out) >= limit {
			break
		}
		name := strings.ToLower(records[i].Name)
		for _, w := range words {
			if strings.Contains(name, w) {
				out = append(out, records[i])
				break
			}
		}
	}
	return out
}

// Resolve finds the single record a query refers to
func Resolve(records []types.APIRecord, query, category string) (int, error) {
	matches := FindMatches(records, query, category)
	switch len(matches) {
	case 0:
		return -1, &NotFoundError{Query: query, Suggestions: Suggest(records, query, MaxSuggestions)}
	case 1:
		return matches[0], nil
	default:
		found := make([]types.APIRecord, 0, len(matches))
		for _, i := range matches {
			found = append(found, records[i])
		}
		return -1, &AmbiguousError{Query: query, Matches: found}
	}
}

// Changes is a single-record edit. Nil fields are left alone.
type Changes struct {
	Status     *types.Status
	Notes      *string
	TryIt      *types.TryIt
	ClearTryIt bool
}

// Empty reports whether the edit changes nothing
func (c Changes) Empty() bool {
	return c.Status == nil && c.Notes == nil && c.TryIt == nil && !c.ClearTryIt
}

// Validate checks the edit before it is applied
func (c Changes) Validate() error {
	if c.Empty() {
		return &ChangeError{Message: "at least one of --status, --notes, --try-url or --clear-tryit is required"}
	}
	if c.Status != nil && !c.Status.Valid() {
		return &ChangeError{Message: "unknown status " + string(*c.Status)}
	}
	return nil
}

// BuildTryIt assembles a try-it from command-line values. The response type
// is mandatory once a URL is given; params, when present, must be a JSON
// object.
func BuildTryIt(url, responseType, params string) (*types.TryIt, error) {
	if url == "" {
		return nil, nil
	}
	rt := types.ResponseType(responseType)
	if responseType == "" {
		return nil, &ChangeError{Message: "--try-type is required when --try-url is specified"}
	}
	if !rt.Valid() {
		return nil, &ChangeError{Message: "unknown response type " + responseType}
	}

	t := &types.TryIt{URL: url, ResponseType: rt}
	if params != "" {
		var values map[string]json.RawMessage
		if err := json.Unmarshal([]byte(params), &values); err != nil {
			return nil, &ChangeError{Message: "invalid JSON for --try-params", Cause: err}
		}
		if values == nil {
			return nil, &ChangeError{Message: "--try-params must be a JSON object"}
		}
		t.Params = types.Params(params)
	}
	return t, nil
}

// Apply edits rec in place. The check date is set whenever the new status is
// not pending; clearing the try-it wins over setting one.
func Apply(rec *types.APIRecord, c Changes, today string) {
	if c.Status != nil {
		rec.Status = *c.Status
		if *c.Status != types.StatusPending {
			date := today
			rec.DateChecked = &date
		}
	}
	if c.Notes != nil {
		rec.Notes = *c.Notes
	}
	if c.TryIt != nil {
		t := *c.TryIt
		rec.TryIt = &t
	}
	if c.ClearTryIt {
		rec.TryIt = nil
	}
}
