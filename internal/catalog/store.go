package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/api-catalog/internal/schemas"
	"github.com/jonathan/api-catalog/internal/types"
	schemafiles "github.com/jonathan/api-catalog/schemas"
)

// Store is the canonical catalog file held fully in memory. One process at a
// time: it is read whole, changed, then written back whole with Save.
type Store struct {
	Path    string
	Records []types.APIRecord
}

// Load reads the store at path and validates it against the store schema and
// the record struct rules. Any failure is returned before the caller can
// change anything.
func Load(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	records, err := Decode(content)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "invalid store",
			Cause:   err,
		}
	}

	return &Store{Path: path, Records: records}, nil
}

// Decode parses and validates a store document
func Decode(content []byte) ([]types.APIRecord, error) {
	var records []types.APIRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if err := schemas.ValidateEmbedded(schemafiles.APIs, content); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	validate := validator.New()
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, records[i].Name, err)
		}
	}

	if records == nil {
		records = []types.APIRecord{}
	}
	return records, nil
}

// Save overwrites the store file with the current records
func (s *Store) Save() error {
	return WriteJSON(s.Path, s.Records)
}

// TestedCount returns the number of records that are no longer pending
func TestedCount(records []types.APIRecord) int {
	count := 0
	for i := range records {
		if records[i].IsTested() {
			count++
		}
	}
	return count
}

// Categories returns the sorted set of categories present in records
func Categories(records []types.APIRecord) []string {
	seen := make(map[string]struct{})
	for i := range records {
		seen[records[i].Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// HasTested reports whether the file at path exists and holds tested records.
// A missing file is not an error.
func HasTested(path string) (int, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var records []struct {
		Status types.Status `json:"status"`
	}
	if err := json.Unmarshal(content, &records); err != nil {
		return 0, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}

	tested := 0
	for _, r := range records {
		if r.Status != "" && r.Status != types.StatusPending {
			tested++
		}
	}
	return tested, nil
}
