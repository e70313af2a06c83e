package update

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "2026-10-19"

func strPtr(s string) *string { return &s }

func statusPtr(s types.Status) *types.Status { return &s }

func fixture() []types.APIRecord {
	return []types.APIRecord{
		{Name: "Dogs", URL: "https://dog.ceo", Category: "animals", Status: types.StatusPending, Auth: types.AuthNone, Cors: types.CorsYes},
		{Name: "Cat Facts", URL: "https://catfact.ninja", Category: "animals", Status: types.StatusWorking, Notes: "ok",
			DateChecked: strPtr("2026-01-01"),
			TryIt:       &types.TryIt{URL: "https://catfact.ninja/fact", ResponseType: types.ResponseJSON}},
		{Name: "Cat Pictures", URL: "https://cataas.com", Category: "animals", Status: types.StatusPending},
		{Name: "Open Library", URL: "https://openlibrary.org", Category: "books", Status: types.StatusPending},
		{Name: "dogs", URL: "https://dogs.example.com", Category: "pets", Status: types.StatusPending},
	}
}

func writeSession(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSession_Valid(t *testing.T) {
	path := writeSession(t, `[
		{"name": "Dogs", "status": "working", "notes": "GET /api/breeds", "try-it": {"url": "https://dog.ceo/api/breeds/list", "response-type": "json"}},
		{"name": "Cat Facts", "status": "broken", "notes": "Returns 404", "try-it": null},
		{"name": "Open Library", "status": "skipped", "notes": ""}
	]`)

	directives, err := LoadSession(path)
	require.NoError(t, err)
	require.Len(t, directives, 3)
	assert.True(t, directives[0].TryIt.Set)
	assert.NotNil(t, directives[0].TryIt.Value)
	assert.True(t, directives[1].TryIt.Set)
	assert.Nil(t, directives[1].TryIt.Value)
	assert.False(t, directives[2].TryIt.Set)
}

func TestLoadSession_QueryStringParams(t *testing.T) {
	path := writeSession(t, `[
		{"name": "Open Library", "status": "working", "notes": "search", "try-it": {"url": "https://openlibrary.org/search.json", "response-type": "json", "params": "q=tolkien&limit=3"}}
	]`)

	directives, err := LoadSession(path)
	require.NoError(t, err)
	require.Len(t, directives, 1)

	updated, res := ApplyBatch(fixture(), directives, today)
	require.Equal(t, 1, res.Succeeded())
	require.NotNil(t, updated[3].TryIt)
	assert.Equal(t, "q=tolkien&limit=3", updated[3].TryIt.Params.Query())
}

func TestLoadSession_RejectsWholeBatch(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "not an array",
			content: `{"name": "Dogs"}`,
			errMsg:  "JSON array",
		},
		{
			name:    "missing status",
			content: `[{"name": "Dogs", "status": "working", "notes": ""}, {"name": "Cats", "notes": "x"}]`,
			errMsg:  "entry 1 (Cats)",
		},
		{
			name:    "invalid status",
			content: `[{"name": "Dogs", "status": "alive", "notes": ""}]`,
			errMsg:  "Status",
		},
		{
			name:    "missing notes",
			content: `[{"name": "Dogs", "status": "working"}]`,
			errMsg:  "Notes",
		},
		{
			name:    "missing name",
			content: `[{"status": "working", "notes": ""}]`,
			errMsg:  "entry 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSession(writeSession(t, tt.content))
			require.Error(t, err)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadSession_NotFound(t *testing.T) {
	_, err := LoadSession(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var loadErr *catalog.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestApplyBatch(t *testing.T) {
	records := fixture()
	directives, err := ParseSession([]byte(`[
		{"name": "dogs", "status": "working", "notes": "GET /api/breeds", "try-it": {"url": "https://dog.ceo/api/breeds/list", "response-type": "json"}},
		{"name": "Cat Facts", "status": "broken", "notes": "Returns 404", "try-it": null},
		{"name": "Open Library", "status": "pending", "notes": "retry later"},
		{"name": "Nope", "status": "working", "notes": ""}
	]`))
	require.NoError(t, err)

	out, res := ApplyBatch(records, directives, today)

	assert.Equal(t, 3, res.Succeeded())
	assert.Equal(t, 1, res.Failed())
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, []string{"Nope"}, res.NotFound)
	assert.Equal(t, Applied{Name: "dogs", OldStatus: types.StatusPending, NewStatus: types.StatusWorking}, res.Applied[0])

	// First case-insensitive match only
	assert.Equal(t, types.StatusWorking, out[0].Status)
	assert.Equal(t, today, *out[0].DateChecked)
	require.NotNil(t, out[0].TryIt)
	assert.Equal(t, "https://dog.ceo/api/breeds/list", out[0].TryIt.URL)
	assert.Equal(t, types.StatusPending, out[4].Status)

	// Explicit null clears the try-it
	assert.Equal(t, types.StatusBroken, out[1].Status)
	assert.Nil(t, out[1].TryIt)
	assert.Equal(t, "Returns 404", out[1].Notes)

	// Pending keeps date-checked untouched
	assert.Equal(t, "retry later", out[3].Notes)
	assert.Nil(t, out[3].DateChecked)

	// Input untouched
	assert.Equal(t, types.StatusPending, records[0].Status)
	assert.NotNil(t, records[1].TryIt)
}

func TestApplyBatch_AbsentTryItKeepsTryIt(t *testing.T) {
	directives, err := ParseSession([]byte(`[{"name": "Cat Facts", "status": "working", "notes": "still fine"}]`))
	require.NoError(t, err)

	out, _ := ApplyBatch(fixture(), directives, today)
	require.NotNil(t, out[1].TryIt)
	assert.Equal(t, "https://catfact.ninja/fact", out[1].TryIt.URL)
}

func TestFindMatches(t *testing.T) {
	records := fixture()

	assert.Equal(t, []int{0, 4}, FindMatches(records, "DOGS", ""))
	assert.Equal(t, []int{4}, FindMatches(records, "dogs", "pets"))
	assert.Equal(t, []int{1, 2}, FindMatches(records, "cat", ""))
	assert.Equal(t, []int{3}, FindMatches(records, "library", ""))
	assert.Empty(t, FindMatches(records, "library", "animals"))
}

func TestResolve(t *testing.T) {
	records := fixture()

	idx, err := Resolve(records, "open library", "")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	_, err = Resolve(records, "cat", "")
	var ambiguous *AmbiguousError
	require.True(t, errors.As(err, &ambiguous))
	assert.Len(t, ambiguous.Matches, 2)
	assert.Contains(t, err.Error(), "[2] Cat Pictures (animals)")

	_, err = Resolve(records, "Cat Videos", "")
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Len(t, notFound.Suggestions, 2)
	assert.Contains(t, err.Error(), "did you mean: Cat Facts (animals), Cat Pictures (animals)")
}

func TestSuggest_Limit(t *testing.T) {
	var records []types.APIRecord
	for _, n := range []string{"a one", "a two", "a three", "a four", "a five", "a six"} {
		records = append(records, types.APIRecord{Name: n})
	}
	assert.Len(t, Suggest(records, "a", MaxSuggestions), MaxSuggestions)
}

func TestBuildTryIt(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		typ     string
		params  string
		wantNil bool
		errMsg  string
	}{
		{name: "no url", wantNil: true},
		{name: "missing type", url: "https://x.io", errMsg: "--try-type is required"},
		{name: "bad type", url: "https://x.io", typ: "xml", errMsg: "unknown response type"},
		{name: "bad params", url: "https://x.io", typ: "json", params: "{", errMsg: "invalid JSON"},
		{name: "array params", url: "https://x.io", typ: "json", params: "[1]", errMsg: "invalid JSON"},
		{name: "null params", url: "https://x.io", typ: "json", params: "null", errMsg: "JSON object"},
		{name: "valid", url: "https://x.io/{code}", typ: "image", params: `{"code": "200"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildTryIt(tt.url, tt.typ, tt.params)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, types.ResponseImage, got.ResponseType)
			assert.Equal(t, "200", got.Params.Values()["code"])
		})
	}
}

func TestChanges_Validate(t *testing.T) {
	assert.Error(t, Changes{}.Validate())
	assert.Error(t, Changes{Status: statusPtr("alive")}.Validate())
	assert.NoError(t, Changes{ClearTryIt: true}.Validate())
	assert.NoError(t, Changes{Notes: strPtr("")}.Validate())
}

func TestApply(t *testing.T) {
	records := fixture()

	Apply(&records[0], Changes{
		Status: statusPtr(types.StatusWorking),
		Notes:  strPtr("GET /api/breeds/image/random"),
		TryIt:  &types.TryIt{URL: "https://dog.ceo/api/breeds/image/random", ResponseType: types.ResponseJSON},
	}, today)
	assert.Equal(t, types.StatusWorking, records[0].Status)
	assert.Equal(t, today, *records[0].DateChecked)
	assert.Equal(t, "GET /api/breeds/image/random", records[0].Notes)
	require.NotNil(t, records[0].TryIt)

	Apply(&records[1], Changes{Notes: strPtr("moved"), ClearTryIt: true}, today)
	assert.Equal(t, types.StatusWorking, records[1].Status)
	assert.Equal(t, "2026-01-01", *records[1].DateChecked)
	assert.Nil(t, records[1].TryIt)

	Apply(&records[2], Changes{Status: statusPtr(types.StatusPending)}, today)
	assert.Nil(t, records[2].DateChecked)
}
