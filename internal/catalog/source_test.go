package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSource_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.json")
	content := `{
		"count": 2,
		"entries": [
			{"API": "Foo", "Link": "https://foo.com/v2", "Description": "Foo", "Auth": "", "HTTPS": true, "Cors": "yes", "Category": "Development"},
			{"API": "Bar", "Link": "", "Description": "Bar", "Auth": "apiKey", "HTTPS": false, "Cors": "Unknown", "Category": "Science & Math"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := LoadSource(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Foo", entries[0].API)
	assert.True(t, entries[0].HTTPS)
	assert.Equal(t, "", entries[1].Link)
	assert.Equal(t, "Science & Math", entries[1].Category)
}

func TestLoadSource_MissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.json")
	content := `{"entries": [{"API": "Foo", "Link": "https://foo.com"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadSource(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoadSource_NotFound(t *testing.T) {
	_, err := LoadSource(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
