package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCommand_Preview(t *testing.T) {
	dir := t.TempDir()
	store := writeFixture(t, dir, "apis.json", storeFixture)
	source := writeFixture(t, dir, "resources.json", sourceFixture)
	reportDir := filepath.Join(dir, "report")

	output, err := runCLI(t, dir, "merge", "--data", store, "--source", source, "--report-dir", reportDir)
	require.NoError(t, err, output)

	assert.Contains(t, output, "Genuinely new:")
	assert.Contains(t, output, "Preview only")
	assert.FileExists(t, filepath.Join(reportDir, "new-apis.json"))
	assert.FileExists(t, filepath.Join(reportDir, "merge-report.txt"))
	assert.FileExists(t, filepath.Join(reportDir, "merge-report.json"))

	content, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.Equal(t, storeFixture, string(content), "preview must not touch the store")
}

func TestMergeCommand_Apply(t *testing.T) {
	dir := t.TempDir()
	store := writeFixture(t, dir, "apis.json", storeFixture)
	source := writeFixture(t, dir, "resources.json", sourceFixture)

	output, err := runCLI(t, dir, "merge", "--apply", "--data", store, "--source", source, "--report-dir", filepath.Join(dir, "report"))
	require.NoError(t, err, output)
	assert.Contains(t, output, "Wrote 3 entries")

	content, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"name": "Bar"`)
	assert.Contains(t, string(content), `"category": "science-math"`)
}

func TestMergeCommand_NothingToMerge(t *testing.T) {
	dir := t.TempDir()
	store := writeFixture(t, dir, "apis.json", storeFixture)
	source := writeFixture(t, dir, "resources.json", `{"entries": [
		{"API": "Foo", "Link": "https://foo.com", "Description": "", "Auth": "", "HTTPS": true, "Cors": "yes", "Category": "Development"}
	]}`)

	output, err := runCLI(t, dir, "merge", "--apply", "--data", store, "--source", source, "--report-dir", filepath.Join(dir, "report"))
	require.NoError(t, err, output)
	assert.Contains(t, output, "Nothing to merge")
}

func TestMergeCommand_UnknownPolicy(t *testing.T) {
	dir := t.TempDir()
	store := writeFixture(t, dir, "apis.json", storeFixture)
	source := writeFixture(t, dir, "resources.json", sourceFixture)

	output, err := runCLI(t, dir, "merge", "--data", store, "--source", source, "--domain-policy", "merge-all")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, output, "merge-all")
}

func TestMergeCommand_MissingSource(t *testing.T) {
	dir := t.TempDir()
	store := writeFixture(t, dir, "apis.json", storeFixture)

	output, err := runCLI(t, dir, "merge", "--data", store, "--source", filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, output, "failed to load source")
}

func TestMergeCommand_SourceSameAsData(t *testing.T) {
	dir := t.TempDir()
	store := writeFixture(t, dir, "apis.json", storeFixture)

	output, err := runCLI(t, dir, "merge", "--apply", "--data", store, "--source", store)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, output, "must differ")

	content, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.Equal(t, storeFixture, string(content))
}

func TestMergeCommand_PreviewAndApplyReportsMatch(t *testing.T) {
	dir := t.TempDir()
	source := writeFixture(t, dir, "resources.json", sourceFixture)

	readReport := func(name string, apply bool) (string, string) {
		runDir := filepath.Join(dir, name)
		store := writeFixture(t, runDir, "apis.json", storeFixture)
		reportDir := filepath.Join(runDir, "report")

		args := []string{"merge", "--data", store, "--source", source, "--report-dir", reportDir}
		if apply {
			args = append(args, "--apply")
		}
		output, err := runCLI(t, dir, args...)
		require.NoError(t, err, output)

		jsonReport, err := os.ReadFile(filepath.Join(reportDir, "merge-report.json"))
		require.NoError(t, err)
		textReport, err := os.ReadFile(filepath.Join(reportDir, "merge-report.txt"))
		require.NoError(t, err)
		return string(jsonReport), string(textReport)
	}

	previewJSON, previewText := readReport("preview", false)
	applyJSON, applyText := readReport("apply", true)

	assert.Equal(t, previewJSON, applyJSON)
	assert.Equal(t, previewText, applyText)
}
