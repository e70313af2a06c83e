package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/api-catalog/internal/merge"
	"github.com/jonathan/api-catalog/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func stored(name, url, category string, status types.Status) types.APIRecord {
	r := types.APIRecord{
		Name: name, URL: url, Auth: types.AuthNone, HTTPS: true,
		Cors: types.CorsYes, Category: category, Status: status,
	}
	if status != types.StatusPending {
		r.DateChecked = strPtr("2026-02-08")
	}
	return r
}

func src(name, link, category string) types.SourceRecord {
	return types.SourceRecord{API: name, Link: link, HTTPS: true, Cors: "yes", Category: category}
}

func buildFixture(t *testing.T) (*Report, *merge.Result) {
	t.Helper()
	target := []types.APIRecord{
		stored("Dogs", "https://dog.ceo/dog-api", "animals", types.StatusWorking),
		stored("Cats", "https://cats.example.com/v1", "animals", types.StatusWorking),
		stored("Foo", "https://foo.com/v1", "tools", types.StatusBroken),
		stored("Weather", "https://weather.example.org", "weather", types.StatusWorking),
		stored("Maps", "https://maps.example.net/v2", "geocoding", types.StatusWorking),
	}
	source := []types.SourceRecord{
		src("Dogs", "https://dog.ceo/dog-api/", "Animals"),
		src("Dog CEO", "https://dog.ceo/dog-api", "Animals"),
		src("Foo", "https://foo.com/v2", "Tools"),
		src("Cats", "https://cats.example.com/v2", "Animals"),
		src("Weather", "https://weather2.example.org", "Science"),
		src("Tiles", "https://maps.example.net/tiles", "Geocoding"),
		src("Bar", "https://bar.io", "Tools"),
		src("Quasar", "", "Space"),
	}

	res, err := merge.Run(target, source, merge.RunOptions{})
	require.NoError(t, err)

	return Build(Input{
		Result:      res,
		Target:      target,
		SourceCount: len(source),
		Date:        "2026-10-19",
	}), res
}

func TestBuild_Counts(t *testing.T) {
	r, _ := buildFixture(t)

	assert.Equal(t, 1, r.Counts[merge.OutcomeDuplicate])
	assert.Equal(t, 1, r.Counts[merge.OutcomeRenamed])
	assert.Equal(t, 1, r.Counts[merge.OutcomeURLUpdateApplied])
	assert.Equal(t, 1, r.Counts[merge.OutcomeURLUpdateFlagged])
	assert.Equal(t, 1, r.Counts[merge.OutcomeCrossCategory])
	assert.Equal(t, 1, r.Counts[merge.OutcomeDomainMatchAdded])
	assert.Equal(t, 2, r.Counts[merge.OutcomeNew])
	assert.Equal(t, 0, r.Counts[merge.OutcomeDomainMatchSuppressed])

	assert.Equal(t, merge.DefaultSourceLabel, r.SourceLabel)
	assert.Equal(t, 5, r.TargetCount)
	assert.Equal(t, 8, r.MergedCount)
	assert.Equal(t, 5, r.TestedBefore)
	assert.Equal(t, 4, r.TestedAfter)
	assert.False(t, r.NothingToMerge())
}

func TestBuild_URLUpdatesFlaggedFirst(t *testing.T) {
	r, _ := buildFixture(t)

	require.Len(t, r.URLUpdates, 2)
	assert.Equal(t, URLUpdate{
		Name: "Cats", Category: "animals",
		CurrentURL: "https://cats.example.com/v1", CurrentStatus: types.StatusWorking,
		SourceURL: "https://cats.example.com/v2", Action: ActionFlagged,
	}, r.URLUpdates[0])
	assert.Equal(t, URLUpdate{
		Name: "Foo", Category: "tools",
		CurrentURL: "https://foo.com/v1", CurrentStatus: types.StatusBroken,
		SourceURL: "https://foo.com/v2", Action: ActionAutoUpdated,
	}, r.URLUpdates[1])
	assert.Len(t, r.Applied(), 1)
	assert.Len(t, r.Flagged(), 1)
}

func TestBuild_FlaggedForReviewOrder(t *testing.T) {
	r, _ := buildFixture(t)

	flagged := r.FlaggedForReview()
	require.Len(t, flagged, 2)
	cross, ok := flagged[0].(CrossCategory)
	require.True(t, ok)
	assert.Equal(t, "science", cross.SourceCategory)
	assert.Equal(t, "weather", cross.ExistingCategory)

	domain, ok := flagged[1].(DomainMatch)
	require.True(t, ok)
	assert.Equal(t, "Maps", domain.ExistingName)
	assert.Equal(t, ActionAddedAsNew, domain.Action)
}

func TestBuild_NewCategoriesAndAnomalies(t *testing.T) {
	r, _ := buildFixture(t)

	assert.Equal(t, []CategoryCount{{Category: "space", Count: 1}}, r.NewCategories)
	require.Len(t, r.Anomalies, 1)
	assert.Equal(t, "Quasar", r.Anomalies[0].Name)
	assert.Equal(t, "empty url", r.Anomalies[0].Reason)
}

func TestTopCategories_StableAndTruncated(t *testing.T) {
	var records []types.APIRecord
	for i := 0; i < 17; i++ {
		records = append(records, stored(fmt.Sprintf("api-%d", i), "", fmt.Sprintf("cat-%02d", i), types.StatusPending))
	}
	records = append(records, stored("extra", "", "cat-05", types.StatusPending))

	top, moreCats, moreEntries := topCategories(records, TopCategoryLimit)
	require.Len(t, top, TopCategoryLimit)
	assert.Equal(t, CategoryCount{Category: "cat-05", Count: 2}, top[0])
	assert.Equal(t, "cat-00", top[1].Category)
	assert.Equal(t, "cat-01", top[2].Category)
	assert.Equal(t, 2, moreCats)
	assert.Equal(t, 2, moreEntries)
}

func TestNothingToMerge(t *testing.T) {
	target := []types.APIRecord{stored("Dogs", "https://dog.ceo", "animals", types.StatusWorking)}
	res, err := merge.Run(target, []types.SourceRecord{src("Dogs", "https://dog.ceo", "Animals")}, merge.RunOptions{})
	require.NoError(t, err)

	r := Build(Input{Result: res, Target: target, SourceCount: 1, Date: "2026-10-19"})
	assert.True(t, r.NothingToMerge())
	assert.Empty(t, r.URLUpdates)
	assert.NotNil(t, r.NewRecords)
}

func TestText(t *testing.T) {
	r, _ := buildFixture(t)
	text := r.Text()

	assert.Contains(t, text, "Merge Report - 2026-10-19")
	assert.Contains(t, text, "New APIs added: 3")
	assert.Contains(t, text, "URL updates applied (broken): 1")
	assert.Contains(t, text, "URL diffs flagged: 1")
	assert.Contains(t, text, "Duplicates skipped: 1")
	assert.Contains(t, text, "Foo: https://foo.com/v1\n    -> https://foo.com/v2")
	assert.Contains(t, text, "space: 1 entries")
}

func TestWriteArtifacts(t *testing.T) {
	r, _ := buildFixture(t)
	dir := filepath.Join(t.TempDir(), "merge-report")

	written, err := WriteArtifacts(r, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, NewAPIsFile),
		filepath.Join(dir, URLUpdatesFile),
		filepath.Join(dir, FlaggedReviewFile),
		filepath.Join(dir, TextReportFile),
		filepath.Join(dir, JSONReportFile),
	}, written)

	data, err := os.ReadFile(filepath.Join(dir, URLUpdatesFile))
	require.NoError(t, err)
	var updates []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &updates))
	require.Len(t, updates, 2)
	assert.Equal(t, "flagged", updates[0]["action"])
	assert.Equal(t, "auto-updated", updates[1]["action"])
	assert.Contains(t, updates[0], "current-url")

	data, err = os.ReadFile(filepath.Join(dir, NewAPIsFile))
	require.NoError(t, err)
	var added []types.APIRecord
	require.NoError(t, json.Unmarshal(data, &added))
	require.Len(t, added, 3)
	for _, a := range added {
		assert.Equal(t, types.StatusPending, a.Status)
	}
}

func TestWriteArtifacts_SkipsEmptyLists(t *testing.T) {
	target := []types.APIRecord{stored("Dogs", "https://dog.ceo", "animals", types.StatusWorking)}
	res, err := merge.Run(target, []types.SourceRecord{src("Bar", "https://bar.io", "Tools")}, merge.RunOptions{})
	require.NoError(t, err)

	dir := t.TempDir()
	written, err := WriteArtifacts(Build(Input{Result: res, Target: target, Date: "2026-10-19"}), dir)
	require.NoError(t, err)
	assert.Len(t, written, 3)

	_, err = os.Stat(filepath.Join(dir, URLUpdatesFile))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, FlaggedReviewFile))
	assert.True(t, os.IsNotExist(err))
}
