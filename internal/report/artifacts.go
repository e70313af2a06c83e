package report

import (
	"path/filepath"

	"github.com/jonathan/api-catalog/internal/catalog"
)

// Artifact file names
const (
	NewAPIsFile       = "new-apis.json"
	URLUpdatesFile    = "url-updates.json"
	FlaggedReviewFile = "flagged-review.json"
	TextReportFile    = "merge-report.txt"
	JSONReportFile    = "merge-report.json"
)

// WriteArtifacts writes the report files into dir and returns their paths in
// write order. The new-record list and both summaries are always written;
// the URL-update and review lists only when they have entries.
func WriteArtifacts(r *Report, dir string) ([]string, error) {
	var written []string

	write := func(name string, v interface{}) error {
		path := filepath.Join(dir, name)
		if err := catalog.WriteJSON(path, v); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	if err := write(NewAPIsFile, r.NewRecords); err != nil {
		return written, err
	}

	if len(r.URLUpdates) > 0 {
		if err := write(URLUpdatesFile, r.URLUpdates); err != nil {
			return written, err
		}
	}

	if flagged := r.FlaggedForReview(); len(flagged) > 0 {
		if err := write(FlaggedReviewFile, flagged); err != nil {
			return written, err
		}
	}

	textPath := filepath.Join(dir, TextReportFile)
	if err := catalog.WriteFile(textPath, []byte(r.Text())); err != nil {
		return written, err
	}
	written = append(written, textPath)

	if err := write(JSONReportFile, r); err != nil {
		return written, err
	}
	return written, nil
}
