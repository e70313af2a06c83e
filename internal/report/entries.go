package report

import (
	"github.com/jonathan/api-catalog/internal/merge"
	"github.com/jonathan/api-catalog/internal/types"
)

// URL update actions
const (
	ActionAutoUpdated = "auto-updated"
	ActionFlagged     = "flagged"
	ActionAddedAsNew  = "added-as-new"
	ActionSuppressed  = "suppressed"
)

// URLUpdate describes a same-name, same-category entry whose URL differs
type URLUpdate struct {
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	CurrentURL    string       `json:"current-url"`
	CurrentStatus types.Status `json:"current-status"`
	SourceURL     string       `json:"source-url"`
	Action        string       `json:"action"`
}

// Renamed describes a source entry whose URL is already in the store under
// another name
type Renamed struct {
	SourceName   string `json:"source-name"`
	ExistingName string `json:"existing-name"`
	URL          string `json:"url"`
	Category     string `json:"category"`
}

// CrossCategory describes a name collision across categories
type CrossCategory struct {
	SourceName       string `json:"source-name"`
	SourceCategory   string `json:"source-category"`
	ExistingName     string `json:"existing-name"`
	ExistingCategory string `json:"existing-category"`
	SourceURL        string `json:"source-url"`
	ExistingURL      string `json:"existing-url"`
}

// DomainMatch describes a source entry sharing a domain with a stored record
type DomainMatch struct {
	SourceName       string `json:"source-name"`
	SourceURL        string `json:"source-url"`
	SourceCategory   string `json:"source-category"`
	ExistingName     string `json:"existing-name"`
	ExistingURL      string `json:"existing-url"`
	ExistingCategory string `json:"existing-category"`
	Action           string `json:"action"`
}

// Anomaly is a source entry with input the classifier could only partly use
type Anomaly struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// CategoryCount is a category with a number of new entries
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

func newURLUpdate(o merge.Outcome) URLUpdate {
	action := ActionFlagged
	if o.Kind == merge.OutcomeURLUpdateApplied {
		action = ActionAutoUpdated
	}
	return URLUpdate{
		Name:          o.Record.Name,
		Category:      o.Record.Category,
		CurrentURL:    o.Existing.URL,
		CurrentStatus: o.Existing.Status,
		SourceURL:     o.Record.URL,
		Action:        action,
	}
}

func newRenamed(o merge.Outcome) Renamed {
	return Renamed{
		SourceName:   o.Record.Name,
		ExistingName: o.Existing.Name,
		URL:          o.Record.URL,
		Category:     o.Record.Category,
	}
}

func newCrossCategory(o merge.Outcome) CrossCategory {
	return CrossCategory{
		SourceName:       o.Record.Name,
		SourceCategory:   o.Record.Category,
		ExistingName:     o.Existing.Name,
		ExistingCategory: o.Existing.Category,
		SourceURL:        o.Record.URL,
		ExistingURL:      o.Existing.URL,
	}
}

func newDomainMatch(o merge.Outcome) DomainMatch {
	action := ActionAddedAsNew
	if !o.Insert {
		action = ActionSuppressed
	}
	return DomainMatch{
		SourceName:       o.Record.Name,
		SourceURL:        o.Record.URL,
		SourceCategory:   o.Record.Category,
		ExistingName:     o.Existing.Name,
		ExistingURL:      o.Existing.URL,
		ExistingCategory: o.Existing.Category,
		Action:           action,
	}
}
