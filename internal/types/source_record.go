//nolint:revive // types is a standard Go package name pattern
package types

// SourceRecord is an entry from a foreign catalog (public-apis-2 layout).
// Values are raw: Auth is free text and Category a display name.
type SourceRecord struct {
	API         string `json:"API"`
	Link        string `json:"Link"`
	Description string `json:"Description"`
	Auth        string `json:"Auth"`
	HTTPS       bool   `json:"HTTPS"`
	Cors        string `json:"Cors"`
	Category    string `json:"Category"`
}

// SourceCatalog is the top-level document of a foreign catalog
type SourceCatalog struct {
	Count   int            `json:"count,omitempty"`
	Entries []SourceRecord `json:"entries"`
}
