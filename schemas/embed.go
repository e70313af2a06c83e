// Package schemas embeds the JSON Schemas for the catalog store, batch
// session files and foreign source catalogs.
//
// Usage:
//
//	schemas.FS.ReadFile(schemas.APIs)
package schemas

import "embed"

// Schema file names
const (
	APIs          = "apis.schema.json"
	Session       = "session.schema.json"
	SourceCatalog = "source_catalog.schema.json"
)

//go:embed *.schema.json
var FS embed.FS
