package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/api-catalog/internal/schemas"
	"github.com/jonathan/api-catalog/internal/types"
	schemafiles "github.com/jonathan/api-catalog/schemas"
)

// LoadSource reads a foreign catalog ({"entries": [...]}) and checks that
// every entry carries the full foreign field set
func LoadSource(path string) ([]types.SourceRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	var catalog types.SourceCatalog
	if err := json.Unmarshal(content, &catalog); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := schemas.ValidateEmbedded(schemafiles.SourceCatalog, content); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: fmt.Sprintf("schema validation failed (%d entries)", len(catalog.Entries)),
			Cause:   err,
		}
	}

	return catalog.Entries, nil
}
