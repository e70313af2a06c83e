package update

import (
	"encoding/json"
	"os"

	"github.com/jonathan/api-catalog/internal/catalog"
	"github.com/jonathan/api-catalog/internal/schemas"
	"github.com/jonathan/api-catalog/internal/types"
	schemafiles "github.com/jonathan/api-catalog/schemas"
)

// LoadSession reads a session file: a JSON array of update directives
func LoadSession(path string) ([]types.UpdateDirective, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &catalog.LoadError{
			Path:    path,
			Message: "failed to read session file",
			Cause:   err,
		}
	}
	return ParseSession(content)
}

// ParseSession decodes and validates every directive. Any invalid directive
// fails the whole session.
func ParseSession(content []byte) ([]types.UpdateDirective, error) {
	if err := schemas.ValidateEmbedded(schemafiles.Session, content); err != nil {
		return nil, &ValidationError{Index: -1, Message: "session must be a JSON array of directives", Cause: err}
	}

	var directives []types.UpdateDirective
	if err := json.Unmarshal(content, &directives); err != nil {
		return nil, &ValidationError{Index: -1, Message: "failed to unmarshal JSON", Cause: err}
	}

	for i := range directives {
		if err := directives[i].Validate(); err != nil {
			return nil, &ValidationError{
				Index:   i,
				Name:    directives[i].Name,
				Message: "invalid directive",
				Cause:   err,
			}
		}
	}

	if directives == nil {
		directives = []types.UpdateDirective{}
	}
	return directives, nil
}
