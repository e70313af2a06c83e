// Package catalog owns the canonical API store: loading and validating it,
// and saving it back as a whole-file atomic overwrite.
package catalog

import "fmt"

// LoadError represents an error during file I/O, JSON parsing or validation of an input file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents an error while writing the store or a report artifact
type SaveError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("save error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("save error: %s: %s", e.Path, e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
