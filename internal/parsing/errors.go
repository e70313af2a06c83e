package parsing

import "fmt"

// ParseError represents an unreadable markdown source
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// OverwriteError is returned when writing parsed records would replace a
// store that already holds verification results
type OverwriteError struct {
	Path   string
	Tested int
}

func (e *OverwriteError) Error() string {
	return fmt.Sprintf("%s has %d tested APIs; parsing would reset all statuses to pending (use --force to overwrite)", e.Path, e.Tested)
}
