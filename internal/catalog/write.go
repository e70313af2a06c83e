package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// Encode renders v the way every catalog artifact is stored: 2-space
// indentation, non-ASCII and HTML characters unescaped, trailing newline.
func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes v and atomically replaces the file at path with it. The
// data goes to a temporary file in the same directory which is then renamed
// over the target, so readers never observe a partial file.
func WriteJSON(path string, v interface{}) error {
	data, err := Encode(v)
	if err != nil {
		return &SaveError{Path: path, Message: "failed to marshal JSON", Cause: err}
	}
	return WriteFile(path, data)
}

// WriteFile atomically replaces the file at path with data
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &SaveError{Path: path, Message: "failed to create output directory", Cause: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &SaveError{Path: path, Message: "failed to create temporary file", Cause: err}
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return &SaveError{Path: path, Message: "failed to write temporary file", Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return &SaveError{Path: path, Message: "failed to sync temporary file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &SaveError{Path: path, Message: "failed to close temporary file", Cause: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		cleanup()
		return &SaveError{Path: path, Message: "failed to set file mode", Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return &SaveError{Path: path, Message: "failed to replace file", Cause: err}
	}
	return nil
}
