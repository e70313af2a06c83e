//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Params is the raw JSON of a try-it "params" value. Current records hold an
// object of placeholder values; older sessions wrote a query string. The
// bytes are kept as read so numbers and key order survive a save.
type Params []byte

// MarshalJSON writes the value back as read
func (p Params) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

// UnmarshalJSON accepts an object or a string
func (p *Params) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*p = nil
		return nil
	}
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '"') {
		return fmt.Errorf("params must be an object or a query string, got %s", trimmed)
	}
	*p = append((*p)[:0], trimmed...)
	return nil
}

// IsQuery reports whether the params are a query string
func (p Params) IsQuery() bool {
	trimmed := bytes.TrimSpace(p)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

// Query returns the query string form, or "" for object params
func (p Params) Query() string {
	if !p.IsQuery() {
		return ""
	}
	var q string
	if err := json.Unmarshal(p, &q); err != nil {
		return ""
	}
	return q
}

// Values returns the object form with every value as text: strings
// unquoted, numbers and other literals exactly as written. Query params
// have no values.
func (p Params) Values() map[string]string {
	if len(p) == 0 || p.IsQuery() {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(p, &raw); err != nil {
		return nil
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			values[k] = s
			continue
		}
		values[k] = string(bytes.TrimSpace(v))
	}
	return values
}

// Keys returns the object keys in sorted order
func (p Params) Keys() []string {
	values := p.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the params compactly
func (p Params) String() string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, p); err != nil {
		return string(p)
	}
	return buf.String()
}

// Clone returns an independent copy
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	return append(Params(nil), p...)
}
