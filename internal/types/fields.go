//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a JSON member a record carries beyond its known fields
type Field struct {
	Key   string
	Value json.RawMessage
}

// marshalPlain encodes v without HTML escaping and without the trailing
// newline the encoder adds
func marshalPlain(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// unknownFields returns the members of the object in data whose keys are
// not in known, in document order
func unknownFields(data []byte, known map[string]struct{}) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var extra []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if _, ok := known[key]; ok {
			continue
		}
		extra = append(extra, Field{Key: key, Value: value})
	}
	return extra, nil
}

// appendFields adds extra members to the encoded object obj
func appendFields(obj []byte, extra []Field) ([]byte, error) {
	if len(extra) == 0 {
		return obj, nil
	}
	end := bytes.LastIndexByte(obj, '}')
	if end < 0 {
		return nil, fmt.Errorf("expected encoded object")
	}

	out := append([]byte(nil), obj[:end]...)
	empty := bytes.Equal(bytes.TrimSpace(out), []byte("{"))
	for _, f := range extra {
		key, err := marshalPlain(f.Key)
		if err != nil {
			return nil, err
		}
		if !empty {
			out = append(out, ',')
		}
		empty = false
		out = append(out, key...)
		out = append(out, ':')
		out = append(out, f.Value...)
	}
	return append(out, '}'), nil
}
