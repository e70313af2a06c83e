//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDirective_TryItPresence(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSet   bool
		wantValue bool
	}{
		{
			name:      "absent",
			input:     `{"name": "Dogs", "status": "working", "notes": "ok"}`,
			wantSet:   false,
			wantValue: false,
		},
		{
			name:      "explicit null",
			input:     `{"name": "Dogs", "status": "broken", "notes": "dead", "try-it": null}`,
			wantSet:   true,
			wantValue: false,
		},
		{
			name:      "object",
			input:     `{"name": "Dogs", "status": "working", "notes": "ok", "try-it": {"url": "https://dog.ceo/api", "response-type": "json"}}`,
			wantSet:   true,
			wantValue: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d UpdateDirective
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.wantSet, d.TryIt.Set)
			assert.Equal(t, tt.wantValue, d.TryIt.Value != nil)
		})
	}
}

func TestUpdateDirective_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid",
			input:   `{"name": "Dogs", "status": "working", "notes": ""}`,
			wantErr: false,
		},
		{
			name:    "missing notes",
			input:   `{"name": "Dogs", "status": "working"}`,
			wantErr: true,
			errMsg:  "Notes",
		},
		{
			name:    "invalid status",
			input:   `{"name": "Dogs", "status": "alive", "notes": "x"}`,
			wantErr: true,
			errMsg:  "Status",
		},
		{
			name:    "try-it missing url",
			input:   `{"name": "Dogs", "status": "working", "notes": "x", "try-it": {"response-type": "json"}}`,
			wantErr: true,
			errMsg:  "URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d UpdateDirective
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			err := d.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
