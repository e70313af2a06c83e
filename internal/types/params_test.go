//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantQuery string
		wantVals  map[string]string
	}{
		{
			name:     "object",
			input:    `{"url": "x", "response-type": "json", "params": {"breed": "hound", "limit": 3}}`,
			wantVals: map[string]string{"breed": "hound", "limit": "3"},
		},
		{
			name:      "query string",
			input:     `{"url": "x", "response-type": "json", "params": "sort=agency_name&order=asc&limit=3"}`,
			wantQuery: "sort=agency_name&order=asc&limit=3",
		},
		{
			name:  "absent",
			input: `{"url": "x", "response-type": "json"}`,
		},
		{
			name:    "array rejected",
			input:   `{"url": "x", "response-type": "json", "params": [1, 2]}`,
			wantErr: true,
		},
		{
			name:    "number rejected",
			input:   `{"url": "x", "response-type": "json", "params": 3}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tryIt TryIt
			err := json.Unmarshal([]byte(tt.input), &tryIt)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "object or a query string")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery != "", tryIt.Params.IsQuery())
			assert.Equal(t, tt.wantQuery, tryIt.Params.Query())
			if tt.wantVals == nil {
				assert.Nil(t, tryIt.Params.Values())
			} else {
				assert.Equal(t, tt.wantVals, tryIt.Params.Values())
			}
		})
	}
}

func TestParams_MarshalKeepsNumbersAndOrder(t *testing.T) {
	input := `{"url":"x","response-type":"json","params":{"z":1.0,"id":12345678901234567890,"a":"b&c"}}`

	var tryIt TryIt
	require.NoError(t, json.Unmarshal([]byte(input), &tryIt))

	out, err := marshalPlain(tryIt)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestParams_Keys(t *testing.T) {
	p := Params(`{"size": 2, "code": "200"}`)
	assert.Equal(t, []string{"code", "size"}, p.Keys())
	assert.Empty(t, Params(`"limit=3"`).Keys())
}

func TestParams_String(t *testing.T) {
	assert.Equal(t, `{"breed":"hound"}`, Params("{\n  \"breed\": \"hound\"\n}").String())
	assert.Equal(t, `"limit=3"`, Params(`"limit=3"`).String())
}

func TestAPIRecord_ExtraFieldsRoundTrip(t *testing.T) {
	input := `{"name":"Dogs","url":"https://dog.ceo","source":"legacy","description":"","auth":"none","https":true,` +
		`"cors":"yes","category":"animals","status":"pending","notes":"","date-checked":null,"try-it":null,"tags":["a","b"]}`

	var r APIRecord
	require.NoError(t, json.Unmarshal([]byte(input), &r))
	require.Len(t, r.Extra, 2)
	assert.Equal(t, "source", r.Extra[0].Key)
	assert.Equal(t, "tags", r.Extra[1].Key)
	assert.NoError(t, r.Validate())

	out, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "legacy", got["source"])
	assert.Equal(t, []interface{}{"a", "b"}, got["tags"])
	assert.Equal(t, "Dogs", got["name"])

	clone := r.Clone()
	clone.Extra[0].Key = "changed"
	assert.Equal(t, "source", r.Extra[0].Key)
}

func TestAPIRecord_NoExtraFields(t *testing.T) {
	r := validRecord()
	out, err := marshalPlain(r)
	require.NoError(t, err)

	var back APIRecord
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Nil(t, back.Extra)
	assert.Equal(t, r.Name, back.Name)
}
