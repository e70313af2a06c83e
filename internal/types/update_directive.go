//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// UpdateDirective is one entry of a batch session file
type UpdateDirective struct {
	Name   string        `json:"name" validate:"required"`
	Status Status        `json:"status" validate:"required,oneof=pending working broken paid-only needs-key skipped"`
	Notes  *string       `json:"notes" validate:"required"`
	TryIt  OptionalTryIt `json:"try-it"`
}

// Validate validates the directive using the validator.
func (d *UpdateDirective) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// OptionalTryIt distinguishes an absent "try-it" key from an explicit null.
// Set is true whenever the key was present in the input.
type OptionalTryIt struct {
	Set   bool
	Value *TryIt
}

// UnmarshalJSON records presence and decodes the try-it, accepting null
func (o *OptionalTryIt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var t TryIt
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	o.Value = &t
	return nil
}

// MarshalJSON encodes the try-it or null
func (o OptionalTryIt) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
