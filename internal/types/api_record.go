// Package types provides type definitions for the records, directives and catalogs used throughout the api-catalog tooling.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Status is the verification lifecycle state of an API record
type Status string

// Verification statuses
const (
	StatusPending  Status = "pending"
	StatusWorking  Status = "working"
	StatusBroken   Status = "broken"
	StatusPaidOnly Status = "paid-only"
	StatusNeedsKey Status = "needs-key"
	StatusSkipped  Status = "skipped"
)

// Statuses lists every valid status in display order
var Statuses = []Status{StatusWorking, StatusBroken, StatusNeedsKey, StatusPaidOnly, StatusSkipped, StatusPending}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Auth is the authentication requirement of an API
type Auth string

// Authentication requirements
const (
	AuthNone       Auth = "none"
	AuthAPIKey     Auth = "api-key"
	AuthOAuth      Auth = "oauth"
	AuthMashapeKey Auth = "x-mashape-key"
	AuthUserAgent  Auth = "user-agent"
)

// Auths lists every valid auth value
var Auths = []Auth{AuthNone, AuthAPIKey, AuthOAuth, AuthMashapeKey, AuthUserAgent}

// Valid reports whether a is one of the known auth values
func (a Auth) Valid() bool {
	for _, known := range Auths {
		if a == known {
			return true
		}
	}
	return false
}

// Cors is the CORS support of an API
type Cors string

// CORS support values
const (
	CorsYes     Cors = "yes"
	CorsNo      Cors = "no"
	CorsUnknown Cors = "unknown"
)

// ResponseType is the expected payload kind of a try-it endpoint
type ResponseType string

// Response types
const (
	ResponseJSON  ResponseType = "json"
	ResponseImage ResponseType = "image"
	ResponseText  ResponseType = "text"
)

// Valid reports whether rt is one of the known response types
func (rt ResponseType) Valid() bool {
	return rt == ResponseJSON || rt == ResponseImage || rt == ResponseText
}

// TryIt describes a try-it endpoint for a record. Object params substitute
// into {placeholder} tokens in URL; query-string params are appended.
type TryIt struct {
	URL          string       `json:"url" validate:"required"`
	ResponseType ResponseType `json:"response-type" validate:"required,oneof=json image text"`
	Params       Params       `json:"params,omitempty"`
}

// APIRecord is a canonical catalog entry
type APIRecord struct {
	Name        string  `json:"name" validate:"required"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Auth        Auth    `json:"auth" validate:"oneof=none api-key oauth x-mashape-key user-agent"`
	HTTPS       bool    `json:"https"`
	Cors        Cors    `json:"cors" validate:"oneof=yes no unknown"`
	Category    string  `json:"category" validate:"required"`
	Status      Status  `json:"status" validate:"oneof=pending working broken paid-only needs-key skipped"`
	Notes       string  `json:"notes"`
	DateChecked *string `json:"date-checked" validate:"omitempty,datetime=2006-01-02"`
	TryIt       *TryIt  `json:"try-it"`

	// Extra holds members of the stored object that are not fields above,
	// in document order, so they are written back unchanged.
	Extra []Field `json:"-"`
}

var apiRecordKeys = map[string]struct{}{
	"name": {}, "url": {}, "description": {}, "auth": {}, "https": {}, "cors": {},
	"category": {}, "status": {}, "notes": {}, "date-checked": {}, "try-it": {},
}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra
func (r *APIRecord) UnmarshalJSON(data []byte) error {
	type plain APIRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownFields(data, apiRecordKeys)
	if err != nil {
		return err
	}
	*r = APIRecord(p)
	r.Extra = extra
	return nil
}

// MarshalJSON encodes the known fields followed by Extra
func (r APIRecord) MarshalJSON() ([]byte, error) {
	type plain APIRecord
	data, err := marshalPlain(plain(r))
	if err != nil {
		return nil, err
	}
	return appendFields(data, r.Extra)
}

// IsTested reports whether the record has left the pending state
func (r APIRecord) IsTested() bool {
	return r.Status != StatusPending
}

// Clone returns a deep copy of the record
func (r APIRecord) Clone() APIRecord {
	out := r
	if r.DateChecked != nil {
		d := *r.DateChecked
		out.DateChecked = &d
	}
	if r.TryIt != nil {
		t := *r.TryIt
		t.Params = r.TryIt.Params.Clone()
		out.TryIt = &t
	}
	if r.Extra != nil {
		out.Extra = append([]Field(nil), r.Extra...)
	}
	return out
}

// CloneRecords deep-copies a slice of records
func CloneRecords(records []APIRecord) []APIRecord {
	out := make([]APIRecord, len(records))
	for i := range records {
		out[i] = records[i].Clone()
	}
	return out
}

// Validate validates the record using the validator.
func (r *APIRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
