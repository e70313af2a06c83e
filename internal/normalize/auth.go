package normalize

import (
	"strings"

	"github.com/jonathan/api-catalog/internal/types"
)

// authMap maps lowercased source auth values to canonical auth values
var authMap = map[string]types.Auth{
	"":              types.AuthNone,
	"apikey":        types.AuthAPIKey,
	"oauth":         types.AuthOAuth,
	"x-mashape-key": types.AuthMashapeKey,
	"user-agent":    types.AuthUserAgent,
}

// Auth maps a free-text source auth value to a canonical auth value.
// Anything not in the table, including already-canonical spellings such as
// "api-key" or "none", is treated as requiring a key.
func Auth(raw string) types.Auth {
	if auth, ok := authMap[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return auth
	}
	return types.AuthAPIKey
}

// Cors maps a free-text CORS value to yes, no or unknown
func Cors(raw string) types.Cors {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return types.CorsYes
	case "no":
		return types.CorsNo
	default:
		// "unknown", the common "unkown" typo, empty and anything else
		return types.CorsUnknown
	}
}
