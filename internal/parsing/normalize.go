package parsing

import (
	"strings"

	"github.com/jonathan/api-catalog/internal/types"
)

// markdownAuth maps the auth column of the markdown list (with backticks
// removed, lowercased) to canonical auth values
var markdownAuth = map[string]types.Auth{
	"no":            types.AuthNone,
	"apikey":        types.AuthAPIKey,
	"oauth":         types.AuthOAuth,
	"x-mashape-key": types.AuthMashapeKey,
	"user-agent":    types.AuthUserAgent,
}

// NormalizeAuth maps a markdown auth cell to a canonical value. Cells that
// are already canonical pass through; anything else is reported as unknown
// and treated as needing a key.
func NormalizeAuth(raw string) (types.Auth, bool) {
	lower := strings.ToLower(strings.Trim(raw, "` "))
	if auth, ok := markdownAuth[lower]; ok {
		return auth, true
	}
	if auth := types.Auth(lower); auth.Valid() {
		return auth, true
	}
	return types.AuthAPIKey, false
}

// NormalizeCors maps a markdown CORS cell to yes, no or unknown
func NormalizeCors(raw string) types.Cors {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return types.CorsYes
	case "no":
		return types.CorsNo
	default:
		return types.CorsUnknown
	}
}
