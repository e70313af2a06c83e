// Package healthcheck checks the try-it endpoints of working catalog records
// and marks the ones that stopped answering as broken.
package healthcheck

import (
	"strings"

	"github.com/jonathan/api-catalog/internal/types"
)

// ResolveURL substitutes {placeholder} tokens in url with object params.
// Keys are applied in sorted order; tokens without a param are left as is.
// Query-string params are appended to the URL instead.
func ResolveURL(url string, params types.Params) string {
	if params.IsQuery() {
		query := strings.TrimPrefix(params.Query(), "?")
		if query == "" {
			return url
		}
		if strings.Contains(url, "?") {
			return url + "&" + query
		}
		return url + "?" + query
	}

	values := params.Values()
	for _, k := range params.Keys() {
		url = strings.ReplaceAll(url, "{"+k+"}", values[k])
	}
	return url
}
