// Package normalize converts foreign catalog records into the canonical record
// shape and provides the comparison keys (URL, domain, category slug) used for matching.
package normalize

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a category display name to its kebab-case slug:
// lowercase, '&' removed, every run of other characters collapsed to a
// single hyphen, no leading or trailing hyphens.
func Slugify(text string) string {
	slug := strings.ToLower(text)
	slug = strings.ReplaceAll(slug, "&", "")
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
