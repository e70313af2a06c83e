package normalize

import (
	"net/url"
	"strings"
)

// GenericDomains are shared hosting and documentation platforms. Too many
// unrelated APIs live under them for a domain match to mean anything.
var GenericDomains = map[string]struct{}{
	"github.com":                {},
	"github.io":                 {},
	"gitlab.com":                {},
	"bitbucket.org":             {},
	"herokuapp.com":             {},
	"netlify.app":               {},
	"vercel.app":                {},
	"render.com":                {},
	"replit.com":                {},
	"glitch.me":                 {},
	"firebase.google.com":       {},
	"documenter.getpostman.com": {},
	"rapidapi.com":              {},
	"readme.io":                 {},
	"swagger.io":                {},
	"postman.com":               {},
	"apiary.io":                 {},
}

// IsGenericDomain reports whether domain is on the generic hosting denylist
func IsGenericDomain(domain string) bool {
	_, ok := GenericDomains[domain]
	return ok
}

// URL returns the comparison key for a URL: lowercased host without a
// leading "www." followed by the path without trailing slashes. Scheme,
// query and fragment are ignored so http/https and query variants of the
// same endpoint compare equal. The key is never stored.
//
// A URL that cannot be parsed yields its trimmed, lowercased text so it can
// still take part in matching.
func URL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(trimmed)
	if err != nil {
		return strings.ToLower(trimmed)
	}
	return stripWWW(strings.ToLower(u.Host)) + strings.TrimRight(u.EscapedPath(), "/")
}

// Domain returns the lowercased host of a URL without a leading "www.".
// Scheme-less or unparseable URLs have no domain.
func Domain(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return stripWWW(strings.ToLower(u.Host))
}

// MatchDomain returns the domain of a URL when it is usable for
// same-domain matching, or "" when it is empty or generic.
func MatchDomain(raw string) string {
	domain := Domain(raw)
	if domain == "" || IsGenericDomain(domain) {
		return ""
	}
	return domain
}

func stripWWW(host string) string {
	return strings.TrimPrefix(host, "www.")
}
