package merge

import (
	"strings"

	"github.com/jonathan/api-catalog/internal/normalize"
	"github.com/jonathan/api-catalog/internal/types"
)

type nameCategory struct {
	name     string
	category string
}

// Index holds keyed views over the target records. Each key maps to the
// positions of every record sharing it, in target order; lookups only ever
// consult the first.
type Index struct {
	byName         map[string][]int
	byURL          map[string][]int
	byNameCategory map[nameCategory][]int
	byDomain       map[string][]int
}

// BuildIndex indexes records by lowercase name, normalized URL,
// (lowercase name, category) and non-generic domain in a single pass
func BuildIndex(records []types.APIRecord) *Index {
	ix := &Index{
		byName:         make(map[string][]int, len(records)),
		byURL:          make(map[string][]int, len(records)),
		byNameCategory: make(map[nameCategory][]int, len(records)),
		byDomain:       make(map[string][]int),
	}

	for i := range records {
		r := &records[i]
		nameKey := strings.ToLower(r.Name)

		ix.byName[nameKey] = append(ix.byName[nameKey], i)

		urlKey := normalize.URL(r.URL)
		ix.byURL[urlKey] = append(ix.byURL[urlKey], i)

		if domain := normalize.MatchDomain(r.URL); domain != "" {
			ix.byDomain[domain] = append(ix.byDomain[domain], i)
		}

		key := nameCategory{name: nameKey, category: r.Category}
		ix.byNameCategory[key] = append(ix.byNameCategory[key], i)
	}

	return ix
}

func first[K comparable](m map[K][]int, key K) (int, bool) {
	hits := m[key]
	if len(hits) == 0 {
		return -1, false
	}
	return hits[0], true
}

// ByName returns the first record whose lowercase name equals nameKey
func (ix *Index) ByName(nameKey string) (int, bool) {
	return first(ix.byName, nameKey)
}

// ByURL returns the first record whose normalized URL equals urlKey
func (ix *Index) ByURL(urlKey string) (int, bool) {
	return first(ix.byURL, urlKey)
}

// ByNameCategory returns the first record with the given lowercase name in category
func (ix *Index) ByNameCategory(nameKey, category string) (int, bool) {
	return first(ix.byNameCategory, nameCategory{name: nameKey, category: category})
}

// ByDomain returns the first record hosted on domain
func (ix *Index) ByDomain(domain string) (int, bool) {
	return first(ix.byDomain, domain)
}
