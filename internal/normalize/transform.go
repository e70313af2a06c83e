package normalize

import "github.com/jonathan/api-catalog/internal/types"

// Transform converts a foreign catalog entry into a canonical, untested record
func Transform(src types.SourceRecord) types.APIRecord {
	return types.APIRecord{
		Name:        src.API,
		URL:         src.Link,
		Description: src.Description,
		Auth:        Auth(src.Auth),
		HTTPS:       src.HTTPS,
		Cors:        Cors(src.Cors),
		Category:    Slugify(src.Category),
		Status:      types.StatusPending,
		Notes:       "",
		DateChecked: nil,
		TryIt:       nil,
	}
}
