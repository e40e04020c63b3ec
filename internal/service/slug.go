package service

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

// Slugify normalizes a title into a lowercase URL-safe slug. Runs of
// non-alphanumeric characters collapse into a single hyphen and leading or
// trailing separators are trimmed.
func Slugify(title string) string {
	normalized := slug.Make(title)
	if normalized == "" {
		// title made of symbols only still needs a usable slug base
		normalized = "entry"
	}
	return normalized
}

// disambiguateSlug appends the millisecond epoch so a colliding base slug
// becomes unique without a retry loop.
func disambiguateSlug(base string) string {
	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli())
}
