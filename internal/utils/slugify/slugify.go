package slugify

import (
	"regexp"
	"strings"
)

var (
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
	multiHyphen = regexp.MustCompile(`-+`)
)

// Slugify converts a free-form phrase into a lowercase, hyphen-separated
// tag token safe for use in tag collections and URLs.
func Slugify(phrase string) string {
	slug := strings.ToLower(strings.TrimSpace(phrase))
	slug = nonAlnum.ReplaceAllString(slug, "-")
	slug = multiHyphen.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
