package catalog

import (
	"strconv"
	"strings"
)

// Slugify derives a URL-safe slug from a display title: lower-case, runs of
// non-alphanumeric characters collapse to a single hyphen, leading/trailing
// hyphens are stripped. An empty title falls back to the positional index so
// every product still gets a routable slug.
func Slugify(title string, index int) string {
	if title == "" {
		return strconv.Itoa(index)
	}

	var b strings.Builder
	b.Grow(len(title))
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}
