package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify turns free text into a URL-safe identifier: diacritics stripped,
// lowercased, non-alphanumeric runs collapsed to single hyphens. The same
// function is used on the write path and the read path so that a stored
// city like "Den Haag" and a query for "den-haag" line up.
func Slugify(value string) string {
	decomposed := norm.NFKD.String(value)

	var b strings.Builder
	b.Grow(len(decomposed))
	pendingHyphen := false
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining mark from the decomposition
		}
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
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
