// Package leads builds the classification tag attached to every captured lead.
package leads

import (
	"strings"
	"unicode"
)

// BuildTag joins zip, neighborhood and source into "{zip}-{neighborhood}-{source}".
// Each part is slugified and empty parts are dropped, so the tag stays usable
// as a CRM filter key.
func BuildTag(zip, neighborhood, source string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{zip, neighborhood, source} {
		if s := Slugify(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}

// Slugify lowercases s and collapses every run of non-alphanumerics into a
// single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
