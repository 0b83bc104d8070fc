package controllers

import (
	"strings"
	"unicode"
)

// sortKey accepts sortBy in camelCase or snake_case, leaseEndDate and
// lease_end_date name the same column.
func sortKey(s string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(s) {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
