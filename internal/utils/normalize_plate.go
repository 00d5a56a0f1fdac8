package utils

import (
	"strings"
	"unicode"
)

// NormalizePlate prepares a VRM for the DVLA enquiry API: every whitespace
// character and hyphen is removed and the remainder upper-cased.
func NormalizePlate(raw string) string {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, raw)
	return strings.ToUpper(normalized)
}
