package search

import "strings"

// Names carries a product's display name in each locale field.
type Names struct {
	EN string
	HY string
	RU string
}

// Matches reports whether any locale name contains the raw query or any
// transliterated variant as a case-insensitive substring. No edit-distance
// scoring is involved.
func Matches(names Names, query string) bool {
	variants := Variants(query)
	if len(variants) == 0 {
		return false
	}

	fields := []string{
		strings.ToLower(names.EN),
		strings.ToLower(names.HY),
		strings.ToLower(names.RU),
	}
	for _, field := range fields {
		if field == "" {
			continue
		}
		for _, variant := range variants {
			if strings.Contains(field, variant) {
				return true
			}
		}
	}
	return false
}
