// Package search matches catalog names across the three storefront scripts.
// A shopper typing Latin, Armenian or Cyrillic input finds products whose
// names are stored in any locale field, via static substitution tables and
// plain case-insensitive substring containment.
package search

import (
	"strings"

	"github.com/chocomarket/chocomarket-backend/pkg/enums"
)

func tableFor(from, to enums.Locale) (map[string]string, bool) {
	switch {
	case from == enums.LocaleEN && to == enums.LocaleHY:
		return enToHy, true
	case from == enums.LocaleEN && to == enums.LocaleRU:
		return enToRu, true
	case from == enums.LocaleRU && to == enums.LocaleHY:
		return ruToHy, true
	}
	return nil, false
}

// Transliterate rewrites input through the from→to substitution table.
// At each position a two-rune digraph lookup is tried before the single
// rune; checking single runes first would split digraphs like "sh" before
// the digraph rule ever ran. Runes absent from the table pass through
// unchanged. An undefined direction returns the input as is.
func Transliterate(input string, from, to enums.Locale) string {
	table, ok := tableFor(from, to)
	if !ok {
		return input
	}

	runes := []rune(strings.ToLower(input))
	var out strings.Builder
	out.Grow(len(input))
	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			if sub, ok := table[string(runes[i:i+2])]; ok {
				out.WriteString(sub)
				i += 2
				continue
			}
		}
		if sub, ok := table[string(runes[i])]; ok {
			out.WriteString(sub)
		} else {
			out.WriteRune(runes[i])
		}
		i++
	}
	return out.String()
}

// Variants returns the lower-cased query plus every transliteration the
// defined table directions can produce, deduplicated, raw query first.
func Variants(query string) []string {
	raw := strings.ToLower(strings.TrimSpace(query))
	if raw == "" {
		return nil
	}

	variants := []string{raw}
	seen := map[string]struct{}{raw: {}}
	for _, dir := range []struct{ from, to enums.Locale }{
		{enums.LocaleEN, enums.LocaleHY},
		{enums.LocaleEN, enums.LocaleRU},
		{enums.LocaleRU, enums.LocaleHY},
	} {
		v := Transliterate(raw, dir.from, dir.to)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}
	return variants
}
