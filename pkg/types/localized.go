package types

import "github.com/chocomarket/chocomarket-backend/pkg/enums"

// LocalizedText carries the three catalog locales side by side. Catalog rows
// always store all three variants; Resolve picks the display value at render
// time and falls back to English when a variant is blank.
type LocalizedText struct {
	EN string `json:"en"`
	HY string `json:"hy"`
	RU string `json:"ru"`
}

// Resolve returns the variant for the requested locale, defaulting to English.
func (t LocalizedText) Resolve(locale enums.Locale) string {
	switch locale {
	case enums.LocaleHY:
		if t.HY != "" {
			return t.HY
		}
	case enums.LocaleRU:
		if t.RU != "" {
			return t.RU
		}
	}
	return t.EN
}
