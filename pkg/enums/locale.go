package enums

import "fmt"

// Locale identifies one of the three storefront languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleHY Locale = "hy"
	LocaleRU Locale = "ru"
)

var validLocales = []Locale{
	LocaleEN,
	LocaleHY,
	LocaleRU,
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}

// IsValid reports whether the value is a known Locale.
func (l Locale) IsValid() bool {
	for _, candidate := range validLocales {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLocale converts raw input into a Locale.
func ParseLocale(value string) (Locale, error) {
	for _, candidate := range validLocales {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid locale %q", value)
}
