package search

import (
	"testing"

	"github.com/chocomarket/chocomarket-backend/pkg/enums"
)

func TestTransliterateDigraphsBeforeSingles(t *testing.T) {
	t.Parallel()

	// "ch" must hit the digraph rule, not "c" then "h".
	got := Transliterate("chocolate", enums.LocaleEN, enums.LocaleHY)
	want := "չոցոլատե"
	if got != want {
		t.Fatalf("Transliterate(chocolate, en, hy) = %q, want %q", got, want)
	}

	got = Transliterate("shokolad", enums.LocaleEN, enums.LocaleRU)
	want = "шоколад"
	if got != want {
		t.Fatalf("Transliterate(shokolad, en, ru) = %q, want %q", got, want)
	}
}

func TestTransliterateUnknownRunesPassThrough(t *testing.T) {
	t.Parallel()

	got := Transliterate("bar-29!", enums.LocaleEN, enums.LocaleRU)
	if got != "бар-29!" {
		t.Fatalf("expected punctuation and digits preserved, got %q", got)
	}
}

func TestTransliterateLowercasesInput(t *testing.T) {
	t.Parallel()

	upper := Transliterate("SHOKOLAD", enums.LocaleEN, enums.LocaleRU)
	lower := Transliterate("shokolad", enums.LocaleEN, enums.LocaleRU)
	if upper != lower {
		t.Fatalf("case should not change output: %q vs %q", upper, lower)
	}
}

func TestTransliterateUndefinedDirection(t *testing.T) {
	t.Parallel()

	// Only en→hy, en→ru and ru→hy tables exist.
	if got := Transliterate("շոկոլադ", enums.LocaleHY, enums.LocaleEN); got != "շոկոլադ" {
		t.Fatalf("undefined direction should be identity, got %q", got)
	}
}

func TestTransliterateRussianToArmenian(t *testing.T) {
	t.Parallel()

	got := Transliterate("шоколад", enums.LocaleRU, enums.LocaleHY)
	want := "շոկոլադ"
	if got != want {
		t.Fatalf("Transliterate(шоколад, ru, hy) = %q, want %q", got, want)
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()

	variants := Variants("Molochn")
	if len(variants) == 0 || variants[0] != "molochn" {
		t.Fatalf("expected raw lowered query first, got %v", variants)
	}
	if !containsString(variants, "молочн") {
		t.Fatalf("expected en→ru variant молочн, got %v", variants)
	}

	if got := Variants("   "); got != nil {
		t.Fatalf("expected no variants for blank query, got %v", got)
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
