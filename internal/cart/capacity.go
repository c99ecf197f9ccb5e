package cart

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultCapacityGrams applies when the catalog weight field is absent
	// or unparseable.
	DefaultCapacityGrams = 10000
	// GramStep is the slider step size for weight-based lines.
	GramStep = 10
)

// ParseCapacity extracts the maximum orderable grams from the catalog
// weight string ("500", "500g", "500 гр"). The leading digit run is the
// capacity; anything unparseable or non-positive falls back to the default.
func ParseCapacity(weight *string) int {
	if weight == nil {
		return DefaultCapacityGrams
	}
	trimmed := strings.TrimSpace(*weight)
	end := 0
	for end < len(trimmed) && unicode.IsDigit(rune(trimmed[end])) {
		end++
	}
	if end == 0 {
		return DefaultCapacityGrams
	}
	capacity, err := strconv.Atoi(trimmed[:end])
	if err != nil || capacity <= 0 {
		return DefaultCapacityGrams
	}
	return capacity
}

// ClampGrams snaps arbitrary integer input into [0, maxGrams] on the gram
// step grid. Direct numeric field edits can carry any value; the model
// itself trusts its input, so clamping happens here at the control layer.
func ClampGrams(grams, maxGrams int) int {
	if maxGrams <= 0 {
		maxGrams = DefaultCapacityGrams
	}
	if grams < 0 {
		return 0
	}
	if grams > maxGrams {
		grams = maxGrams
	}
	return grams - grams%GramStep
}
