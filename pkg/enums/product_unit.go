package enums

import "fmt"

// ProductUnit declares how a catalog item is sold: by discrete piece or by
// weight, priced per 100 grams.
type ProductUnit string

const (
	ProductUnitPieces ProductUnit = "pieces"
	ProductUnitGrams  ProductUnit = "grams"
)

var validProductUnits = []ProductUnit{
	ProductUnitPieces,
	ProductUnitGrams,
}

// String implements fmt.Stringer.
func (u ProductUnit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known ProductUnit.
func (u ProductUnit) IsValid() bool {
	for _, candidate := range validProductUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseProductUnit converts raw input into a ProductUnit.
func ParseProductUnit(value string) (ProductUnit, error) {
	for _, candidate := range validProductUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product unit %q", value)
}
