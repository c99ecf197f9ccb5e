// Package pricing derives payable amounts for catalog and cart surfaces.
// All functions are pure: given the same line item they always return the
// same integer dram amount.
package pricing

import "github.com/shopspring/decimal"

// Line is the minimal pricing view of a cart line. Grams non-nil marks a
// weight-based line; otherwise Quantity counts discrete pieces.
type Line struct {
	PriceAMD    int
	DiscountAMD *int
	Quantity    int
	Grams       *int
}

// Effective returns the payable unit price. A discount overrides the base
// price only when it is strictly between zero and the base price; anything
// else falls back to the full price silently.
func Effective(priceAMD int, discountAMD *int) int {
	if discountAMD == nil {
		return priceAMD
	}
	if d := *discountAMD; d > 0 && d < priceAMD {
		return d
	}
	return priceAMD
}

// LineTotal returns the payable amount for one line.
//
// Weight-based lines store the unit price per 100 grams. The total scales
// linearly with the absolute gram amount and is rounded half-up exactly
// once, at the end. Computing from the stored grams rather than a running
// total keeps repeated slider steps from accumulating rounding drift.
func LineTotal(line Line) int {
	unit := Effective(line.PriceAMD, line.DiscountAMD)
	if line.Grams != nil {
		total := decimal.NewFromInt(int64(unit)).
			Mul(decimal.NewFromInt(int64(*line.Grams))).
			Div(decimal.NewFromInt(100))
		return int(total.Round(0).IntPart())
	}
	return unit * line.Quantity
}

// CartTotal sums the line totals of every line in the cart.
func CartTotal(lines []Line) int {
	total := 0
	for _, line := range lines {
		total += LineTotal(line)
	}
	return total
}

// DiscountPercent returns the rounded badge percentage for a valid discount
// and false when no badge should be shown. The validity guard mirrors
// Effective: the discount must be strictly between zero and the base price.
func DiscountPercent(priceAMD int, discountAMD *int) (int, bool) {
	if priceAMD <= 0 || discountAMD == nil {
		return 0, false
	}
	d := *discountAMD
	if d <= 0 || d >= priceAMD {
		return 0, false
	}
	pct := decimal.NewFromInt(100).
		Sub(decimal.NewFromInt(int64(d)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(priceAMD))))
	return int(pct.Round(0).IntPart()), true
}
