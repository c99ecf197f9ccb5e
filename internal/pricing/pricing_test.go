package pricing

import "testing"

func intPtr(v int) *int { return &v }

func TestEffectiveDiscountGuard(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		price    int
		discount *int
		want     int
	}{
		{name: "no discount", price: 1000, discount: nil, want: 1000},
		{name: "zero discount ignored", price: 1000, discount: intPtr(0), want: 1000},
		{name: "negative discount ignored", price: 1000, discount: intPtr(-50), want: 1000},
		{name: "discount above price ignored", price: 1000, discount: intPtr(1200), want: 1000},
		{name: "discount equal to price ignored", price: 1000, discount: intPtr(1000), want: 1000},
		{name: "valid discount applied", price: 1000, discount: intPtr(800), want: 800},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Effective(tc.price, tc.discount); got != tc.want {
				t.Fatalf("Effective(%d, %v) = %d, want %d", tc.price, tc.discount, got, tc.want)
			}
		})
	}
}

func TestLineTotalPieces(t *testing.T) {
	t.Parallel()

	got := LineTotal(Line{PriceAMD: 1500, Quantity: 3})
	if got != 4500 {
		t.Fatalf("expected 4500, got %d", got)
	}

	got = LineTotal(Line{PriceAMD: 1500, DiscountAMD: intPtr(1200), Quantity: 3})
	if got != 3600 {
		t.Fatalf("expected discounted 3600, got %d", got)
	}
}

func TestLineTotalWeightRoundsOnce(t *testing.T) {
	t.Parallel()

	// 1000 AMD per 100g at 250g.
	got := LineTotal(Line{PriceAMD: 1000, Quantity: 1, Grams: intPtr(250)})
	if got != 2500 {
		t.Fatalf("expected 2500, got %d", got)
	}

	// 333 AMD per 100g at 150g: 499.5 rounds half-up to 500.
	got = LineTotal(Line{PriceAMD: 333, Quantity: 1, Grams: intPtr(150)})
	if got != 500 {
		t.Fatalf("expected 500, got %d", got)
	}

	// Computing from absolute grams must match stepping the slider there
	// in 10g increments.
	direct := LineTotal(Line{PriceAMD: 333, Quantity: 1, Grams: intPtr(990)})
	if direct != 3297 {
		t.Fatalf("expected 3297, got %d", direct)
	}
}

func TestCartTotal(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{PriceAMD: 1000, Quantity: 2},
		{PriceAMD: 1000, DiscountAMD: intPtr(800), Quantity: 1, Grams: intPtr(250)},
	}
	if got := CartTotal(lines); got != 4000 {
		t.Fatalf("expected 4000, got %d", got)
	}

	if got := CartTotal(nil); got != 0 {
		t.Fatalf("expected empty cart total 0, got %d", got)
	}
}

func TestDiscountPercent(t *testing.T) {
	t.Parallel()

	if pct, ok := DiscountPercent(1000, intPtr(800)); !ok || pct != 20 {
		t.Fatalf("expected 20%%, got %d ok=%v", pct, ok)
	}
	if pct, ok := DiscountPercent(3000, intPtr(2000)); !ok || pct != 33 {
		t.Fatalf("expected 33%%, got %d ok=%v", pct, ok)
	}
	if _, ok := DiscountPercent(1000, nil); ok {
		t.Fatal("expected no badge without a discount")
	}
	if _, ok := DiscountPercent(1000, intPtr(0)); ok {
		t.Fatal("expected no badge for zero discount")
	}
	if _, ok := DiscountPercent(1000, intPtr(1200)); ok {
		t.Fatal("expected no badge for discount above price")
	}
	if _, ok := DiscountPercent(0, intPtr(10)); ok {
		t.Fatal("expected no badge for zero price")
	}
}
