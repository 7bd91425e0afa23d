package pricing

import (
	"math"
	"testing"
)

func TestLineItemTotalCents(t *testing.T) {
	tests := []struct {
		name           string
		quantity       float64
		unitPriceCents int64
		expect         int64
	}{
		{"whole quantity", 2, 150000, 300000},
		{"single unit", 1, 50000, 50000},
		{"fractional quantity rounds half up", 2.5, 333, 833},
		{"fractional quantity rounds down", 1.3, 101, 131},
		{"quarter hour labor", 0.25, 10000, 2500},
		{"zero price", 3, 0, 0},
	}

	for _, tc := range tests {
		got := LineItemTotalCents(tc.quantity, tc.unitPriceCents)
		if got != tc.expect {
			t.Errorf("%s: LineItemTotalCents(%v, %d) = %d, want %d",
				tc.name, tc.quantity, tc.unitPriceCents, got, tc.expect)
		}
	}
}

func TestEstimateTotals(t *testing.T) {
	lines := []Line{
		{Quantity: 2, UnitPriceCents: 150000},
		{Quantity: 1, UnitPriceCents: 50000},
	}

	got := EstimateTotals(lines, 0.07)

	if got.SubtotalCents != 350000 {
		t.Errorf("SubtotalCents = %d, want 350000", got.SubtotalCents)
	}
	if got.TaxCents != 24500 {
		t.Errorf("TaxCents = %d, want 24500", got.TaxCents)
	}
	if got.TotalCents != 374500 {
		t.Errorf("TotalCents = %d, want 374500", got.TotalCents)
	}
}

func TestEstimateTotalsZeroRate(t *testing.T) {
	got := EstimateTotals([]Line{{Quantity: 1, UnitPriceCents: 9999}}, 0)

	if got.TaxCents != 0 {
		t.Errorf("TaxCents = %d, want 0", got.TaxCents)
	}
	if got.TotalCents != got.SubtotalCents {
		t.Errorf("TotalCents = %d, want subtotal %d", got.TotalCents, got.SubtotalCents)
	}
}

func TestEstimateTotalsRoundsPerLine(t *testing.T) {
	// Two half-cent lines each round up on their own. Summing the raw
	// products first would lose a cent.
	lines := []Line{
		{Quantity: 0.5, UnitPriceCents: 101},
		{Quantity: 0.5, UnitPriceCents: 101},
	}

	got := EstimateTotals(lines, 0)
	if got.SubtotalCents != 102 {
		t.Errorf("SubtotalCents = %d, want 102", got.SubtotalCents)
	}
}

func TestEstimateTotalsEmpty(t *testing.T) {
	got := EstimateTotals(nil, 0.0825)
	if got.SubtotalCents != 0 || got.TaxCents != 0 || got.TotalCents != 0 {
		t.Errorf("EstimateTotals(nil) = %+v, want all zero", got)
	}
}

func TestPoolVolumeGallons(t *testing.T) {
	tests := []struct {
		name     string
		length   float64
		width    float64
		shallow  float64
		deep     float64
		expect   int64
		expectOK bool
	}{
		{"both depths averaged", 32, 16, 3.5, 9, 24000, true},
		{"shallow only", 20, 10, 4, 0, 6000, true},
		{"deep only", 20, 10, 0, 6, 9000, true},
		{"no depth", 20, 10, 0, 0, 0, false},
		{"missing length", 0, 16, 3.5, 9, 0, false},
		{"missing width", 32, 0, 3.5, 9, 0, false},
	}

	for _, tc := range tests {
		got, ok := PoolVolumeGallons(tc.length, tc.width, tc.shallow, tc.deep)
		if ok != tc.expectOK {
			t.Errorf("%s: PoolVolumeGallons ok = %v, want %v", tc.name, ok, tc.expectOK)
			continue
		}
		if got != tc.expect {
			t.Errorf("%s: PoolVolumeGallons(%v, %v, %v, %v) = %d, want %d",
				tc.name, tc.length, tc.width, tc.shallow, tc.deep, got, tc.expect)
		}
	}
}

func TestParseCurrencyToCents(t *testing.T) {
	tests := []struct {
		input    string
		expect   int64
		expectOK bool
	}{
		{"$1,500.00", 150000, true},
		{"1500", 150000, true},
		{"1500.5", 150050, true},
		{" $25 ", 2500, true},
		{"0", 0, true},
		{"0.005", 1, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"$", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseCurrencyToCents(tc.input)
		if ok != tc.expectOK {
			t.Errorf("ParseCurrencyToCents(%q) ok = %v, want %v", tc.input, ok, tc.expectOK)
			continue
		}
		if got != tc.expect {
			t.Errorf("ParseCurrencyToCents(%q) = %d, want %d", tc.input, got, tc.expect)
		}
	}
}

func TestParsePercentToRate(t *testing.T) {
	tests := []struct {
		input    string
		expect   float64
		expectOK bool
	}{
		{"7", 0.07, true},
		{"7%", 0.07, true},
		{"8.25", 0.0825, true},
		{"0.07", 0.07, true},
		{"0", 0, true},
		// 1 sits on the as-is side of the boundary: fractional 100%.
		{"1", 1.0, true},
		{"1.5", 0.015, true},
		{"150%", 1.5, true},
		{"", 0, false},
		{"pct", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParsePercentToRate(tc.input)
		if ok != tc.expectOK {
			t.Errorf("ParsePercentToRate(%q) ok = %v, want %v", tc.input, ok, tc.expectOK)
			continue
		}
		if math.Abs(got-tc.expect) > 1e-9 {
			t.Errorf("ParsePercentToRate(%q) = %v, want %v", tc.input, got, tc.expect)
		}
	}
}
