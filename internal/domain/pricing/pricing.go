// Package pricing provides the monetary calculations behind estimates and
// pool volume. All money is integer cents; rounding is half-up.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Line is the pricing view of an estimate line item.
type Line struct {
	Quantity       float64
	UnitPriceCents int64
}

// Totals is the derived money on an estimate.
type Totals struct {
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

// LineItemTotalCents computes round(quantity * unitPriceCents). Quantity may
// be fractional; the result is a whole cent.
func LineItemTotalCents(quantity float64, unitPriceCents int64) int64 {
	return roundCents(quantity * float64(unitPriceCents))
}

// EstimateTotals aggregates line items under a fractional tax rate.
//
// Each line is rounded to a whole cent BEFORE summation, and the tax is
// rounded once more on top of the subtotal. The two-stage rounding is a
// fixed policy for reproducible totals; collapsing it into a single terminal
// rounding produces different cent values for some inputs.
func EstimateTotals(lines []Line, taxRate float64) Totals {
	var t Totals
	for _, l := range lines {
		t.SubtotalCents += LineItemTotalCents(l.Quantity, l.UnitPriceCents)
	}
	t.TaxCents = roundCents(float64(t.SubtotalCents) * taxRate)
	t.TotalCents = t.SubtotalCents + t.TaxCents
	return t
}

// PoolVolumeGallons estimates the volume of a roughly rectangular pool from
// its dimensions in feet. Length and width are required; the depth is the
// mean of shallow and deep when both are known, otherwise whichever one is.
// Returns false when no estimate is possible.
//
// The 7.5 gallons-per-cubic-foot factor makes this a rough heuristic, not a
// hydraulic computation.
func PoolVolumeGallons(lengthFt, widthFt, shallowDepthFt, deepDepthFt float64) (int64, bool) {
	if lengthFt <= 0 || widthFt <= 0 {
		return 0, false
	}

	var avgDepth float64
	switch {
	case shallowDepthFt > 0 && deepDepthFt > 0:
		avgDepth = (shallowDepthFt + deepDepthFt) / 2
	case shallowDepthFt > 0:
		avgDepth = shallowDepthFt
	case deepDepthFt > 0:
		avgDepth = deepDepthFt
	default:
		return 0, false
	}

	return roundCents(lengthFt * widthFt * avgDepth * 7.5), true
}

// stripNumericDecorations removes the characters a human types around a
// number ($, %, thousands commas, surrounding space) before parsing.
func stripNumericDecorations(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "%", "")
	return strings.TrimSpace(s)
}

// ParseCurrencyToCents parses a currency string ("$1,500.00") into integer
// cents. Empty or unparsable input yields (0, false), meaning no value at
// all, which is distinct from an explicit zero amount.
func ParseCurrencyToCents(s string) (int64, bool) {
	cleaned := stripNumericDecorations(s)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return roundCents(v * 100), true
}

// ParsePercentToRate parses a percentage string into a fractional rate.
// Input above 1 is read as a whole percentage ("7" -> 0.07, "150%" -> 1.5);
// input at or below 1 is already fractional. The boundary value 1 therefore
// means a fractional 100%, not a literal one percent. Empty or unparsable
// input yields (0, false).
func ParsePercentToRate(s string) (float64, bool) {
	cleaned := stripNumericDecorations(s)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if v > 1 {
		return v / 100, true
	}
	return v, true
}
