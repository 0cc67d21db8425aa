// Package vat implements the Nigeria VAT pricing rules: per-item VAT
// amounts, tax-inclusive totals, display labels, and naira formatting.
// Every function is pure and deterministic.
package vat

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StandardRate is the Nigerian standard VAT rate (percent) introduced by
// the Finance Act 2020.
var StandardRate = decimal.NewFromFloat(7.5)

// CategoryExempt is the reserved category carrying exempt display
// semantics. A zero rate outside this category means zero-rated instead.
const CategoryExempt = "Exempt"

// VAT display labels produced by Classify.
const (
	LabelExempt    = "Exempt"
	LabelZeroRated = "Zero-Rated"
)

var oneHundred = decimal.NewFromInt(100)

// Amount returns basePrice * rate / 100 rounded to 2 decimal places.
// Rounding is half-up (half away from zero); totals reconcile to the kobo
// because callers sum already-rounded amounts.
func Amount(basePrice, rate decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(rate).Div(oneHundred).Round(2)
}

// Total returns the tax-inclusive price: basePrice plus the rounded VAT
// amount.
func Total(basePrice, rate decimal.Decimal) decimal.Decimal {
	return basePrice.Add(Amount(basePrice, rate))
}

// Classify maps a rate/category pair onto its display label. A zero rate is
// overloaded: it means exempt only when the category is the reserved
// "Exempt" value, and zero-rated everywhere else. This is the single source
// of truth for VAT labels.
func Classify(rate decimal.Decimal, category string) string {
	if rate.IsZero() {
		if category == CategoryExempt {
			return LabelExempt
		}
		return LabelZeroRated
	}
	return formatRate(rate) + "% VAT"
}

// FormatNaira renders an amount as a naira string with thousands separators
// and two fixed decimal places, e.g. ₦12,500.00.
func FormatNaira(amount decimal.Decimal) string {
	fixed := amount.Round(2).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("₦")
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// formatRate prints a percentage without trailing zeros (7.50 -> 7.5,
// 5.00 -> 5).
func formatRate(rate decimal.Decimal) string {
	s := rate.StringFixed(2)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
