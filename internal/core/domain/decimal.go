package domain

import "github.com/shopspring/decimal"

// FormatDecimal renders d keeping the scale it was built with, so "1000.0"
// stays "1000.0" while integers render without a decimal point.
// decimal.Decimal.String trims trailing zeros, which loses that scale.
func FormatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// ParseDecimal parses s exactly, keeping the scale of its string form.
func ParseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
