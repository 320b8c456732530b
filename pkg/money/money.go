// Package money handles the currency text conventions used throughout
// the app: comma as the primary decimal separator (dot accepted), and
// "R$ 1234,56" display formatting.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sanitize strips everything except digits, comma and dot from user
// input. It does not validate; a sanitized string may still fail to
// parse (e.g. "1,2,3").
func Sanitize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseLocale parses a monetary amount with comma as the primary
// decimal separator; dot is accepted as an alternative. Returns false
// for empty or unparseable input.
func ParseLocale(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseOrZero is the documented fallback rule for running totals:
// anything ParseLocale rejects counts as zero.
func ParseOrZero(text string) decimal.Decimal {
	d, ok := ParseLocale(text)
	if !ok {
		return decimal.Zero
	}
	return d
}

// Format renders an amount as "R$ 1234,56" (two decimals, comma
// separator), the display convention inherited from the mobile app.
func Format(d decimal.Decimal) string {
	return "R$ " + FormatPlain(d)
}

// FormatPlain renders an amount as "1234,56" without the currency
// prefix.
func FormatPlain(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
