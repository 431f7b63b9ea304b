package cashflow

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// parseDecimal normalizes user-supplied numeric text: any whitespace
// (including non-breaking spaces used as thousands separators) is stripped
// and a decimal comma is accepted in place of a dot.
func parseDecimal(s string) (decimal.Decimal, error) {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	normalized = strings.ReplaceAll(normalized, ",", ".")
	return decimal.NewFromString(normalized)
}

// ParseAmount parses a user-supplied amount. Unparseable input yields zero.
func ParseAmount(s string) Money {
	d, err := parseDecimal(s)
	if err != nil {
		return Money{}
	}
	return Money{value: d}
}

// ParseNonNegativeAmount is ParseAmount with negative results clamped to zero.
func ParseNonNegativeAmount(s string) Money {
	return ParseAmount(s).orZero()
}

// ParseQuantity parses a user-supplied share count, clamped to zero when
// negative or unparseable.
func ParseQuantity(s string) Quantity {
	d, err := parseDecimal(s)
	if err != nil || d.IsNegative() {
		return Quantity{}
	}
	return Quantity{value: d}
}

// ParseChildren parses a children count: floored to an integer and clamped to
// be non-negative. Unparseable input yields zero.
func ParseChildren(s string) int {
	d, err := parseDecimal(s)
	if err != nil {
		return 0
	}
	n := d.Floor().IntPart()
	if n < 0 {
		return 0
	}
	return int(n)
}
