// Package money provides small decimal helpers for monetary amounts and
// rate formatting shared by the engine's reporting surfaces.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with financial precision.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a float64.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal wraps an existing decimal amount.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds to cents using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// String returns the amount fixed to cents.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as whole dollars with thousands separators,
// e.g. "$1,234,567". Negative amounts keep the sign before the dollar sign.
func (m Money) Format() string {
	s := m.Decimal.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	grouped := groupThousands(s)
	if neg {
		return "-$" + grouped
	}
	return "$" + grouped
}

// FormatCents renders the amount with a dollar sign and cents.
func (m Money) FormatCents() string {
	s := m.Decimal.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	grouped := groupThousands(s[:dot]) + s[dot:]
	if neg {
		return "-$" + grouped
	}
	return "$" + grouped
}

// FormatPercent renders a fractional rate as a percentage with two
// decimals, e.g. 0.068 -> "6.80%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
