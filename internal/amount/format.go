package amount

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Format renders value as a signed, thousands-grouped string rounded to two
// places with trailing fractional zeros dropped:
//
//	Format(1234.5, "")   -> "+1,234.5"
//	Format(-1234.5, "€") -> "- €1,234.5"
//	Format(0, "")        -> "+0"
//
// The negative sign is followed by a space and the positive one is not.
func Format(value decimal.Decimal, currencySymbol string) string {
	v := value.Round(Places)
	if v.IsNegative() {
		return "- " + currencySymbol + group(v.Neg())
	}
	return "+" + currencySymbol + group(v)
}

// Plain renders a non-negative value without a sign, e.g. "1,234.56".
func Plain(value decimal.Decimal, currencySymbol string) string {
	v := value.Round(Places)
	if v.IsNegative() {
		return "-" + currencySymbol + group(v.Neg())
	}
	return currencySymbol + group(v)
}

// group formats a non-negative value.
func group(v decimal.Decimal) string {
	whole := v.Truncate(0)
	s := humanize.Comma(whole.IntPart())
	if frac := v.Sub(whole); !frac.IsZero() {
		// frac.String() is "0.x" or "0.xy"
		s += frac.String()[1:]
	}
	return s
}
