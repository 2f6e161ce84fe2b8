package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FromCents converts an integer amount of cents to currency units.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

// ToCents rounds half away from zero to whole cents.
func ToCents(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}

// CeilCent rounds up to the next whole cent.
func CeilCent(d decimal.Decimal) decimal.Decimal {
	return d.Mul(hundred).Ceil().Div(hundred)
}

// PercentToFraction turns 8.25 into 0.0825.
func PercentToFraction(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// FormatUSD renders d as "$1,234.56"; negative amounts get a leading minus.
func FormatUSD(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + "." + frac
}

func FormatCents(cents int64) string {
	return FormatUSD(FromCents(cents))
}
