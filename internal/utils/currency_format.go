package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah formats an amount in the Indonesian style with a thousands
// separator and no decimals.
// Example: 1234567 returns "Rp 1.234.567"; -5000 returns "-Rp 5.000"
func FormatRupiah(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	digits := amount.Abs().Round(0).String()

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
