// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const notAvailable = "n/a"

// FormatCurrency formats a dollar amount with two decimals and thousands
// separators. e.g., 1234567.891 -> "$1,234,567.89", -12.5 -> "-$12.50".
// NaN and infinities render as "n/a".
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return notAvailable
	}
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.BigComma(whole.BigInt()), cents)
}

// FormatSignedCurrency is FormatCurrency with an explicit "+" for gains.
func FormatSignedCurrency(v float64) string {
	s := FormatCurrency(v)
	if strings.HasPrefix(s, "$") && s != "$0.00" {
		return "+" + s
	}
	return s
}

// FormatYears formats a year count with one decimal. e.g., 28 -> "28.0 years"
func FormatYears(years float64) string {
	return fmt.Sprintf("%.1f years", years)
}

// FormatTerm formats a loan term. e.g., 30 -> "30-year"
func FormatTerm(years int) string {
	return fmt.Sprintf("%d-year", years)
}

// FormatRate formats an annual percentage rate without trailing zeros.
// e.g., 5.875 -> "5.875%", 6 -> "6%"
func FormatRate(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return notAvailable
	}
	return decimal.NewFromFloat(rate).Round(3).String() + "%"
}
