package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxAmountDollars bounds form and import amounts so the value in cents fits
// an int64 and stays exact as a float64.
const MaxAmountDollars = 90_000_000_000_000

// FormatCurrency renders an amount in cents as US dollars, e.g. 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	sign := ""
	whole, frac := cents/100, cents%100
	if cents < 0 {
		sign = "-"
		whole, frac = -whole, -frac
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole), frac)
}

// ValidAmount reports whether a dollar amount is positive and within MaxAmountDollars.
func ValidAmount(dollars float64) bool {
	return dollars > 0 && dollars <= MaxAmountDollars
}

// DollarsToCents converts a form amount in dollars to integer cents.
func DollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// ParseStringToInt parses a route parameter such as an id.
func ParseStringToInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
