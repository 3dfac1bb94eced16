package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[int64]string{
		0:         "$0.00",
		5:         "$0.05",
		100:       "$1.00",
		15795:     "$157.95",
		123456:    "$1,234.56",
		100000000: "$1,000,000.00",
		-2500:     "-$25.00",
		-5:        "-$0.05",

		9007199254740993: "$90,071,992,547,409.93",
		math.MaxInt64:    "$92,233,720,368,547,758.07",
		math.MinInt64:    "-$92,233,720,368,547,758.08",
	}
	for cents, want := range cases {
		assert.Equal(t, want, FormatCurrency(cents), "cents=%d", cents)
	}
}

func TestDollarsToCents(t *testing.T) {
	assert.Equal(t, int64(15795), DollarsToCents(157.95))
	assert.Equal(t, int64(1), DollarsToCents(0.01))
	assert.Equal(t, int64(10000), DollarsToCents(100))
	// 0.29 * 100 is 28.999999999999996 in float64
	assert.Equal(t, int64(29), DollarsToCents(0.29))
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(0.01))
	assert.True(t, ValidAmount(MaxAmountDollars))
	assert.False(t, ValidAmount(0))
	assert.False(t, ValidAmount(-1))
	assert.False(t, ValidAmount(1e20))
	assert.False(t, ValidAmount(math.NaN()))
	assert.False(t, ValidAmount(math.Inf(1)))
	assert.Equal(t, int64(9_000_000_000_000_000), DollarsToCents(MaxAmountDollars))
}

func TestParseStringToInt(t *testing.T) {
	n, err := ParseStringToInt("42")
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ParseStringToInt(" 7 ")
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = ParseStringToInt("abc")
	assert.Error(t, err)

	_, err = ParseStringToInt("")
	assert.Error(t, err)
}
