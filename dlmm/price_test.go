package dlmm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceOfBinZero(t *testing.T) {
	price, err := PriceOfBin(0, 25)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(1)), "got %s", price)
}

func TestPriceOfBinPositive(t *testing.T) {
	price, err := PriceOfBin(1, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.001, price.InexactFloat64(), 1e-12)

	price, err = PriceOfBin(10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0100451202102512, price.InexactFloat64(), 1e-12)
}

func TestPriceOfBinNegative(t *testing.T) {
	price, err := PriceOfBin(-1, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1/1.001, price.InexactFloat64(), 1e-12)
}

func TestPriceOfBinReciprocal(t *testing.T) {
	up, err := PriceOfBin(100, 25)
	require.NoError(t, err)
	down, err := PriceOfBin(-100, 25)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, up.Mul(down).InexactFloat64(), 1e-12)
}

// Prices far below one must keep their significant digits; a price that
// collapses to zero would blow up the Y-to-X conversion downstream.
func TestPriceOfBinDeepNegative(t *testing.T) {
	price, err := PriceOfBin(-10_000, 100)
	require.NoError(t, err)
	assert.True(t, price.IsPositive(), "got %s", price)

	quotient := decimal.NewFromInt(1000).Div(price)
	assert.True(t, quotient.IsPositive())
}

func TestPriceOfBinExtremes(t *testing.T) {
	low, err := PriceOfBin(MinBinID, 10)
	require.NoError(t, err)
	assert.True(t, low.IsPositive(), "got %s", low)

	high, err := PriceOfBin(MaxBinID, 10)
	require.NoError(t, err)
	assert.True(t, high.GreaterThan(decimal.NewFromInt(1)))
}

func TestPriceOfBinOutOfRange(t *testing.T) {
	_, err := PriceOfBin(MaxBinID+1, 10)
	assert.ErrorIs(t, err, ErrInvalidBinID)

	_, err = PriceOfBin(MinBinID-1, 10)
	assert.ErrorIs(t, err, ErrInvalidBinID)
}

func TestPricePerToken(t *testing.T) {
	raw := decimal.NewFromInt(2)

	// X has 9 decimals, Y has 6: one whole X is 1000x more raw units.
	adjusted := PricePerToken(raw, 9, 6)
	assert.True(t, adjusted.Equal(decimal.NewFromInt(2000)), "got %s", adjusted)

	adjusted = PricePerToken(raw, 6, 6)
	assert.True(t, adjusted.Equal(raw))
}
