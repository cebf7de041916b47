package dlmm

import (
	"math/big"
	"testing"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maiker-fi/maiker-go/u128"
)

func testPairKey() solana.PublicKey {
	return solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
}

func testPair(activeID int32, binStep uint16) *LbPair {
	return &LbPair{ActiveID: activeID, BinStep: binStep}
}

// twoBinFixture builds a pair, a position spanning [10, 11] with 250
// shares in each bin, and the single array covering both bins:
// bin 10 holds 1000 of X, bin 11 holds 2000 of Y, both with a
// liquidity supply of 500.
func twoBinFixture(t *testing.T) (*LbPair, *PositionV2, *BinArray) {
	t.Helper()

	pairKey := testPairKey()

	arr := &BinArray{
		Index:   0,
		Version: 1,
		LbPair:  pairKey,
	}
	arr.Bins[10] = Bin{
		AmountX:         1000,
		LiquiditySupply: u128.FromBig(big.NewInt(500)),
	}
	arr.Bins[11] = Bin{
		AmountY:         2000,
		LiquiditySupply: u128.FromBig(big.NewInt(500)),
	}

	position := &PositionV2{
		LbPair:     pairKey,
		LowerBinID: 10,
		UpperBinID: 11,
	}
	position.LiquidityShares[0] = u128.FromBig(big.NewInt(250))
	position.LiquidityShares[1] = u128.FromBig(big.NewInt(250))

	return testPair(10, 10), position, arr
}

func TestProcessPositionTwoBins(t *testing.T) {
	pair, position, arr := twoBinFixture(t)

	data, err := ProcessPosition(pair, 0, position, 9, 6, arr, arr)
	require.NoError(t, err)

	require.Len(t, data.BinData, 2)
	assert.True(t, data.BinData[0].PositionXAmount.Equal(decimal.NewFromInt(500)),
		"got %s", data.BinData[0].PositionXAmount)
	assert.True(t, data.BinData[0].PositionYAmount.Equal(decimal.Zero))
	assert.True(t, data.BinData[1].PositionXAmount.Equal(decimal.Zero))
	assert.True(t, data.BinData[1].PositionYAmount.Equal(decimal.NewFromInt(1000)),
		"got %s", data.BinData[1].PositionYAmount)

	assert.True(t, data.TotalXAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, data.TotalYAmount.Equal(decimal.NewFromInt(1000)))

	assert.Equal(t, int64(0), data.FeeX.Int64())
	assert.Equal(t, int64(0), data.FeeY.Int64())
}

func TestProcessPositionTotalsMatchBinSums(t *testing.T) {
	pair, position, arr := twoBinFixture(t)

	data, err := ProcessPosition(pair, 0, position, 9, 6, arr, arr)
	require.NoError(t, err)

	var sumX, sumY decimal.Decimal
	for _, bin := range data.BinData {
		sumX = sumX.Add(bin.PositionXAmount)
		sumY = sumY.Add(bin.PositionYAmount)
	}
	assert.True(t, data.TotalXAmount.Equal(sumX))
	assert.True(t, data.TotalYAmount.Equal(sumY))
}

func TestProcessPositionZeroSupply(t *testing.T) {
	pair, position, arr := twoBinFixture(t)
	arr.Bins[10].LiquiditySupply = binary.Uint128{}
	arr.Bins[11].LiquiditySupply = binary.Uint128{}

	data, err := ProcessPosition(pair, 0, position, 9, 6, arr, arr)
	require.NoError(t, err)

	assert.True(t, data.TotalXAmount.IsZero())
	assert.True(t, data.TotalYAmount.IsZero())
	for _, bin := range data.BinData {
		assert.True(t, bin.PositionXAmount.IsZero())
		assert.True(t, bin.PositionYAmount.IsZero())
	}
}

// The older array layout stores supply unscaled while position shares
// carry the full 2^64 scale. Proration must land on the same amounts
// either way.
func TestProcessPositionScaleConsistency(t *testing.T) {
	pair, position, arr := twoBinFixture(t)

	v0 := &BinArray{Index: 0, Version: 0, LbPair: arr.LbPair}
	v0.Bins = arr.Bins

	scaled := &PositionV2{
		LbPair:     position.LbPair,
		LowerBinID: position.LowerBinID,
		UpperBinID: position.UpperBinID,
	}
	for i := range 2 {
		scaled.LiquidityShares[i] = u128.FromBig(new(big.Int).Lsh(big.NewInt(250), ScaleOffset))
	}

	fromV1, err := ProcessPosition(pair, 0, position, 9, 6, arr, arr)
	require.NoError(t, err)
	fromV0, err := ProcessPosition(pair, 0, scaled, 9, 6, v0, v0)
	require.NoError(t, err)

	assert.True(t, fromV0.TotalXAmount.Equal(fromV1.TotalXAmount),
		"v0 %s vs v1 %s", fromV0.TotalXAmount, fromV1.TotalXAmount)
	assert.True(t, fromV0.TotalYAmount.Equal(fromV1.TotalYAmount))
}

func TestProcessPositionRangeMismatch(t *testing.T) {
	pair, position, _ := twoBinFixture(t)

	far := &BinArray{Index: 2, Version: 1, LbPair: position.LbPair}

	_, err := ProcessPosition(pair, 0, position, 9, 6, far, far)
	assert.ErrorIs(t, err, ErrBinRangeMismatch)
}

func TestProcessPositionWrongPair(t *testing.T) {
	pair, position, arr := twoBinFixture(t)
	arr.LbPair = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")

	_, err := ProcessPosition(pair, 0, position, 9, 6, arr, arr)
	assert.ErrorIs(t, err, ErrBinRangeMismatch)
}

func TestProcessPositionNilArray(t *testing.T) {
	pair, position, arr := twoBinFixture(t)

	_, err := ProcessPosition(pair, 0, position, 9, 6, nil, arr)
	assert.ErrorIs(t, err, ErrBinRangeMismatch)
}
