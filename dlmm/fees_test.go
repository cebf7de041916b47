package dlmm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maiker-fi/maiker-go/u128"
)

func q64(v int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(v), Scale)
}

// feeFixture builds a single-bin position with the given descaled share
// and a bin whose X fee accumulator sits at feePerTokenX (Q64.64).
func feeFixture(share int64, feePerTokenX *big.Int) (*PositionV2, *BinArray) {
	pairKey := testPairKey()

	arr := &BinArray{Index: 0, Version: 1, LbPair: pairKey}
	arr.Bins[5].FeeAmountXPerTokenStored = u128.FromBig(feePerTokenX)

	position := &PositionV2{
		LbPair:     pairKey,
		LowerBinID: 5,
		UpperBinID: 5,
	}
	position.LiquidityShares[0] = u128.FromBig(q64(share))

	return position, arr
}

func TestClaimableSwapFee(t *testing.T) {
	position, arr := feeFixture(100, q64(3))

	feeX, feeY, err := ClaimableSwapFee(position, arr, arr)
	require.NoError(t, err)

	assert.Equal(t, int64(300), feeX.Int64())
	assert.Equal(t, int64(0), feeY.Int64())
}

func TestClaimableSwapFeeAddsPending(t *testing.T) {
	position, arr := feeFixture(100, q64(3))
	position.FeeInfos[0].FeeXPending = 7
	position.FeeInfos[0].FeeYPending = 11

	feeX, feeY, err := ClaimableSwapFee(position, arr, arr)
	require.NoError(t, err)

	assert.Equal(t, int64(307), feeX.Int64())
	assert.Equal(t, int64(11), feeY.Int64())
}

func TestClaimableSwapFeeFloors(t *testing.T) {
	// 3 shares times half a token per share is 1.5, floored to 1.
	half := new(big.Int).Lsh(big.NewInt(1), ScaleOffset-1)
	position, arr := feeFixture(3, half)

	feeX, _, err := ClaimableSwapFee(position, arr, arr)
	require.NoError(t, err)

	assert.Equal(t, int64(1), feeX.Int64())
}

func TestClaimableSwapFeeNeverNegative(t *testing.T) {
	position, arr := feeFixture(100, q64(1))
	position.FeeInfos[0].FeeXPerTokenComplete = u128.FromBig(q64(5))

	feeX, feeY, err := ClaimableSwapFee(position, arr, arr)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, feeX.Sign(), 0)
	assert.GreaterOrEqual(t, feeY.Sign(), 0)
}

func TestClaimableSwapFeeMonotonic(t *testing.T) {
	position, arr := feeFixture(100, q64(3))

	before, _, err := ClaimableSwapFee(position, arr, arr)
	require.NoError(t, err)

	arr.Bins[5].FeeAmountXPerTokenStored = u128.FromBig(q64(4))

	after, _, err := ClaimableSwapFee(position, arr, arr)
	require.NoError(t, err)

	assert.True(t, after.Cmp(before) >= 0, "fee went from %s to %s", before, after)
}

func TestClaimableSwapFeeRangeMismatch(t *testing.T) {
	position, _ := feeFixture(100, q64(3))
	far := &BinArray{Index: 3, Version: 1, LbPair: position.LbPair}

	_, _, err := ClaimableSwapFee(position, far, far)
	assert.ErrorIs(t, err, ErrBinRangeMismatch)
}
