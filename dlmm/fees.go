package dlmm

import (
	"fmt"
	"math/big"
)

// ClaimableSwapFee returns the swap fees a position could claim right
// now, per token side, in raw token units.
//
// For every bin, the fee owed since the position's last checkpoint is
// share * (feePerToken - checkpoint) in Q64.64, floored, plus whatever
// the program already moved to the pending bucket.
func ClaimableSwapFee(position *PositionV2, lowerArr, upperArr *BinArray) (feeX, feeY *big.Int, err error) {
	if lowerArr == nil || upperArr == nil {
		return nil, nil, fmt.Errorf("claimable fee: missing bin array: %w", ErrBinRangeMismatch)
	}

	feeX = new(big.Int)
	feeY = new(big.Int)

	for binID := position.LowerBinID; binID <= position.UpperBinID; binID++ {
		bin, _, err := binAt(binID, lowerArr, upperArr)
		if err != nil {
			return nil, nil, err
		}

		idx := binID - position.LowerBinID

		// Position shares are stored scaled by 2^ScaleOffset; descale
		// before multiplying with the Q64.64 accumulator delta.
		share := position.LiquidityShares[idx].BigInt()
		share.Rsh(share, ScaleOffset)

		feeInfo := &position.FeeInfos[idx]

		deltaX := new(big.Int).Sub(bin.FeeAmountXPerTokenStored.BigInt(), feeInfo.FeeXPerTokenComplete.BigInt())
		if deltaX.Sign() > 0 {
			feeX.Add(feeX, MulShr(share, deltaX, ScaleOffset))
		}
		feeX.Add(feeX, new(big.Int).SetUint64(uint64(feeInfo.FeeXPending)))

		deltaY := new(big.Int).Sub(bin.FeeAmountYPerTokenStored.BigInt(), feeInfo.FeeYPerTokenComplete.BigInt())
		if deltaY.Sign() > 0 {
			feeY.Add(feeY, MulShr(share, deltaY, ScaleOffset))
		}
		feeY.Add(feeY, new(big.Int).SetUint64(uint64(feeInfo.FeeYPending)))
	}

	return feeX, feeY, nil
}
