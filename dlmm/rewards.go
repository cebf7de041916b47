package dlmm

import (
	"fmt"
	"math/big"
)

// ClaimableRewards returns the liquidity-mining rewards a position could
// claim at unix time now, one amount per reward slot, in raw token units.
//
// Bin accumulators advance on chain only when the bin trades, so the
// active bin's accumulator is projected forward to now using the pool's
// reward rate. Inactive bins use their stored accumulators as is.
func ClaimableRewards(
	position *PositionV2,
	pair *LbPair,
	lowerArr, upperArr *BinArray,
	now int64,
) ([RewardSlots]*big.Int, error) {
	var rewards [RewardSlots]*big.Int
	for slot := range rewards {
		rewards[slot] = new(big.Int)
	}

	if lowerArr == nil || upperArr == nil {
		return rewards, fmt.Errorf("claimable rewards: missing bin array: %w", ErrBinRangeMismatch)
	}

	for binID := position.LowerBinID; binID <= position.UpperBinID; binID++ {
		bin, layout, err := binAt(binID, lowerArr, upperArr)
		if err != nil {
			return rewards, err
		}

		idx := binID - position.LowerBinID
		share := position.LiquidityShares[idx].BigInt()
		share.Rsh(share, ScaleOffset)

		for slot := 0; slot < RewardSlots; slot++ {
			rewardInfo := &pair.RewardInfos[slot]
			if !rewardInfo.Initialized() {
				continue
			}

			perToken := bin.RewardPerTokenStored[slot].BigInt()

			if binID == pair.ActiveID {
				supply := bin.LiquiditySupply.BigInt()
				supply.Rsh(supply, layout.SupplyScaleShift())
				if supply.Sign() > 0 {
					perToken.Add(perToken, projectedRewardPerToken(rewardInfo, supply, now))
				}
			}

			delta := perToken.Sub(perToken, position.RewardInfos[idx].RewardPerTokenCompletes[slot].BigInt())
			if delta.Sign() > 0 {
				rewards[slot].Add(rewards[slot], MulShr(share, delta, ScaleOffset))
			}
			rewards[slot].Add(rewards[slot], new(big.Int).SetUint64(uint64(position.RewardInfos[idx].RewardPendings[slot])))
		}
	}

	return rewards, nil
}

// projectedRewardPerToken extrapolates a reward slot's per-token
// accumulator from its last on-chain update to now. Accrual stops at
// RewardDurationEnd, and a last update in the future contributes
// nothing.
func projectedRewardPerToken(rewardInfo *RewardInfo, supply *big.Int, now int64) *big.Int {
	current := now
	if end := int64(rewardInfo.RewardDurationEnd); current > end {
		current = end
	}
	elapsed := current - int64(rewardInfo.LastUpdateTime)
	if elapsed <= 0 {
		return new(big.Int)
	}

	delta := rewardInfo.RewardRate.BigInt()
	delta.Mul(delta, big.NewInt(elapsed))
	delta.Quo(delta, big.NewInt(RewardRateDivisor))
	return delta.Quo(delta, supply)
}
