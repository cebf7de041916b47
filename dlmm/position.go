package dlmm

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/maiker-fi/maiker-go/decimal_math"
	"github.com/maiker-fi/maiker-go/u128"
)

// PositionBinData describes one bin of a position: the bin's totals and
// the slice of them the position's share entitles it to.
type PositionBinData struct {
	BinID         int32
	Price         decimal.Decimal
	PricePerToken decimal.Decimal

	BinXAmount   decimal.Decimal
	BinYAmount   decimal.Decimal
	BinLiquidity decimal.Decimal

	PositionLiquidity decimal.Decimal
	PositionXAmount   decimal.Decimal
	PositionYAmount   decimal.Decimal
}

// PositionData is a position's valuation: per-bin breakdown, token
// totals, and the fees and rewards claimable right now.
type PositionData struct {
	TotalXAmount decimal.Decimal
	TotalYAmount decimal.Decimal
	BinData      []PositionBinData

	LowerBinID    int32
	UpperBinID    int32
	LastUpdatedAt int64

	FeeX    *big.Int
	FeeY    *big.Int
	Rewards [RewardSlots]*big.Int

	TotalClaimedFeeXAmount uint64
	TotalClaimedFeeYAmount uint64
}

// ProcessPosition prorates a position over the bin arrays covering its
// span and attaches its claimable fees and rewards. lowerArr must cover
// the position's lower bin id; upperArr covers the remainder and may be
// the same array when the span fits in one. now is the ledger clock's
// unix time, used for reward projection on the active bin.
//
// Any disagreement between the position's bin range and the supplied
// arrays is a hard error, never a silent skip.
func ProcessPosition(
	pair *LbPair,
	now int64,
	position *PositionV2,
	baseDecimal uint8,
	quoteDecimal uint8,
	lowerArr *BinArray,
	upperArr *BinArray,
) (*PositionData, error) {
	if position.LowerBinID > position.UpperBinID {
		return nil, fmt.Errorf("position range [%d, %d]: %w",
			position.LowerBinID, position.UpperBinID, ErrInvalidBinID)
	}
	if position.Width() > MaxBinPerPosition {
		return nil, fmt.Errorf("position spans %d bins: %w", position.Width(), ErrInvalidBinID)
	}
	if lowerArr == nil || upperArr == nil {
		return nil, fmt.Errorf("position %d..%d: missing bin array: %w",
			position.LowerBinID, position.UpperBinID, ErrBinRangeMismatch)
	}
	if !lowerArr.LbPair.Equals(position.LbPair) || !upperArr.LbPair.Equals(position.LbPair) {
		return nil, fmt.Errorf("bin array pair does not match position pair: %w", ErrBinRangeMismatch)
	}

	data := &PositionData{
		LowerBinID:             position.LowerBinID,
		UpperBinID:             position.UpperBinID,
		LastUpdatedAt:          position.LastUpdatedAt,
		TotalClaimedFeeXAmount: uint64(position.TotalClaimedFeeXAmount),
		TotalClaimedFeeYAmount: uint64(position.TotalClaimedFeeYAmount),
		BinData:                make([]PositionBinData, 0, position.Width()),
	}

	for binID := position.LowerBinID; binID <= position.UpperBinID; binID++ {
		bin, layout, err := binAt(binID, lowerArr, upperArr)
		if err != nil {
			return nil, err
		}

		price, err := PriceOfBin(binID, pair.BinStep)
		if err != nil {
			return nil, err
		}

		idx := binID - position.LowerBinID

		// A position's shares carry the full 2^ScaleOffset scale; bring
		// them into the supply's fixed-point domain before prorating.
		shareDec := decimal_math.Rsh(
			u128.ToDecimal(position.LiquidityShares[idx]),
			ScaleOffset-layout.SupplyScaleShift(),
		)
		supplyDec := u128.ToDecimal(bin.LiquiditySupply)
		binXDec := decimal.NewFromUint64(uint64(bin.AmountX))
		binYDec := decimal.NewFromUint64(uint64(bin.AmountY))

		var posX, posY decimal.Decimal
		if !supplyDec.IsZero() {
			posX = shareDec.Mul(binXDec).Div(supplyDec)
			posY = shareDec.Mul(binYDec).Div(supplyDec)
		}

		data.BinData = append(data.BinData, PositionBinData{
			BinID:             binID,
			Price:             price,
			PricePerToken:     PricePerToken(price, baseDecimal, quoteDecimal),
			BinXAmount:        binXDec,
			BinYAmount:        binYDec,
			BinLiquidity:      supplyDec,
			PositionLiquidity: shareDec,
			PositionXAmount:   posX,
			PositionYAmount:   posY,
		})

		data.TotalXAmount = data.TotalXAmount.Add(posX)
		data.TotalYAmount = data.TotalYAmount.Add(posY)
	}

	feeX, feeY, err := ClaimableSwapFee(position, lowerArr, upperArr)
	if err != nil {
		return nil, err
	}
	data.FeeX = feeX
	data.FeeY = feeY

	rewards, err := ClaimableRewards(position, pair, lowerArr, upperArr, now)
	if err != nil {
		return nil, err
	}
	data.Rewards = rewards

	return data, nil
}

// binAt locates binID in one of the two arrays covering a position.
func binAt(binID int32, lowerArr, upperArr *BinArray) (*Bin, Layout, error) {
	switch {
	case lowerArr.Contains(binID):
		return &lowerArr.Bins[binID-lowerArr.LowerBinID()], lowerArr.Layout(), nil
	case upperArr.Contains(binID):
		return &upperArr.Bins[binID-upperArr.LowerBinID()], upperArr.Layout(), nil
	default:
		return nil, 0, fmt.Errorf("bin %d not covered by arrays %d and %d: %w",
			binID, lowerArr.Index, upperArr.Index, ErrBinRangeMismatch)
	}
}
