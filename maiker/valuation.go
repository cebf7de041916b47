package maiker

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/maiker-fi/maiker-go/dlmm"
	solanago "github.com/maiker-fi/maiker-go/solana"
)

// Value computes the strategy's worth from the snapshot. Pure: it
// touches no network and no clock beyond what the snapshot carries.
//
// Position amounts include claimable swap fees. The strategy's Y total
// is converted to X terms at the first position's pool price; every
// position of a strategy sits in the same pool in the current program
// design. With no positions there is no price reference, so the Y
// balance is reported unconverted and the total is the X balance alone.
func (s *Snapshot) Value() (*StrategyValue, error) {
	xBalance := decimal.NewFromUint64(s.XVaultBalance)
	yBalance := decimal.NewFromUint64(s.YVaultBalance)

	if s.StrategyConfig.PositionCount == 0 {
		return &StrategyValue{
			XTokenAmount:   xBalance,
			YTokenAmount:   yBalance,
			YTokenValueInX: decimal.Zero,
			TotalValue:     xBalance,
			PositionValues: []PositionValue{},
		}, nil
	}

	if len(s.Positions) != int(s.StrategyConfig.PositionCount) {
		return nil, fmt.Errorf("have %d of %d positions: %w",
			len(s.Positions), s.StrategyConfig.PositionCount, ErrMissingPositionData)
	}
	if s.Clock == nil {
		return nil, fmt.Errorf("snapshot carries no clock: %w", solanago.ErrClockUnavailable)
	}

	positionValues := make([]PositionValue, 0, len(s.Positions))
	var positionsX, positionsY decimal.Decimal
	var firstPrice decimal.Decimal

	for i, info := range s.Positions {
		data, err := dlmm.ProcessPosition(
			info.Pair,
			s.Clock.UnixTimestamp,
			info.Position,
			s.XMint.Decimals,
			s.YMint.Decimals,
			info.LowerBinArray,
			info.UpperBinArray,
		)
		if err != nil {
			return nil, fmt.Errorf("position %s: %w", info.Address, err)
		}
		info.Data = data

		price, err := dlmm.PriceOfBin(info.Pair.ActiveID, info.Pair.BinStep)
		if err != nil {
			return nil, fmt.Errorf("position %s: %w", info.Address, err)
		}
		if i == 0 {
			firstPrice = price
		}

		xAmount := data.TotalXAmount.Add(decimal.NewFromBigInt(data.FeeX, 0))
		yAmount := data.TotalYAmount.Add(decimal.NewFromBigInt(data.FeeY, 0))

		yValueInX := decimal.Zero
		if !yAmount.IsZero() {
			yValueInX = yAmount.Div(price)
		}

		positionValues = append(positionValues, PositionValue{
			Address:    info.Address,
			XAmount:    xAmount,
			YAmount:    yAmount,
			YValueInX:  yValueInX,
			TotalValue: xAmount.Add(yValueInX),
		})

		positionsX = positionsX.Add(xAmount)
		positionsY = positionsY.Add(yAmount)
	}

	totalX := xBalance.Add(positionsX)
	totalY := yBalance.Add(positionsY)

	yValueInX := decimal.Zero
	if !totalY.IsZero() {
		yValueInX = totalY.Div(firstPrice)
	}

	return &StrategyValue{
		XTokenAmount:   totalX,
		YTokenAmount:   totalY,
		YTokenValueInX: yValueInX,
		TotalValue:     totalX.Add(yValueInX),
		PositionValues: positionValues,
	}, nil
}

// StrategyValue is a convenience wrapper that snapshots and values a
// strategy in one call.
func (c *Client) StrategyValue(ctx context.Context, strategy solana.PublicKey) (*StrategyValue, error) {
	snap, err := c.Snapshot(ctx, strategy)
	if err != nil {
		return nil, err
	}
	return snap.Value()
}
