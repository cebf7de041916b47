package maiker

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// ShareValue returns the value of one share unit in asset X terms.
// A supply of zero is treated as one so an empty vault values to zero
// instead of dividing by zero.
func ShareValue(totalValue decimal.Decimal, strategyShares uint64) decimal.Decimal {
	if strategyShares == 0 {
		strategyShares = 1
	}
	return totalValue.Div(decimal.NewFromUint64(strategyShares))
}

// SharesForDeposit returns how many share units a deposit of
// depositValue buys at the current share value, floored.
func SharesForDeposit(depositValue, shareValue decimal.Decimal) decimal.Decimal {
	if shareValue.IsZero() {
		return decimal.Zero
	}
	return depositValue.Div(shareValue).Floor()
}

// WithdrawalAmount returns the asset-X amount shares redeem for at the
// current share value, floored.
func WithdrawalAmount(shares uint64, shareValue decimal.Decimal) decimal.Decimal {
	return decimal.NewFromUint64(shares).Mul(shareValue).Floor()
}

// UserValue returns a user's holdings in asset X terms. Shares are
// scaled by SharePrecision, so the product is scaled back down.
func UserValue(shares uint64, shareValue decimal.Decimal) decimal.Decimal {
	return decimal.NewFromUint64(shares).
		Mul(shareValue).
		Div(decimal.NewFromInt(SharePrecision))
}

// UserPosition fetches a user's position in a strategy and values it
// against the snapshot. Returns ErrAccountNotFound when the user holds
// no position.
func (c *Client) UserPosition(ctx context.Context, snap *Snapshot, user solana.PublicKey) (*UserPositionInfo, error) {
	address, err := DeriveUserPosition(c.programID, user, snap.Strategy)
	if err != nil {
		return nil, err
	}

	data, err := c.fetchAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("user position %s: %w", address, ErrAccountNotFound)
	}

	userPosition, err := ParseUserPosition(data)
	if err != nil {
		return nil, err
	}

	value, err := snap.Value()
	if err != nil {
		return nil, err
	}
	shareValue := ShareValue(value.TotalValue, uint64(snap.StrategyConfig.StrategyShares))

	return &UserPositionInfo{
		Address:             address,
		User:                userPosition.User,
		Strategy:            userPosition.Strategy,
		Shares:              uint64(userPosition.StrategyShare),
		ShareValue:          shareValue,
		Value:               UserValue(uint64(userPosition.StrategyShare), shareValue),
		LastShareValue:      uint64(userPosition.LastShareValue),
		LastUpdateTimestamp: userPosition.LastUpdateTimestamp,
	}, nil
}
