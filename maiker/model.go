package maiker

import (
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/maiker-fi/maiker-go/dlmm"
)

// PositionInfo pairs a strategy position account with the pool and bin
// arrays needed to value it.
type PositionInfo struct {
	Address  solana.PublicKey
	Position *dlmm.PositionV2
	Pair     *dlmm.LbPair

	LowerBinArray *dlmm.BinArray
	UpperBinArray *dlmm.BinArray

	// Data is filled during valuation.
	Data *dlmm.PositionData
}

// PositionValue is one position's contribution to a strategy valuation.
// Amounts include claimable swap fees and are denominated in raw token
// units; YValueInX and TotalValue are in asset X terms.
type PositionValue struct {
	Address    solana.PublicKey
	XAmount    decimal.Decimal
	YAmount    decimal.Decimal
	YValueInX  decimal.Decimal
	TotalValue decimal.Decimal
}

// StrategyValue is a full strategy valuation in raw token units.
type StrategyValue struct {
	// XTokenAmount and YTokenAmount sum the vault balances with every
	// position's holdings.
	XTokenAmount decimal.Decimal
	YTokenAmount decimal.Decimal

	// YTokenValueInX is YTokenAmount converted at the pool price; zero
	// when the strategy holds no positions.
	YTokenValueInX decimal.Decimal

	// TotalValue is XTokenAmount + YTokenValueInX.
	TotalValue decimal.Decimal

	PositionValues []PositionValue
}

// UserPositionInfo is a user's stake valued against the current share
// value.
type UserPositionInfo struct {
	Address  solana.PublicKey
	User     solana.PublicKey
	Strategy solana.PublicKey

	// Shares is the raw share balance, scaled by SharePrecision.
	Shares uint64

	// ShareValue is the current per-share value in asset X terms.
	ShareValue decimal.Decimal

	// Value is the user's holdings in asset X terms.
	Value decimal.Decimal

	LastShareValue      uint64
	LastUpdateTimestamp int64
}

// PendingWithdrawalInfo is a decoded pending withdrawal plus its
// readiness against the ledger clock.
type PendingWithdrawalInfo struct {
	Address  solana.PublicKey
	User     solana.PublicKey
	Strategy solana.PublicKey

	SharesAmount     uint64
	FullSharesAmount uint64
	TokenAmount      uint64

	InitiationTimestamp int64
	AvailableTimestamp  int64

	IsReady bool
}

// WithdrawalWindow groups the pending withdrawals that unlock at the
// same instant.
type WithdrawalWindow struct {
	AvailableTimestamp int64

	// TotalShares and TotalTokens are exact integer sums.
	TotalShares uint64
	TotalTokens uint64

	IsReady     bool
	Withdrawals []PendingWithdrawalInfo
}
