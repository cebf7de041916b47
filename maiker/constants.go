package maiker

import "github.com/gagliardetto/solana-go"

// ProgramID is the maiker strategy program address.
var ProgramID = solana.MustPublicKeyFromBase58("27mwfhSgaW1BDyYHcnfRnthvrCUZefXnwawH2YYbx2xx")

// Account key constants for the program accounts decoded by this package
var (
	AccountKeyGlobalConfig      = "GlobalConfig"
	AccountKeyStrategyConfig    = "StrategyConfig"
	AccountKeyUserPosition      = "UserPosition"
	AccountKeyPendingWithdrawal = "PendingWithdrawal"
)

const (
	// SharePrecision is the fixed-point scale of strategy shares and share
	// values. One whole share is SharePrecision units.
	SharePrecision = 1_000_000

	// MaxPositions is the capacity of a strategy's position list.
	MaxPositions = 10
)
