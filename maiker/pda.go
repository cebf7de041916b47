package maiker

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// PDA seed prefixes used by the program
const (
	seedGlobalConfig      = "global-config"
	seedStrategyConfig    = "strategy-config"
	seedUserPosition      = "user-position"
	seedPendingWithdrawal = "pending-withdrawal"
)

// DeriveGlobalConfig derives the program's singleton config address.
func DeriveGlobalConfig(programID solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(seedGlobalConfig)},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive global config: %w", err)
	}
	return address, nil
}

// DeriveStrategy derives a strategy address from its creator and token pair.
func DeriveStrategy(programID, creator, xMint, yMint solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(seedStrategyConfig), creator.Bytes(), xMint.Bytes(), yMint.Bytes()},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive strategy for %s: %w", creator, err)
	}
	return address, nil
}

// DeriveUserPosition derives a user's position address within a strategy.
func DeriveUserPosition(programID, user, strategy solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(seedUserPosition), user.Bytes(), strategy.Bytes()},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive user position for %s: %w", user, err)
	}
	return address, nil
}

// DerivePendingWithdrawal derives a user's pending withdrawal address
// within a strategy.
func DerivePendingWithdrawal(programID, user, strategy solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(seedPendingWithdrawal), user.Bytes(), strategy.Bytes()},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive pending withdrawal for %s: %w", user, err)
	}
	return address, nil
}
