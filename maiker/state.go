package maiker

import (
	"bytes"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	solanago "github.com/maiker-fi/maiker-go/solana"
)

// GlobalConfig holds the program-wide fee parameters.
type GlobalConfig struct {
	Admin             solana.PublicKey
	PerformanceFeeBps uint16
	WithdrawalFeeBps  uint16
	Treasury          solana.PublicKey
	Bump              uint8
}

// StrategyConfig is a vault strategy account. Positions is a fixed list;
// only the first PositionCount entries are live.
type StrategyConfig struct {
	Creator solana.PublicKey
	XMint   solana.PublicKey
	YMint   solana.PublicKey
	XVault  solana.PublicKey
	YVault  solana.PublicKey

	// StrategyShares is the total share supply, scaled by SharePrecision.
	StrategyShares binary.Uint64

	// FeeShares are shares minted to the treasury but not yet claimed.
	FeeShares binary.Uint64

	PositionCount      uint8
	Positions          [MaxPositions]solana.PublicKey
	PositionsValues    [MaxPositions]binary.Uint64
	LastPositionUpdate [MaxPositions]binary.Uint64

	LastRebalanceTime int64

	IsSwapping                bool
	SwapAmountIn              binary.Uint64
	SwapSourceMint            solana.PublicKey
	SwapDestinationMint       solana.PublicKey
	SwapInitialInAmountAdmin  binary.Uint64
	SwapInitialOutAmountAdmin binary.Uint64

	Bump uint8
}

// ActivePositions returns the live position addresses.
func (s *StrategyConfig) ActivePositions() []solana.PublicKey {
	n := int(s.PositionCount)
	if n > MaxPositions {
		n = MaxPositions
	}
	out := make([]solana.PublicKey, n)
	copy(out, s.Positions[:n])
	return out
}

// UserPosition records one user's stake in one strategy.
type UserPosition struct {
	User     solana.PublicKey
	Strategy solana.PublicKey

	// StrategyShare is the user's share balance, scaled by SharePrecision.
	StrategyShare binary.Uint64

	LastShareValue      binary.Uint64
	LastUpdateTimestamp int64
	Bump                uint8
}

// PendingWithdrawal is a withdrawal waiting out its timelock.
type PendingWithdrawal struct {
	User     solana.PublicKey
	Strategy solana.PublicKey

	// SharesAmount is what remains to redeem after the withdrawal fee.
	SharesAmount binary.Uint64

	// FullSharesAmount is the amount the user originally requested.
	FullSharesAmount binary.Uint64

	TokenAmount         binary.Uint64
	InitiationTimestamp int64
	AvailableTimestamp  int64
	Bump                uint8
}

func parseAccount(name string, data []byte, out interface{}) error {
	disc := solanago.Discriminator(name)
	if len(data) < len(disc) {
		return fmt.Errorf("%s account: %w", name, ErrDataTooShort)
	}
	if !bytes.Equal(data[:len(disc)], disc) {
		return fmt.Errorf("%s account: %w", name, ErrDiscriminatorMismatch)
	}
	if err := binary.NewBinDecoder(data[len(disc):]).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func ParseGlobalConfig(data []byte) (*GlobalConfig, error) {
	config := &GlobalConfig{}
	if err := parseAccount(AccountKeyGlobalConfig, data, config); err != nil {
		return nil, err
	}
	return config, nil
}

func ParseStrategyConfig(data []byte) (*StrategyConfig, error) {
	strategy := &StrategyConfig{}
	if err := parseAccount(AccountKeyStrategyConfig, data, strategy); err != nil {
		return nil, err
	}
	return strategy, nil
}

func ParseUserPosition(data []byte) (*UserPosition, error) {
	position := &UserPosition{}
	if err := parseAccount(AccountKeyUserPosition, data, position); err != nil {
		return nil, err
	}
	return position, nil
}

func ParsePendingWithdrawal(data []byte) (*PendingWithdrawal, error) {
	withdrawal := &PendingWithdrawal{}
	if err := parseAccount(AccountKeyPendingWithdrawal, data, withdrawal); err != nil {
		return nil, err
	}
	return withdrawal, nil
}
