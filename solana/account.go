package solana

import (
	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

type AccountState uint8

const (
	AccountStateUninitialized AccountState = 0
	AccountStateInitialized   AccountState = 1
	AccountStateFrozen        AccountState = 2
)

// TokenAccount is a decoded SPL token account. The strategy vaults are
// plain token accounts owned by the strategy PDA.
type TokenAccount struct {
	// Mint associated with the account
	Mint solana.PublicKey

	// Owner of the account
	Owner solana.PublicKey

	// Number of tokens the account holds
	Amount uint64

	IsInitialized bool
	IsFrozen      bool
	IsNative      bool
}

// tokenAccountLayout https://github.com/solana-labs/solana-program-library/blob/d72289c79a04411c69a8bf1054f7156b6196f9b3/token/js/src/state/account.ts#L69
type tokenAccountLayout struct {
	Mint                 solana.PublicKey
	Owner                solana.PublicKey
	Amount               uint64
	DelegateOption       uint32
	Delegate             *solana.PublicKey
	State                uint8
	IsNativeOption       uint32
	IsNative             *uint64
	DelegatedAmount      uint64
	CloseAuthorityOption uint32
	CloseAuthority       *solana.PublicKey
}

type AccountLayout struct {
}

func (l *AccountLayout) Decode(data []byte) (*TokenAccount, error) {
	rawAccount := &tokenAccountLayout{}
	if err := binary.NewBinDecoder(data).Decode(rawAccount); err != nil {
		return nil, err
	}
	return &TokenAccount{
		Mint:          rawAccount.Mint,
		Owner:         rawAccount.Owner,
		Amount:        rawAccount.Amount,
		IsInitialized: AccountState(rawAccount.State) != AccountStateUninitialized,
		IsFrozen:      AccountState(rawAccount.State) == AccountStateFrozen,
		IsNative:      rawAccount.IsNativeOption > 0,
	}, nil
}

// Token represents a token mint with its owning program.
type Token struct {
	token.Mint
	// Owner account of the token
	Owner solana.PublicKey
}

// TokenLayout provides methods for decoding mint data
type TokenLayout struct {
}

func (l *TokenLayout) Decode(data []byte) (*Token, error) {
	mint := token.Mint{}

	if err := mint.Decode(data); err != nil {
		return nil, err
	}
	return &Token{Mint: mint}, nil
}
