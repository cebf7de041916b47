package maiker

import "errors"

var (
	// ErrAccountNotFound is returned when a required on-chain account does
	// not exist at the derived or supplied address.
	ErrAccountNotFound = errors.New("account not found")

	// ErrMissingPositionData is returned when a snapshot does not carry
	// data for every position the strategy lists. Valuing a strategy from
	// partial position data would silently understate it.
	ErrMissingPositionData = errors.New("missing positions data")

	// ErrDataTooShort is returned when raw account data is shorter than
	// the anchor discriminator.
	ErrDataTooShort = errors.New("account data too short")

	// ErrDiscriminatorMismatch is returned when raw account data does not
	// carry the expected anchor discriminator.
	ErrDiscriminatorMismatch = errors.New("account discriminator mismatch")
)
