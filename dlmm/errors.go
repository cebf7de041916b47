package dlmm

import "errors"

var (
	// ErrDataTooShort is returned when an account's raw data is shorter
	// than its discriminator.
	ErrDataTooShort = errors.New("account data too short")

	// ErrDiscriminatorMismatch is returned when raw account data does not
	// carry the expected anchor discriminator.
	ErrDiscriminatorMismatch = errors.New("account discriminator mismatch")

	// ErrUnknownLayoutVersion is returned for a BinArray version this
	// package does not know how to interpret.
	ErrUnknownLayoutVersion = errors.New("unknown bin array layout version")

	// ErrInvalidBinID is returned when a bin id falls outside
	// [MinBinID, MaxBinID] or outside the arrays supplied for it.
	ErrInvalidBinID = errors.New("invalid bin id")

	// ErrBinRangeMismatch is returned when a position's bin span and the
	// supplied bin arrays disagree about which bin is which.
	ErrBinRangeMismatch = errors.New("bin id mismatch between position and bin arrays")
)
