package decimal_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Rsh shifts the integral part of x right by n bits, truncating any
// fractional component first.
func Rsh(x decimal.Decimal, n uint) decimal.Decimal {
	return decimal.NewFromBigInt(
		new(big.Int).Rsh(x.BigInt(), n),
		0,
	)
}
