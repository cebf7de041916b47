package dlmm

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/maiker-fi/maiker-go/decimal_math"
)

const priceFloatPrec = 256

// PriceOfBin returns the Y-per-X price of binID: (1 + binStep/10000)^binID.
// Computed by binary exponentiation over 256-bit floats, which keeps the
// result exact to well past token-amount precision for the whole valid
// bin id range.
func PriceOfBin(binID int32, binStep uint16) (decimal.Decimal, error) {
	if binID < MinBinID || binID > MaxBinID {
		return decimal.Zero, fmt.Errorf("bin id %d: %w", binID, ErrInvalidBinID)
	}

	base := new(big.Float).SetPrec(priceFloatPrec).SetInt64(BasisPointMax + int64(binStep))
	base.Quo(base, new(big.Float).SetPrec(priceFloatPrec).SetInt64(BasisPointMax))

	exp := int64(binID)
	negative := exp < 0
	if negative {
		exp = -exp
	}

	result := new(big.Float).SetPrec(priceFloatPrec).SetInt64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		exp >>= 1
	}
	if negative {
		result.Quo(new(big.Float).SetPrec(priceFloatPrec).SetInt64(1), result)
	}

	price, err := decimal.NewFromString(result.Text('f', -1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("bin %d price: %w", binID, err)
	}
	return price, nil
}

// PricePerToken adjusts a raw bin price for the mint decimals of both
// sides, yielding the human price of one whole X token in whole Y tokens.
func PricePerToken(price decimal.Decimal, baseDecimal, quoteDecimal uint8) decimal.Decimal {
	return price.Mul(decimal_math.Pow10(int(baseDecimal) - int(quoteDecimal)))
}
