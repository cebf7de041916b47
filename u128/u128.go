package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
	"github.com/shopspring/decimal"
)

type Uint128 binary.Uint128

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	} else if i.Sign() < 0 {
		return errors.New("value cannot be negative")
	} else if i.BitLen() > 128 {
		return errors.New("value overflows Uint128")
	}
	u.Lo = i.Uint64()
	u.Hi = i.Rsh(i, 64).Uint64()
	return nil
}

func GenUint128FromString(num string) binary.Uint128 {
	u128 := binary.NewUint128LittleEndian()
	if _, err := fmt.Sscan(num, (*Uint128)(u128)); err != nil {
		panic(err)
	}
	return *u128
}

// FromBig converts a non-negative big integer into a Uint128. The value
// must fit in 128 bits.
func FromBig(i *big.Int) binary.Uint128 {
	if i.Sign() < 0 || i.BitLen() > 128 {
		panic("value out of Uint128 range")
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	return binary.Uint128{
		Lo: new(big.Int).And(i, mask).Uint64(),
		Hi: new(big.Int).Rsh(i, 64).Uint64(),
	}
}

// ToBig converts a Uint128 into a big integer.
func ToBig(u binary.Uint128) *big.Int {
	out := new(big.Int).SetUint64(u.Hi)
	out.Lsh(out, 64)
	return out.Or(out, new(big.Int).SetUint64(u.Lo))
}

// ToDecimal converts a Uint128 into an integral decimal.
func ToDecimal(u binary.Uint128) decimal.Decimal {
	return decimal.NewFromBigInt(ToBig(u), 0)
}
