package dlmm

import "math/big"

// MulShr multiplies two values and shifts the product right by shift
// bits, flooring. It is the Q64.64 "accumulator times share" primitive.
func MulShr(x, y *big.Int, shift uint) *big.Int {
	product := new(big.Int).Mul(x, y)
	return product.Rsh(product, shift)
}
