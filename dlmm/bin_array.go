package dlmm

import (
	"fmt"
	"math/big"
)

// BinIDToBinArrayIndex maps a bin id to the index of the array holding
// it. Floor division, so negative bin ids land in negative indexes.
func BinIDToBinArrayIndex(binID int32) int64 {
	q := int64(binID) / MaxBinPerArray
	r := int64(binID) % MaxBinPerArray
	if binID < 0 && r != 0 {
		q--
	}
	return q
}

// BinArrayRange returns the first and last bin id covered by the array
// at index.
func BinArrayRange(index int64) (lower, upper int32) {
	lower = int32(index * MaxBinPerArray)
	upper = lower + MaxBinPerArray - 1
	return lower, upper
}

// LowerBinID returns the first bin id the array covers.
func (ba *BinArray) LowerBinID() int32 {
	lower, _ := BinArrayRange(ba.Index)
	return lower
}

// UpperBinID returns the last bin id the array covers.
func (ba *BinArray) UpperBinID() int32 {
	_, upper := BinArrayRange(ba.Index)
	return upper
}

// Contains reports whether binID falls inside the array's range.
func (ba *BinArray) Contains(binID int32) bool {
	return binID >= ba.LowerBinID() && binID <= ba.UpperBinID()
}

// Bin returns the bin for binID, or ErrInvalidBinID when the array does
// not cover it.
func (ba *BinArray) Bin(binID int32) (*Bin, error) {
	if !ba.Contains(binID) {
		return nil, fmt.Errorf("bin %d not in array %d: %w", binID, ba.Index, ErrInvalidBinID)
	}
	return &ba.Bins[binID-ba.LowerBinID()], nil
}

// Layout resolves the array's version into a Layout. ParseBinArray has
// already validated the version, so this cannot fail on a parsed array.
func (ba *BinArray) Layout() Layout {
	layout, _ := resolveLayout(ba.Version)
	return layout
}

// TotalAmounts sums the raw X and Y amounts over every bin in the
// array. Useful as a cross check against the pool reserves.
func (ba *BinArray) TotalAmounts() (amountX, amountY *big.Int) {
	amountX = new(big.Int)
	amountY = new(big.Int)
	var x, y big.Int
	for i := range ba.Bins {
		amountX.Add(amountX, x.SetUint64(uint64(ba.Bins[i].AmountX)))
		amountY.Add(amountY, y.SetUint64(uint64(ba.Bins[i].AmountY)))
	}
	return amountX, amountY
}
