package dlmm

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DeriveBinArray derives the address of a pair's bin array at index.
func DeriveBinArray(programID, lbPair solana.PublicKey, index int64) (solana.PublicKey, error) {
	indexBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(indexBytes, uint64(index))

	address, _, err := solana.FindProgramAddress(
		[][]byte{[]byte("bin_array"), lbPair.Bytes(), indexBytes},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive bin array %d for %s: %w", index, lbPair, err)
	}
	return address, nil
}

// PositionBinArrays returns the addresses of the one or two bin arrays
// covering a position's span.
func PositionBinArrays(programID solana.PublicKey, position *PositionV2) (lower, upper solana.PublicKey, err error) {
	lowerIdx := BinIDToBinArrayIndex(position.LowerBinID)
	upperIdx := BinIDToBinArrayIndex(position.UpperBinID)

	lower, err = DeriveBinArray(programID, position.LbPair, lowerIdx)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	if upperIdx == lowerIdx {
		return lower, lower, nil
	}
	upper, err = DeriveBinArray(programID, position.LbPair, upperIdx)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	return lower, upper, nil
}
