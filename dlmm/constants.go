package dlmm

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// ProgramID is the Meteora DLMM (LB CLMM) program address.
var ProgramID = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")

// Account key constants for the DLMM account types decoded by this package
var (
	AccountKeyLbPair     = "LbPair"
	AccountKeyBinArray   = "BinArray"
	AccountKeyPositionV2 = "PositionV2"
)

const (
	// MaxBinPerArray is the number of bins held by one BinArray account.
	MaxBinPerArray = 70

	// MaxBinPerPosition bounds a position's span; together with
	// MaxBinPerArray it guarantees a position covers at most two arrays.
	MaxBinPerPosition = 70

	// BasisPointMax converts a bin step to a price increment.
	BasisPointMax = 10_000

	// ScaleOffset is the Q64.64 fixed-point shift used by the per-token
	// fee and reward accumulators.
	ScaleOffset = 64

	// RewardRateDivisor matches the time quantization of RewardInfo.RewardRate
	// on chain. Reward projection divides elapsed seconds by it.
	RewardRateDivisor = 15

	// RewardSlots is the number of independent reward mints per pool.
	RewardSlots = 2

	// MinBinID and MaxBinID bound valid bin ids for any bin step.
	MinBinID = -443_636
	MaxBinID = 443_636
)

// Scale is 2^ScaleOffset as a big integer; the accumulator denominators
// do not fit in uint64.
var Scale = new(big.Int).Lsh(big.NewInt(1), ScaleOffset)
