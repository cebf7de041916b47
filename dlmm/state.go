package dlmm

import (
	"bytes"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	solanago "github.com/maiker-fi/maiker-go/solana"
)

// Bin is one discrete price slot of a pool. Amounts are raw token units;
// per-token accumulators are Q64.64 fixed point.
type Bin struct {
	AmountX binary.Uint64
	AmountY binary.Uint64
	Price   binary.Uint128

	// LiquiditySupply is the proration denominator for every position
	// holding liquidity in this bin.
	LiquiditySupply binary.Uint128

	RewardPerTokenStored     [RewardSlots]binary.Uint128
	FeeAmountXPerTokenStored binary.Uint128
	FeeAmountYPerTokenStored binary.Uint128
	AmountXIn                binary.Uint128
	AmountYIn                binary.Uint128
}

// BinArray is a fixed run of MaxBinPerArray bins. Bin ids are derived
// from Index, they are not stored per bin.
type BinArray struct {
	Index   int64
	Version uint8
	Padding [7]uint8
	LbPair  solana.PublicKey
	Bins    [MaxBinPerArray]Bin
}

// RewardInfo is one of a pool's reward slots. A zero Mint marks the slot
// unused.
type RewardInfo struct {
	Mint           solana.PublicKey
	Vault          solana.PublicKey
	Funder         solana.PublicKey
	RewardDuration binary.Uint64

	// RewardDurationEnd caps reward accrual; no rewards accumulate past it.
	RewardDurationEnd binary.Uint64

	RewardRate     binary.Uint128
	LastUpdateTime binary.Uint64

	CumulativeSecondsWithEmptyLiquidityReward binary.Uint64
}

// Initialized reports whether the reward slot is funded.
func (r *RewardInfo) Initialized() bool {
	return !r.Mint.IsZero()
}

type StaticParameters struct {
	BaseFactor               uint16
	FilterPeriod             uint16
	DecayPeriod              uint16
	ReductionFactor          uint16
	VariableFeeControl       uint32
	MaxVolatilityAccumulator uint32
	MinBinID                 int32
	MaxBinID                 int32
	ProtocolShare            uint16
	BaseFeePowerFactor       uint8
	Padding                  [5]uint8
}

type VariableParameters struct {
	VolatilityAccumulator uint32
	VolatilityReference   uint32
	IndexReference        int32
	Padding               [4]uint8
	LastUpdateTimestamp   int64
	Padding1              [8]uint8
}

type ProtocolFee struct {
	AmountX binary.Uint64
	AmountY binary.Uint64
}

// LbPair is a DLMM pool account. Only a subset of the fields matters to
// valuation (ActiveID, BinStep, mints, reserves, RewardInfos) but the
// full layout is decoded so field offsets stay honest.
type LbPair struct {
	Parameters  StaticParameters
	VParameters VariableParameters
	BumpSeed    [1]uint8
	BinStepSeed [2]uint8
	PairType    uint8

	// ActiveID is the bin at the pool's current traded price.
	ActiveID int32

	// BinStep is the price increment between adjacent bins, in basis points.
	BinStep uint16

	Status                  uint8
	RequireBaseFactorSeed   uint8
	BaseFactorSeed          [2]uint8
	ActivationType          uint8
	CreatorPoolOnOffControl uint8

	TokenXMint solana.PublicKey
	TokenYMint solana.PublicKey
	ReserveX   solana.PublicKey
	ReserveY   solana.PublicKey

	ProtocolFee ProtocolFee
	Padding1    [32]uint8

	RewardInfos [RewardSlots]RewardInfo

	Oracle         solana.PublicKey
	BinArrayBitmap [16]uint64
	LastUpdatedAt  int64
	Padding2       [32]uint8

	PreActivationSwapAddress solana.PublicKey
	BaseKey                  solana.PublicKey
	ActivationPoint          binary.Uint64
	PreActivationDuration    binary.Uint64
	Padding3                 [8]uint8
	Padding4                 binary.Uint64
	Creator                  solana.PublicKey
	TokenMintXProgramFlag    uint8
	TokenMintYProgramFlag    uint8
	Reserved                 [22]uint8
}

// UserRewardInfo is a position's per-bin reward checkpoint pair.
type UserRewardInfo struct {
	RewardPerTokenCompletes [RewardSlots]binary.Uint128
	RewardPendings          [RewardSlots]binary.Uint64
}

// FeeInfo is a position's per-bin fee checkpoint pair.
type FeeInfo struct {
	FeeXPerTokenComplete binary.Uint128
	FeeYPerTokenComplete binary.Uint128
	FeeXPending          binary.Uint64
	FeeYPending          binary.Uint64
}

// PositionV2 is a DLMM position account. LiquidityShares, RewardInfos
// and FeeInfos are indexed by bin offset from LowerBinID; entries past
// the span width are zero.
type PositionV2 struct {
	LbPair solana.PublicKey
	Owner  solana.PublicKey

	// LiquidityShares are scaled by 2^ScaleOffset relative to the bin's
	// liquidity supply unit; see Layout.
	LiquidityShares [MaxBinPerPosition]binary.Uint128

	RewardInfos [MaxBinPerPosition]UserRewardInfo
	FeeInfos    [MaxBinPerPosition]FeeInfo

	LowerBinID    int32
	UpperBinID    int32
	LastUpdatedAt int64

	TotalClaimedFeeXAmount binary.Uint64
	TotalClaimedFeeYAmount binary.Uint64
	TotalClaimedRewards    [RewardSlots]binary.Uint64

	Operator         solana.PublicKey
	LockReleasePoint binary.Uint64
	Padding0         uint8
	FeeOwner         solana.PublicKey
	Reserved         [87]uint8
}

// Width returns the number of bins the position spans.
func (p *PositionV2) Width() int {
	return int(p.UpperBinID-p.LowerBinID) + 1
}

func parseAccount(name string, data []byte, out interface{}) error {
	disc := solanago.Discriminator(name)
	if len(data) < len(disc) {
		return fmt.Errorf("%s account: %w", name, ErrDataTooShort)
	}
	if !bytes.Equal(data[:len(disc)], disc) {
		return fmt.Errorf("%s account: %w", name, ErrDiscriminatorMismatch)
	}
	if err := binary.NewBinDecoder(data[len(disc):]).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func ParseLbPair(data []byte) (*LbPair, error) {
	lbPair := &LbPair{}
	if err := parseAccount(AccountKeyLbPair, data, lbPair); err != nil {
		return nil, err
	}
	return lbPair, nil
}

func ParseBinArray(data []byte) (*BinArray, error) {
	binArray := &BinArray{}
	if err := parseAccount(AccountKeyBinArray, data, binArray); err != nil {
		return nil, err
	}
	if _, err := resolveLayout(binArray.Version); err != nil {
		return nil, err
	}
	return binArray, nil
}

func ParsePositionV2(data []byte) (*PositionV2, error) {
	position := &PositionV2{}
	if err := parseAccount(AccountKeyPositionV2, data, position); err != nil {
		return nil, err
	}
	return position, nil
}
