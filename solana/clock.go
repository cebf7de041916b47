package solana

import (
	"context"
	"errors"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ErrClockUnavailable is returned when the clock sysvar cannot be read.
// Callers must not fall back to wall clock; time-dependent results have
// to agree with the ledger.
var ErrClockUnavailable = errors.New("clock sysvar unavailable")

// Clock mirrors the clock sysvar account. UnixTimestamp is the ledger's
// notion of now and must be used instead of wall clock wherever a
// computation has to agree with on-chain state.
type Clock struct {
	Slot                uint64
	EpochStartTimestamp int64
	Epoch               uint64
	LeaderScheduleEpoch uint64
	UnixTimestamp       int64
}

func ParseClock(data []byte) (*Clock, error) {
	clock := &Clock{}
	if err := binary.NewBinDecoder(data).Decode(clock); err != nil {
		return nil, fmt.Errorf("decode clock sysvar: %w", err)
	}
	return clock, nil
}

func GetClock(ctx context.Context, rpcClient *rpc.Client) (*Clock, error) {
	out, err := GetAccountInfo(ctx, rpcClient, solana.SysVarClockPubkey)
	if err != nil {
		return nil, fmt.Errorf("fetch clock sysvar: %w", err)
	}
	if out == nil || out.Value == nil {
		return nil, ErrClockUnavailable
	}
	return ParseClock(out.Value.Data.GetBinary())
}
