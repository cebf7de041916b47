package maiker

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/maiker-fi/maiker-go/dlmm"
	solanago "github.com/maiker-fi/maiker-go/solana"
)

// Snapshot is one consistent read of everything a strategy valuation
// needs. It is plain data: valuation functions take it as input and
// never refetch, so staleness is under the caller's control. Build a
// fresh one per valuation pass.
type Snapshot struct {
	Strategy       solana.PublicKey
	StrategyConfig *StrategyConfig

	XMint *solanago.Token
	YMint *solanago.Token

	// XVaultBalance and YVaultBalance are the vault token accounts'
	// raw amounts.
	XVaultBalance uint64
	YVaultBalance uint64

	// Positions follows the order of the strategy's position list.
	Positions []*PositionInfo

	// Clock is the ledger clock at fetch time. Reward projection uses
	// Clock.UnixTimestamp, never the local wall clock.
	Clock *solanago.Clock
}

// Snapshot fetches a strategy and every account its valuation depends
// on: mints, vaults, positions, their pools and bin arrays, and the
// ledger clock. Accounts are fetched in as few batched calls as the
// per-request account limit allows.
func (c *Client) Snapshot(ctx context.Context, strategy solana.PublicKey) (*Snapshot, error) {
	out, err := solanago.GetAccountInfo(ctx, c.rpcClient, strategy)
	if err != nil {
		return nil, fmt.Errorf("fetch strategy %s: %w", strategy, err)
	}
	if out == nil || out.Value == nil {
		return nil, fmt.Errorf("strategy %s: %w", strategy, ErrAccountNotFound)
	}
	strategyAcc, err := ParseStrategyConfig(out.Value.Data.GetBinary())
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Strategy:       strategy,
		StrategyConfig: strategyAcc,
	}

	positionKeys := strategyAcc.ActivePositions()

	// First round: clock, mints, vaults, position accounts.
	keys := []solana.PublicKey{
		solana.SysVarClockPubkey,
		strategyAcc.XMint,
		strategyAcc.YMint,
		strategyAcc.XVault,
		strategyAcc.YVault,
	}
	keys = append(keys, positionKeys...)

	accounts, err := solanago.ChunkedGetMultipleAccounts(ctx, c.rpcClient, keys)
	if err != nil {
		return nil, err
	}

	if accounts[0] == nil {
		return nil, solanago.ErrClockUnavailable
	}
	if snap.Clock, err = solanago.ParseClock(accounts[0].Data.GetBinary()); err != nil {
		return nil, err
	}

	tokenLayout := &solanago.TokenLayout{}
	for i, name := range []string{"x mint", "y mint"} {
		acc := accounts[1+i]
		if acc == nil {
			return nil, fmt.Errorf("%s: %w", name, ErrAccountNotFound)
		}
		token, err := tokenLayout.Decode(acc.Data.GetBinary())
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if i == 0 {
			snap.XMint = token
		} else {
			snap.YMint = token
		}
	}

	accountLayout := &solanago.AccountLayout{}
	for i, name := range []string{"x vault", "y vault"} {
		acc := accounts[3+i]
		if acc == nil {
			return nil, fmt.Errorf("%s: %w", name, ErrAccountNotFound)
		}
		vault, err := accountLayout.Decode(acc.Data.GetBinary())
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if i == 0 {
			snap.XVaultBalance = vault.Amount
		} else {
			snap.YVaultBalance = vault.Amount
		}
	}

	positionAccounts := accounts[5:]
	for i, key := range positionKeys {
		if positionAccounts[i] == nil {
			return nil, fmt.Errorf("position %s: %w", key, ErrMissingPositionData)
		}
		position, err := dlmm.ParsePositionV2(positionAccounts[i].Data.GetBinary())
		if err != nil {
			return nil, fmt.Errorf("position %s: %w", key, err)
		}
		snap.Positions = append(snap.Positions, &PositionInfo{
			Address:  key,
			Position: position,
		})
	}

	if err := c.fetchPositionDeps(ctx, snap); err != nil {
		return nil, err
	}

	c.logger.Debug("strategy snapshot",
		zap.Stringer("strategy", strategy),
		zap.Int("positions", len(snap.Positions)),
		zap.Int64("clock", snap.Clock.UnixTimestamp),
	)

	return snap, nil
}

// fetchPositionDeps resolves every position's pool and bin arrays in a
// second batched round.
func (c *Client) fetchPositionDeps(ctx context.Context, snap *Snapshot) error {
	if len(snap.Positions) == 0 {
		return nil
	}

	var keys []solana.PublicKey
	index := make(map[solana.PublicKey]int)
	request := func(key solana.PublicKey) {
		if _, ok := index[key]; ok {
			return
		}
		index[key] = len(keys)
		keys = append(keys, key)
	}

	type deps struct{ pair, lower, upper solana.PublicKey }
	positionDeps := make([]deps, len(snap.Positions))

	for i, info := range snap.Positions {
		lower, upper, err := dlmm.PositionBinArrays(c.dlmmProgramID, info.Position)
		if err != nil {
			return err
		}
		positionDeps[i] = deps{pair: info.Position.LbPair, lower: lower, upper: upper}
		request(info.Position.LbPair)
		request(lower)
		request(upper)
	}

	accounts, err := solanago.ChunkedGetMultipleAccounts(ctx, c.rpcClient, keys)
	if err != nil {
		return err
	}

	pairs := make(map[solana.PublicKey]*dlmm.LbPair)
	arrays := make(map[solana.PublicKey]*dlmm.BinArray)

	for i, info := range snap.Positions {
		d := positionDeps[i]

		pair, ok := pairs[d.pair]
		if !ok {
			acc := accounts[index[d.pair]]
			if acc == nil {
				return fmt.Errorf("lb pair %s: %w", d.pair, ErrMissingPositionData)
			}
			if pair, err = dlmm.ParseLbPair(acc.Data.GetBinary()); err != nil {
				return fmt.Errorf("lb pair %s: %w", d.pair, err)
			}
			pairs[d.pair] = pair
		}
		info.Pair = pair

		for _, side := range []struct {
			key solana.PublicKey
			dst **dlmm.BinArray
		}{
			{d.lower, &info.LowerBinArray},
			{d.upper, &info.UpperBinArray},
		} {
			arr, ok := arrays[side.key]
			if !ok {
				acc := accounts[index[side.key]]
				if acc == nil {
					return fmt.Errorf("bin array %s: %w", side.key, ErrMissingPositionData)
				}
				if arr, err = dlmm.ParseBinArray(acc.Data.GetBinary()); err != nil {
					return fmt.Errorf("bin array %s: %w", side.key, err)
				}
				arrays[side.key] = arr
			}
			*side.dst = arr
		}
	}

	return nil
}
