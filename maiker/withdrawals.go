package maiker

import (
	"context"
	"fmt"
	"sort"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	solanago "github.com/maiker-fi/maiker-go/solana"
)

// pendingWithdrawalStrategyOffset is where the strategy pubkey sits in
// a PendingWithdrawal account: discriminator then user.
const pendingWithdrawalStrategyOffset = 8 + 32

func newPendingWithdrawalInfo(address solana.PublicKey, acc *PendingWithdrawal, now int64) PendingWithdrawalInfo {
	return PendingWithdrawalInfo{
		Address:             address,
		User:                acc.User,
		Strategy:            acc.Strategy,
		SharesAmount:        uint64(acc.SharesAmount),
		FullSharesAmount:    uint64(acc.FullSharesAmount),
		TokenAmount:         uint64(acc.TokenAmount),
		InitiationTimestamp: acc.InitiationTimestamp,
		AvailableTimestamp:  acc.AvailableTimestamp,
		IsReady:             now >= acc.AvailableTimestamp,
	}
}

// decodePendingWithdrawals turns the accounts of a program scan into
// withdrawal infos. A record that fails to decode is logged and
// skipped; it only affects display of that one withdrawal, unlike
// position data which is fatal to a valuation.
func decodePendingWithdrawals(accounts rpc.GetProgramAccountsResult, now int64, logger *zap.Logger) []PendingWithdrawalInfo {
	withdrawals := make([]PendingWithdrawalInfo, 0, len(accounts))
	for _, account := range accounts {
		acc, err := ParsePendingWithdrawal(account.Account.Data.GetBinary())
		if err != nil {
			logger.Warn("skipping undecodable pending withdrawal",
				zap.Stringer("address", account.Pubkey),
				zap.Error(err),
			)
			continue
		}
		withdrawals = append(withdrawals, newPendingWithdrawalInfo(account.Pubkey, acc, now))
	}
	return withdrawals
}

// PendingWithdrawals lists every pending withdrawal of a strategy.
// Readiness is judged against the ledger clock.
func (c *Client) PendingWithdrawals(ctx context.Context, strategy solana.PublicKey) ([]PendingWithdrawalInfo, error) {
	clock, err := solanago.GetClock(ctx, c.rpcClient)
	if err != nil {
		return nil, err
	}

	opts := solanago.GenProgramAccountFilter(AccountKeyPendingWithdrawal, strategy, pendingWithdrawalStrategyOffset)
	accounts, err := c.rpcClient.GetProgramAccountsWithOpts(ctx, c.programID, opts)
	if err != nil {
		return nil, fmt.Errorf("scan pending withdrawals for %s: %w", strategy, err)
	}

	return decodePendingWithdrawals(accounts, clock.UnixTimestamp, c.logger), nil
}

// PendingWithdrawalFor returns a single user's pending withdrawal, or
// ErrAccountNotFound when none exists.
func (c *Client) PendingWithdrawalFor(ctx context.Context, user, strategy solana.PublicKey) (*PendingWithdrawalInfo, error) {
	address, err := DerivePendingWithdrawal(c.programID, user, strategy)
	if err != nil {
		return nil, err
	}

	clock, err := solanago.GetClock(ctx, c.rpcClient)
	if err != nil {
		return nil, err
	}

	data, err := c.fetchAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("pending withdrawal %s: %w", address, ErrAccountNotFound)
	}

	acc, err := ParsePendingWithdrawal(data)
	if err != nil {
		return nil, err
	}

	info := newPendingWithdrawalInfo(address, acc, clock.UnixTimestamp)
	return &info, nil
}

// GroupWithdrawalWindows buckets withdrawals by their exact unlock
// timestamp; the timelock interval is vault wide, so every withdrawal
// initiated in the same interval shares one timestamp. Windows come
// back sorted by unlock time, earliest first.
func GroupWithdrawalWindows(withdrawals []PendingWithdrawalInfo, now int64) []WithdrawalWindow {
	byTimestamp := make(map[int64][]PendingWithdrawalInfo)
	for _, withdrawal := range withdrawals {
		byTimestamp[withdrawal.AvailableTimestamp] = append(byTimestamp[withdrawal.AvailableTimestamp], withdrawal)
	}

	windows := make([]WithdrawalWindow, 0, len(byTimestamp))
	for timestamp, group := range byTimestamp {
		window := WithdrawalWindow{
			AvailableTimestamp: timestamp,
			IsReady:            now >= timestamp,
			Withdrawals:        group,
		}
		for _, withdrawal := range group {
			window.TotalShares += withdrawal.SharesAmount
			window.TotalTokens += withdrawal.TokenAmount
		}
		windows = append(windows, window)
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].AvailableTimestamp < windows[j].AvailableTimestamp
	})
	return windows
}

// WithdrawalWindows lists a strategy's pending withdrawals grouped by
// unlock time.
func (c *Client) WithdrawalWindows(ctx context.Context, strategy solana.PublicKey) ([]WithdrawalWindow, error) {
	clock, err := solanago.GetClock(ctx, c.rpcClient)
	if err != nil {
		return nil, err
	}
	withdrawals, err := c.PendingWithdrawals(ctx, strategy)
	if err != nil {
		return nil, err
	}
	return GroupWithdrawalWindows(withdrawals, clock.UnixTimestamp), nil
}
