package solana

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"golang.org/x/sync/errgroup"
)

// MaxAccountsPerFetch is the account limit the RPC interface imposes on a
// single getMultipleAccounts call.
const MaxAccountsPerFetch = 100

// Discriminator returns the 8-byte anchor account discriminator for the
// given account name.
func Discriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out[:]
}

// GenProgramAccountFilter builds getProgramAccounts options filtering by
// account discriminator and, optionally, by a pubkey at a given offset.
func GenProgramAccountFilter(key string, owner solana.PublicKey, offset uint64) *rpc.GetProgramAccountsOpts {

	opt := &rpc.GetProgramAccountsOpts{
		Commitment: rpc.CommitmentFinalized,
		Encoding:   solana.EncodingBase64,
		Filters: []rpc.RPCFilter{
			{
				Memcmp: &rpc.RPCFilterMemcmp{
					Offset: 0,
					Bytes:  Discriminator(key),
				},
			},
		},
	}
	if owner.Equals(solana.PublicKey{}) {
		return opt
	}

	opt.Filters = append(opt.Filters, rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: offset,
			Bytes:  owner[:],
		},
	})
	return opt
}

func GetAccountInfo(ctx context.Context, rpcClient *rpc.Client, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	return rpcClient.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: rpc.CommitmentFinalized})
}

func GetMultipleAccountInfo(ctx context.Context, rpcClient *rpc.Client, accounts []solana.PublicKey) (*rpc.GetMultipleAccountsResult, error) {
	return rpcClient.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{Commitment: rpc.CommitmentFinalized, Encoding: solana.EncodingBase64})
}

// ChunkedGetMultipleAccounts fetches an arbitrary number of accounts in
// chunks of MaxAccountsPerFetch, retrying each chunk on transient RPC
// failure. The result is aligned with keys; absent accounts are nil.
func ChunkedGetMultipleAccounts(ctx context.Context, rpcClient *rpc.Client, keys []solana.PublicKey) ([]*rpc.Account, error) {
	out := make([]*rpc.Account, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(keys); start += MaxAccountsPerFetch {
		end := min(start+MaxAccountsPerFetch, len(keys))
		chunk := keys[start:end]
		offset := start

		g.Go(func() error {
			policy := backoff.NewExponentialBackOff()
			policy.InitialInterval = 200 * time.Millisecond
			policy.MaxInterval = 2 * time.Second

			result, err := backoff.Retry(gctx, func() (*rpc.GetMultipleAccountsResult, error) {
				return GetMultipleAccountInfo(gctx, rpcClient, chunk)
			}, backoff.WithBackOff(policy), backoff.WithMaxTries(3))
			if err != nil {
				return fmt.Errorf("getMultipleAccounts chunk [%d:%d]: %w", offset, end, err)
			}

			copy(out[offset:end], result.Value)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
