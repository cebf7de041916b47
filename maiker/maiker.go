package maiker

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/maiker-fi/maiker-go/dlmm"
	solanago "github.com/maiker-fi/maiker-go/solana"
)

// Client reads and values maiker strategies. It never mutates on-chain
// state; every method is a read followed by client-side accounting.
type Client struct {
	rpcClient *rpc.Client
	logger    *zap.Logger

	programID     solana.PublicKey
	dlmmProgramID solana.PublicKey
}

func NewClient(
	rpcClient *rpc.Client,
	opts ...Option,
) *Client {
	c := &Client{
		rpcClient:     rpcClient,
		logger:        zap.NewNop(),
		programID:     ProgramID,
		dlmmProgramID: dlmm.ProgramID,
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

// fetchAccountData returns an account's raw data, or nil when the
// account does not exist.
func (c *Client) fetchAccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	out, err := solanago.GetAccountInfo(ctx, c.rpcClient, address)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", address, err)
	}
	if out == nil || out.Value == nil {
		return nil, nil
	}
	return out.Value.Data.GetBinary(), nil
}

type Option func(*Client)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithProgramID overrides the maiker program address, for localnet or
// forked deployments.
func WithProgramID(programID solana.PublicKey) Option {
	return func(c *Client) {
		c.programID = programID
	}
}

// WithDlmmProgramID overrides the DLMM program address.
func WithDlmmProgramID(programID solana.PublicKey) Option {
	return func(c *Client) {
		c.dlmmProgramID = programID
	}
}
