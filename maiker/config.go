package maiker

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// GlobalConfig fetches the program's singleton config.
func (c *Client) GlobalConfig(ctx context.Context) (*GlobalConfig, error) {
	address, err := DeriveGlobalConfig(c.programID)
	if err != nil {
		return nil, err
	}

	data, err := c.fetchAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("global config %s: %w", address, ErrAccountNotFound)
	}
	return ParseGlobalConfig(data)
}

// Strategy fetches and decodes a strategy account.
func (c *Client) Strategy(ctx context.Context, strategy solana.PublicKey) (*StrategyConfig, error) {
	data, err := c.fetchAccountData(ctx, strategy)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("strategy %s: %w", strategy, ErrAccountNotFound)
	}
	return ParseStrategyConfig(data)
}
