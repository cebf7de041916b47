package maiker

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"

	solanago "github.com/maiker-fi/maiker-go/solana"
)

// TokenBalance fetches a token account's raw amount. A missing account
// reads as zero, matching how an unfunded vault should value.
func (c *Client) TokenBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	data, err := c.fetchAccountData(ctx, account)
	if err != nil {
		return 0, err
	}
	if data == nil {
		return 0, nil
	}

	layout := &solanago.AccountLayout{}
	tokenAcc, err := layout.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("decode token account %s: %w", account, err)
	}
	return tokenAcc.Amount, nil
}

// WalletBalances returns an owner's balance per mint across all of its
// token accounts, summing accounts that share a mint.
func (c *Client) WalletBalances(ctx context.Context, owner solana.PublicKey) (map[solana.PublicKey]uint64, error) {
	resp, err := c.rpcClient.GetTokenAccountsByOwner(ctx, owner, &rpc.GetTokenAccountsConfig{
		ProgramId: &solana.TokenProgramID,
	}, &rpc.GetTokenAccountsOpts{
		Encoding:   solana.EncodingJSONParsed,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return nil, fmt.Errorf("token accounts of %s: %w", owner, err)
	}

	return parseWalletBalances(resp)
}

func parseWalletBalances(resp *rpc.GetTokenAccountsResult) (map[solana.PublicKey]uint64, error) {
	balances := make(map[solana.PublicKey]uint64, len(resp.Value))
	for _, v := range resp.Value {
		mint := gjson.GetBytes(v.Account.Data.GetRawJSON(), "parsed.info.mint").String()
		amount := gjson.GetBytes(v.Account.Data.GetRawJSON(), "parsed.info.tokenAmount.amount").Uint()

		mintKey, err := solana.PublicKeyFromBase58(mint)
		if err != nil {
			return nil, fmt.Errorf("token account %s mint %q: %w", v.Pubkey, mint, err)
		}
		balances[mintKey] += amount
	}
	return balances, nil
}
