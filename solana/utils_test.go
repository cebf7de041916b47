package solana

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminator(t *testing.T) {
	d := Discriminator("StrategyConfig")
	assert.Len(t, d, 8)
	assert.Equal(t, d, Discriminator("StrategyConfig"))
	assert.NotEqual(t, d, Discriminator("GlobalConfig"))
}

func TestGenProgramAccountFilter(t *testing.T) {
	owner := solana.MustPublicKeyFromBase58("5HfLhj117ucm2FoqjfcSeZMf91CuJbzxZ9BeRRpZWN6m")

	opt := GenProgramAccountFilter("PendingWithdrawal", owner, 40)
	require.Len(t, opt.Filters, 2)
	assert.Equal(t, uint64(0), opt.Filters[0].Memcmp.Offset)
	assert.Equal(t, uint64(40), opt.Filters[1].Memcmp.Offset)

	opt = GenProgramAccountFilter("PendingWithdrawal", solana.PublicKey{}, 0)
	assert.Len(t, opt.Filters, 1)
}
