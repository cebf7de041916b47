package maiker

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShareValue(t *testing.T) {
	v := ShareValue(decimal.NewFromInt(1000), 4_000_000)
	assert.Equal(t, "0.00025", v.String())
}

func TestShareValueZeroSupply(t *testing.T) {
	// avoids division by zero for an empty vault
	v := ShareValue(decimal.NewFromInt(1000), 0)
	assert.Equal(t, "1000", v.String())
}

func TestUserValue(t *testing.T) {
	// 2 whole shares at 3 X per share unit times SharePrecision
	shareValue := decimal.NewFromInt(3)
	v := UserValue(2_000_000, shareValue)
	assert.Equal(t, "6", v.String())
}

func TestSharesForDeposit(t *testing.T) {
	shareValue := decimal.RequireFromString("0.00025")

	shares := SharesForDeposit(decimal.NewFromInt(1000), shareValue)
	assert.Equal(t, "4000000", shares.String())

	// floors
	shares = SharesForDeposit(decimal.RequireFromString("1.0009"), decimal.NewFromInt(1))
	assert.Equal(t, "1", shares.String())

	shares = SharesForDeposit(decimal.NewFromInt(1000), decimal.Zero)
	assert.True(t, shares.IsZero())
}

func TestWithdrawalAmount(t *testing.T) {
	amount := WithdrawalAmount(4_000_000, decimal.RequireFromString("0.00025"))
	assert.Equal(t, "1000", amount.String())

	// floors
	amount = WithdrawalAmount(3, decimal.RequireFromString("0.5"))
	assert.Equal(t, "1", amount.String())
}
