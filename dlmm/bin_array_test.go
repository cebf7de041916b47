package dlmm

import (
	"bytes"
	"testing"

	binary "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	solanago "github.com/maiker-fi/maiker-go/solana"
	"github.com/maiker-fi/maiker-go/u128"
)

func TestBinIDToBinArrayIndex(t *testing.T) {
	cases := []struct {
		binID int32
		index int64
	}{
		{0, 0},
		{69, 0},
		{70, 1},
		{139, 1},
		{140, 2},
		{-1, -1},
		{-70, -1},
		{-71, -2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.index, BinIDToBinArrayIndex(tc.binID), "binID %d", tc.binID)
	}
}

func TestBinArrayRange(t *testing.T) {
	lower, upper := BinArrayRange(0)
	assert.Equal(t, int32(0), lower)
	assert.Equal(t, int32(69), upper)

	lower, upper = BinArrayRange(-1)
	assert.Equal(t, int32(-70), lower)
	assert.Equal(t, int32(-1), upper)
}

func TestBinArrayBinLookup(t *testing.T) {
	arr := &BinArray{Index: 1, Version: 1}
	arr.Bins[0].AmountX = 99

	bin, err := arr.Bin(70)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), uint64(bin.AmountX))

	_, err = arr.Bin(69)
	assert.ErrorIs(t, err, ErrInvalidBinID)
	_, err = arr.Bin(140)
	assert.ErrorIs(t, err, ErrInvalidBinID)
}

func TestBinArrayTotalAmounts(t *testing.T) {
	arr := &BinArray{Index: 0, Version: 1}
	arr.Bins[3].AmountX = 100
	arr.Bins[7].AmountX = 250
	arr.Bins[7].AmountY = 4000

	totalX, totalY := arr.TotalAmounts()
	assert.Equal(t, int64(350), totalX.Int64())
	assert.Equal(t, int64(4000), totalY.Int64())
}

func encodeAccount(t *testing.T, name string, v interface{}) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	buf.Write(solanago.Discriminator(name))
	require.NoError(t, binary.NewBinEncoder(buf).Encode(v))
	return buf.Bytes()
}

func TestParseBinArrayRoundsThroughWire(t *testing.T) {
	arr := &BinArray{Index: -2, Version: 1, LbPair: testPairKey()}
	arr.Bins[12].AmountX = 777
	arr.Bins[12].LiquiditySupply = u128.GenUint128FromString("36893488147419103732")

	decoded, err := ParseBinArray(encodeAccount(t, AccountKeyBinArray, arr))
	require.NoError(t, err)

	assert.Equal(t, int64(-2), decoded.Index)
	assert.Equal(t, int32(-140), decoded.LowerBinID())
	assert.Equal(t, uint64(777), uint64(decoded.Bins[12].AmountX))
	assert.Equal(t, "36893488147419103732", decoded.Bins[12].LiquiditySupply.BigInt().String())
}

func TestParseBinArrayUndersized(t *testing.T) {
	_, err := ParseBinArray([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrDataTooShort)
}

func TestParseBinArrayWrongDiscriminator(t *testing.T) {
	arr := &BinArray{Index: 0, Version: 1}
	data := encodeAccount(t, AccountKeyPositionV2, arr)

	_, err := ParseBinArray(data)
	assert.ErrorIs(t, err, ErrDiscriminatorMismatch)
}

func TestParseBinArrayTruncatedBody(t *testing.T) {
	arr := &BinArray{Index: 0, Version: 1}
	data := encodeAccount(t, AccountKeyBinArray, arr)

	_, err := ParseBinArray(data[:len(data)/2])
	assert.Error(t, err)
}

func TestParseBinArrayUnknownVersion(t *testing.T) {
	arr := &BinArray{Index: 0, Version: 9}
	data := encodeAccount(t, AccountKeyBinArray, arr)

	_, err := ParseBinArray(data)
	assert.ErrorIs(t, err, ErrUnknownLayoutVersion)
}

func TestLayoutSupplyScaleShift(t *testing.T) {
	assert.Equal(t, uint(0), LayoutV0.SupplyScaleShift())
	assert.Equal(t, uint(ScaleOffset), LayoutV1.SupplyScaleShift())
}
