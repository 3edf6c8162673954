package number

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntTraits(t *testing.T) {
	assert.Equal(t, "int8", Int[int8]{}.Name())
	assert.Equal(t, 3, Int[int8]{}.Precision())
	assert.Equal(t, 5, Int[int16]{}.Precision())
	assert.Equal(t, 10, Int[int32]{}.Precision())
	assert.Equal(t, 19, Int[int64]{}.Precision())

	lowest, highest := Int[int16]{}.Limits()
	assert.Equal(t, int16(math.MinInt16), lowest)
	assert.Equal(t, int16(math.MaxInt16), highest)

	v, err := Int[int8]{}.Parse("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v)

	_, err = Int[int8]{}.Parse("128")
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Int[int8]{}.Parse("1.5")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestUintTraits(t *testing.T) {
	assert.Equal(t, 20, Uint[uint64]{}.Precision())
	assert.Equal(t, 3, Uint[uint8]{}.Precision())

	_, highest := Uint[uint8]{}.Limits()
	assert.Equal(t, uint8(255), highest)

	_, err := Uint[uint]{}.Parse("-1")
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, "18446744073709551615", Uint[uint64]{}.Format(math.MaxUint64))
}

func TestFloatTraits(t *testing.T) {
	assert.Equal(t, 15, Float[float64]{}.Precision())
	assert.Equal(t, 7, Float[float32]{}.Precision())
	assert.Equal(t, "float32", Float[float32]{}.Name())
	assert.False(t, Float[float64]{}.Integer())

	_, highest := Float[float64]{}.Limits()
	assert.Equal(t, 999_999_999_999_999.0, highest)

	assert.Equal(t, "0.1", Float[float32]{}.Format(0.1))
	assert.Equal(t, "1234567.5", Float[float64]{}.Format(1234567.5))
}

func TestDecimalTraits(t *testing.T) {
	d := Decimal{}
	_, highest := d.Limits()
	assert.Equal(t, 38, len(highest.String()))
	assert.Equal(t, 38, d.Precision())

	v, err := d.Parse("-12.50")
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.RequireFromString("-12.5")))
	assert.Equal(t, -1, d.Compare(v, d.Zero()))
}

func TestValueConversion(t *testing.T) {
	v, err := Value[int](Int[int]{}, MustParse("-42.00"))
	require.NoError(t, err)
	assert.Equal(t, -42, v)

	n := FromValue[float64](Float[float64]{}, -0.25)
	assert.Equal(t, "-0.25", n.String())
}
