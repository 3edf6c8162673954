package number

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsLocation(t *testing.T) {
	b := NewBounds[int](Int[int]{}, 0, 100)

	tests := []struct {
		value   int
		want    Location
		wantErr bool
	}{
		{100, Edge, false},
		{50, Body, false},
		{0, Body, false},
		{-1, Body, true},
		{101, Body, true},
	}

	for _, tt := range tests {
		loc, err := b.Location(tt.value)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrOutOfBounds, "%d", tt.value)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, loc, "%d", tt.value)
	}
}

func TestBoundsLocationNegative(t *testing.T) {
	b := NewBounds[int](Int[int]{}, -100, 0)

	loc, err := b.Location(-100)
	require.NoError(t, err)
	assert.Equal(t, Edge, loc)

	loc, err = b.Location(0)
	require.NoError(t, err)
	assert.Equal(t, Body, loc, "zero max leaves room for digits")

	single := NewBounds[int](Int[int]{}, 0, 0)
	loc, err = single.Location(0)
	require.NoError(t, err)
	assert.Equal(t, Edge, loc)
}

func TestBoundsAutovalidateStripsSeparatorAtEdge(t *testing.T) {
	b := NewBounds[int](Int[int]{}, 0, 100)

	n := MustParse("100.")
	loc, changed, err := b.Autovalidate(100, &n)
	require.NoError(t, err)
	assert.Equal(t, Edge, loc)
	assert.True(t, changed)
	assert.Equal(t, "100", n.String())

	n = MustParse("50.")
	_, changed, err = b.Autovalidate(50, &n)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "50.", n.String())
}

func TestBoundsAutocorrect(t *testing.T) {
	b := NewBounds(Decimal{}, decimal.NewFromInt(-5), decimal.NewFromInt(5))

	for _, v := range []int64{-100, -5, 0, 3, 5, 100} {
		got := b.Autocorrect(decimal.NewFromInt(v))
		assert.True(t, b.Contains(got), "%d", v)
		if b.Contains(decimal.NewFromInt(v)) {
			assert.True(t, got.Equal(decimal.NewFromInt(v)), "in-range %d is unchanged", v)
		}
	}
}

func TestBoundsSign(t *testing.T) {
	positive := NewBounds[int](Int[int]{}, 0, 10)
	negative := NewBounds[int](Int[int]{}, -10, 0)
	both := NewBounds[int](Int[int]{}, -10, 10)

	assert.Equal(t, ForcePositive, positive.Sign())
	assert.Equal(t, ForceNegative, negative.Sign())
	assert.Equal(t, Unconstrained, both.Sign())

	n := MustParse("-5")
	assert.ErrorIs(t, positive.AutovalidateSign(n), ErrSignMismatch)
	assert.NoError(t, both.AutovalidateSign(n))

	assert.True(t, positive.AutocorrectSign(&n))
	assert.Equal(t, "5", n.String())
	assert.False(t, positive.AutocorrectSign(&n))
}

func TestNewBoundsPanicsWhenInverted(t *testing.T) {
	assert.Panics(t, func() { NewBounds[int](Int[int]{}, 2, 1) })
	assert.Equal(t, "[-128, 127]", DefaultBounds[int8](Int[int8]{}).String())
}
