package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Number
	}{
		{"123.45", Number{Sign: Positive, Integer: "123", Separator: true, Fraction: "45"}},
		{"-0.50", Number{Sign: Negative, Integer: "0", Separator: true, Fraction: "50"}},
		{"007", Number{Integer: "7"}},
		{"+12.", Number{Integer: "12", Separator: true}},
		{".5", Number{Integer: "0", Separator: true, Fraction: "5"}},
		{"", Number{Integer: "0"}},
		{"-", Number{Sign: Negative, Integer: "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsTrailingCharacters(t *testing.T) {
	for _, text := range []string{"12x3", "1.2.3", "--1", "1-", "1,2"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrInvalidNumber, text)
	}
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "-12.", MustParse("-0012.").String())
	assert.Equal(t, "12.5", MustParse("12.50").Canonical())
	assert.Equal(t, "0", MustParse("-0.00").Canonical())
	assert.Equal(t, "-3", MustParse("-3.").Canonical())
}

func TestNumberCount(t *testing.T) {
	tests := []struct {
		text string
		want Count
	}{
		{"0", Count{Value: 0, Integer: 1, Fraction: 0}},
		{"123.45", Count{Value: 5, Integer: 3, Fraction: 2}},
		{"0.05", Count{Value: 1, Integer: 1, Fraction: 2}},
		{"-10.0", Count{Value: 3, Integer: 2, Fraction: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.text).Count())
		})
	}
}

func TestNumberTrim(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit Count
		want  string
	}{
		{"fits", "12.34", Count{Value: 10, Integer: 5, Fraction: 5}, "12.34"},
		{"fraction suffix", "12.345", Count{Value: 10, Integer: 5, Fraction: 2}, "12.34"},
		{"integer prefix", "12345", Count{Value: 10, Integer: 3, Fraction: 0}, "345"},
		{"value drops fraction first", "123.45", Count{Value: 4, Integer: 5, Fraction: 5}, "123.4"},
		{"value drops integer last", "12345", Count{Value: 3, Integer: 5, Fraction: 0}, "345"},
		{"separator removed", "1.5", Count{Value: 5, Integer: 5, Fraction: 0}, "1"},
		{"zero prefix restored", "100", Count{Value: 5, Integer: 2, Fraction: 0}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := MustParse(tt.text)
			before := n.Count()
			changed := n.Trim(tt.limit)

			assert.Equal(t, tt.want, n.String())
			assert.Equal(t, tt.want != tt.text, changed)

			after := n.Count()
			assert.LessOrEqual(t, after.Value, tt.limit.Value)
			assert.LessOrEqual(t, after.Value, before.Value)
			assert.LessOrEqual(t, after.Integer, before.Integer)
			assert.LessOrEqual(t, after.Fraction, before.Fraction)
		})
	}
}

func TestNumberRound(t *testing.T) {
	tests := []struct {
		text   string
		places int
		want   string
	}{
		{"1.25", 1, "1.3"},
		{"-1.25", 1, "-1.3"},
		{"1.24", 1, "1.2"},
		{"9.99", 1, "10.0"},
		{"99.5", 0, "100"},
		{"-0.4", 0, "0"},
		{"1.5", 3, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.text).Round(tt.places).String())
		})
	}
}

func TestNumberMutation(t *testing.T) {
	n := MustParse("12.")
	assert.True(t, n.RemoveSeparatorAsSuffix())
	assert.False(t, n.RemoveSeparatorAsSuffix())
	assert.Equal(t, "12", n.String())

	n.Toggle()
	assert.Equal(t, "-12", n.String())
	n.Toggle()
	assert.Equal(t, "12", n.String())

	assert.Equal(t, "012.50", MustParse("12.5").Pad(3, 2).String())
	assert.Equal(t, "5.00", MustParse("5").Pad(1, 2).String())
	assert.True(t, MustParse("-0.000").IsZero())
}
