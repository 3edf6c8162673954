package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/difftext/internal/engine"
	"github.com/dshills/difftext/internal/number"
)

const presets = `
include = "common.toml"

[styles.price]
kind = "currency"
type = "decimal"
currency = "USD"
locale = "en"
min = 0
max = 1000000

[styles.phone]
kind = "pattern"
pattern = "+# (###) ###-##-##"
placeholders = { "#" = "digit" }
`

const common = `
[styles.price]
currency = "EUR"
constant = true

[styles.count]
type = "int"
locale = "en"
value = 1234
`

func load(t *testing.T, files fstest.MapFS, env ...string) *File {
	t.Helper()
	l := NewLoader(WithFS(files), WithEnv(NewEnvLoaderFrom(EnvPrefix, env)))
	f, err := l.Load("styles.toml")
	require.NoError(t, err)
	return f
}

func TestLoadMergesIncludes(t *testing.T) {
	f := load(t, fstest.MapFS{
		"styles.toml": {Data: []byte(presets)},
		"common.toml": {Data: []byte(common)},
	})

	assert.Equal(t, []string{"count", "phone", "price"}, f.Names())

	price, err := f.Preset("price")
	require.NoError(t, err)
	assert.Equal(t, "USD", price.Currency, "the including file wins")
	assert.True(t, price.Constant, "include values fill the gaps")

	_, err = f.Preset("missing")
	assert.ErrorIs(t, err, ErrStyleNotFound)
}

func TestLoadYAML(t *testing.T) {
	l := NewLoader(WithFS(fstest.MapFS{
		"styles.yaml": {Data: []byte("styles:\n  ratio:\n    kind: percent\n    type: float64\n    locale: en\n    value: 0.25\n")},
	}), WithEnv(nil))

	f, err := l.Load("styles.yaml")
	require.NoError(t, err)

	p, err := f.Preset("ratio")
	require.NoError(t, err)
	e, err := p.Build(logr.Discard())
	require.NoError(t, err)
	assert.Equal(t, "25%", e.Text())
}

func TestLoadErrors(t *testing.T) {
	files := fstest.MapFS{
		"broken.toml": {Data: []byte("[styles\n")},
		"styles.json": {Data: []byte("{}")},
		"loop.toml":   {Data: []byte(`include = "loop.toml"`)},
	}
	l := NewLoader(WithFS(files), WithEnv(nil))

	_, err := l.Load("broken.toml")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))

	_, err = l.Load("styles.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = l.Load("loop.toml")
	assert.ErrorIs(t, err, ErrIncludeDepthExceeded)

	_, err = l.Load("missing.toml")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	f := load(t, fstest.MapFS{
		"styles.toml": {Data: []byte(presets)},
		"common.toml": {Data: []byte(common)},
	}, "DIFFTEXT_PRICE_LOCALE=de", "DIFFTEXT_COUNT_VALUE=42", "DIFFTEXT_NOFIELD=1", "HOME=/root")

	price, err := f.Preset("price")
	require.NoError(t, err)
	assert.Equal(t, "de", price.Locale)

	count, err := f.Preset("count")
	require.NoError(t, err)
	assert.EqualValues(t, 42, count.Value)
}

func TestEnvParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue("yes"))
	assert.Equal(t, false, parseValue("off"))
	assert.Equal(t, int64(12), parseValue("12"))
	assert.Equal(t, 1.5, parseValue("1.5"))
	assert.Equal(t, "de-CH", parseValue("de-CH"))
}

func TestPresetBuildNumeric(t *testing.T) {
	f := load(t, fstest.MapFS{
		"styles.toml": {Data: []byte(presets)},
		"common.toml": {Data: []byte(common)},
	})

	count, err := f.Preset("count")
	require.NoError(t, err)
	e, err := count.Build(logr.Discard())
	require.NoError(t, err)
	assert.Equal(t, "1,234", e.Text())
	assert.Equal(t, "1234", e.Value())

	e.Focus()
	require.True(t, e.Replace(5, 0, "5"))
	assert.Equal(t, "12,345", e.Text())
	offset, length := e.Selection()
	assert.Equal(t, 6, offset)
	assert.Equal(t, 0, length)
}

func TestPresetBuildPattern(t *testing.T) {
	p := Preset{Kind: KindPattern, Pattern: "##-##", Placeholders: map[string]string{"#": "digit"}, Value: "12"}

	e, err := p.Build(logr.Discard())
	require.NoError(t, err)
	assert.Equal(t, "12", e.Text())

	e.Focus()
	assert.True(t, e.Replace(2, 0, "3"))
	assert.Equal(t, "12-3", e.Text())
	assert.False(t, e.Replace(4, 0, "x"))
	assert.Equal(t, "123", e.Value())
}

func TestPresetBuildDecorations(t *testing.T) {
	p := Preset{Type: "int", Locale: "en", Prefix: "~", Suffix: " kg", Value: 5}

	e, err := p.Build(logr.Discard(), engine.WithMaxUndoEntries(1))
	require.NoError(t, err)
	assert.Equal(t, "~5 kg", e.Text())
}

func TestPresetBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
	}{
		{"kind", Preset{Kind: "date"}},
		{"type", Preset{Type: "complex128"}},
		{"currency", Preset{Kind: KindCurrency}},
		{"locale", Preset{Locale: "not a locale!"}},
		{"min", Preset{Type: "int", Min: "abc"}},
		{"bounds order", Preset{Type: "int", Min: 5, Max: 1}},
		{"span", Preset{Type: "int", Integer: []int{3}}},
		{"pattern", Preset{Kind: KindPattern}},
		{"class", Preset{Kind: KindPattern, Pattern: "#", Placeholders: map[string]string{"#": "hex"}}},
		{"placeholder", Preset{Kind: KindPattern, Pattern: "#", Placeholders: map[string]string{"##": "digit"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.preset.Build(logr.Discard())
			assert.ErrorIs(t, err, ErrInvalidPreset)
		})
	}
}

func TestPresetValueOutOfRange(t *testing.T) {
	_, err := Preset{Type: "int8", Value: 300}.Build(logr.Discard())
	assert.ErrorIs(t, err, number.ErrOutOfBounds)
}
