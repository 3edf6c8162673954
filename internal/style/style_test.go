package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dshills/difftext/internal/engine"
	"github.com/dshills/difftext/internal/engine/snapshot"
	"github.com/dshills/difftext/internal/number"
	"github.com/dshills/difftext/internal/style/numeric"
)

func integers() numeric.Style[int] {
	return numeric.Number[int](number.Int[int]{}).WithLocale(language.English)
}

// counting records how often a cache is built.
type counting struct {
	numeric.Style[int]
	builds *int
}

func (c counting) NewCache() (engine.Cache, error) {
	*c.builds++
	return c.Style.NewCache()
}

func (c counting) WithCache(cache engine.Cache) engine.Style[int] {
	return c.Style.WithCache(cache)
}

func TestLabels(t *testing.T) {
	s := Labels[int](integers(), "≈ ", " pcs")

	assert.Equal(t, "≈ 1,234 pcs", s.Format(1234))

	commit := s.Interpret(1234)
	attrs := commit.Snapshot.Attributes()
	assert.Equal(t, snapshot.Prefix, attrs[0])
	assert.Equal(t, snapshot.Suffix, attrs[len(attrs)-1])
	assert.Equal(t, "1234", commit.Snapshot.Content())
}

func TestLabelsMerge(t *testing.T) {
	s := Labels[int](integers(), "$", "!")
	current := s.Interpret(12)
	require.Equal(t, "$12!", current.Snapshot.Characters())

	next, err := s.Merge(engine.Changes{Snapshot: current.Snapshot, Range: snapshot.Caret(3), Replacement: "3"})
	require.NoError(t, err)
	assert.Equal(t, 123, next.Value)
	assert.Equal(t, "$123!", next.Snapshot.Characters())

	// Edits inside a label land at the edge of the value.
	next, err = s.Merge(engine.Changes{Snapshot: current.Snapshot, Range: snapshot.Caret(4), Replacement: "9"})
	require.NoError(t, err)
	assert.Equal(t, 129, next.Value)

	next, err = s.Merge(engine.Changes{Snapshot: current.Snapshot, Range: snapshot.NewRange(0, 4), Replacement: "7"})
	require.NoError(t, err)
	assert.Equal(t, "$7!", next.Snapshot.Characters())
}

func TestLabelsFieldCaret(t *testing.T) {
	f := engine.NewField[int](Prefix[int](integers(), "€ "), 5)
	f.Focus()

	assert.Equal(t, engine.Selection{Anchor: 3, Head: 3}, f.Selection())
	f.Select(snapshot.Caret(0))
	assert.Equal(t, engine.Selection{Anchor: 2, Head: 2}, f.Selection(), "caret leaves the prefix")

	require.True(t, f.Replace(snapshot.NewRange(2, 3), "4"))
	assert.Equal(t, "€ 4", f.Text())
}

func TestConstant(t *testing.T) {
	s := Constant[int](integers())

	assert.Equal(t, "1,234", s.Locale(language.German).Format(1234))
	assert.Equal(t, "1.234", integers().Locale(language.German).Format(1234))
	assert.True(t, s.Equal(Constant[int](integers())))
	assert.False(t, s.Equal(integers()))
}

func TestEquals(t *testing.T) {
	a := Equals[int](integers(), "price")
	b := Equals[int](integers().Bounds(0, 5), "price")
	c := Equals[int](integers(), "quantity")

	assert.True(t, a.Equal(b), "the proxy decides")
	assert.False(t, a.Equal(c))
	assert.Equal(t, "5", b.Format(9))
}

func TestDecoratorsForwardCaching(t *testing.T) {
	builds := new(int)
	base := counting{Style: integers(), builds: builds}
	f := engine.NewField[int](Suffix[int](base, " kg"), 1)

	f.Focus()
	require.True(t, f.Replace(snapshot.Caret(1), "2"))
	require.True(t, f.Replace(snapshot.Caret(2), "3"))
	assert.Equal(t, "123 kg", f.Text())
	assert.Equal(t, 1, *builds, "the field owns one cache")

	f.SetStyle(Suffix[int](counting{Style: integers().WithLocale(language.German), builds: builds}, " kg"))
	assert.Equal(t, 2, *builds, "a new locale rebuilds the cache")
}

func TestStandalone(t *testing.T) {
	builds := new(int)
	s := Standalone[int](counting{Style: integers(), builds: builds})

	assert.Equal(t, "1,234", s.Format(1234))
	assert.Equal(t, "5", s.Format(5))
	assert.Equal(t, 1, *builds)

	_, ok := s.(engine.Cacheable[int])
	assert.False(t, ok)
}

func TestIsolated(t *testing.T) {
	builds := new(int)
	s := Isolated[int](counting{Style: integers(), builds: builds})

	s.Format(1)
	s.Interpret(2)
	assert.Equal(t, 2, *builds)
	assert.Equal(t, "1.234", s.Locale(language.German).Format(1234))
}

func TestBuilder(t *testing.T) {
	s := From[int](integers()).
		Prefix("#").
		Suffix("!").
		Constant().
		Standalone().
		Build()

	assert.Equal(t, "#1,234!", s.Format(1234))
	assert.Equal(t, "#1,234!", s.Locale(language.German).Format(1234))

	commit := s.Interpret(7)
	assert.Equal(t, "#7!", commit.Snapshot.Characters())
}
