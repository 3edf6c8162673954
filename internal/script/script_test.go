package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/difftext/internal/config"
)

const edits = `
- focus: true
- select: [2, 0]
- replace: [2, 0]
  text: "5"
- replace: [0, 0]
  text: "x"
- undo: true
`

func counter(t *testing.T) config.Editor {
	t.Helper()
	e, err := config.Preset{Type: "int", Locale: "en", Value: 1234}.Build(logr.Discard())
	require.NoError(t, err)
	return e
}

func TestParse(t *testing.T) {
	steps, err := Parse(strings.NewReader(edits))
	require.NoError(t, err)
	require.Len(t, steps, 5)
	assert.Equal(t, []int{2, 0}, steps[2].Replace)
	assert.Equal(t, "5", steps[2].Text)
	assert.Equal(t, `replace [2 0] "5"`, steps[2].String())
}

func TestParseRejectsInvalidSteps(t *testing.T) {
	for _, src := range []string{
		"- {}",
		"- {focus: true, blur: true}",
		"- select: [1]",
	} {
		_, err := Parse(strings.NewReader(src))
		assert.ErrorIs(t, err, ErrInvalidStep, src)
	}
}

func TestRun(t *testing.T) {
	steps, err := Parse(strings.NewReader(edits))
	require.NoError(t, err)

	e := counter(t)
	var out bytes.Buffer
	require.NoError(t, Run(e, steps, &out))

	text := out.String()
	assert.Contains(t, text, "   15,234    = 15234\n      |\n")
	assert.Contains(t, text, "rejected:")
	assert.Equal(t, "1,234", e.Text(), "undo restores the first value")
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "  |", marker("1,234", 2, 0))
	assert.Equal(t, "  ^^^", marker("1,234", 2, 3))
	assert.Equal(t, "  |", marker("😀1", 2, 0), "a surrogate pair is two units and two columns")
	assert.Equal(t, "  ^^", marker("日本語", 1, 1), "wide characters take two columns")
}
