package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryPushAndUndo(t *testing.T) {
	h := New[string](10)
	h.Push("type", "1")
	h.Push("type", "12")

	prev, err := h.Undo("123")
	require.NoError(t, err)
	assert.Equal(t, "12", prev)

	prev, err = h.Undo(prev)
	require.NoError(t, err)
	assert.Equal(t, "1", prev)

	_, err = h.Undo(prev)
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestHistoryRedo(t *testing.T) {
	h := New[string](10)
	h.Push("type", "1")

	prev, err := h.Undo("12")
	require.NoError(t, err)
	require.True(t, h.CanRedo())

	next, err := h.Redo(prev)
	require.NoError(t, err)
	assert.Equal(t, "12", next)
	assert.Equal(t, 1, h.UndoCount())

	_, err = h.Redo(next)
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestHistoryRedoClearedOnPush(t *testing.T) {
	h := New[int](10)
	h.Push("set", 1)
	_, err := h.Undo(2)
	require.NoError(t, err)
	require.Equal(t, 1, h.RedoCount())

	h.Push("set", 1)
	assert.False(t, h.CanRedo())
}

func TestHistoryMaxEntries(t *testing.T) {
	h := New[int](3)
	for i := range 5 {
		h.Push("set", i)
	}
	assert.Equal(t, 3, h.UndoCount())

	prev, err := h.Undo(5)
	require.NoError(t, err)
	assert.Equal(t, 4, prev)

	h.SetMaxEntries(1)
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 1, h.MaxEntries())

	h.SetMaxEntries(0)
	assert.Equal(t, DefaultMaxEntries, h.MaxEntries())
}

func TestHistoryPeekAndClear(t *testing.T) {
	h := New[int](0)
	_, ok := h.PeekUndo()
	assert.False(t, ok)

	h.Push("paste", 1)
	info, ok := h.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, "paste", info.Description)
	assert.False(t, info.Timestamp.IsZero())

	_, err := h.Undo(2)
	require.NoError(t, err)
	info, ok = h.PeekRedo()
	require.True(t, ok)
	assert.Equal(t, "paste", info.Description)

	h.Clear()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
