package caret

import (
	"testing"

	"github.com/dshills/difftext/internal/engine/snapshot"
	"github.com/stretchr/testify/assert"
)

// text builds a snapshot where '_' marks the next symbol as phantom,
// '<' as prefix and '>' as suffix.
func text(marked string) snapshot.Snapshot {
	var s snapshot.Snapshot
	attr := snapshot.Content
	for _, r := range marked {
		switch r {
		case '_':
			attr = snapshot.Phantom
			continue
		case '<':
			attr = snapshot.Prefix
			continue
		case '>':
			attr = snapshot.Suffix
			continue
		}
		s.Append(snapshot.NewSymbol(string(r), attr))
		attr = snapshot.Content
	}
	return s
}

func TestSelectionBounds(t *testing.T) {
	sel := NewSelection(7, 3)

	assert.True(t, sel.IsBackward())
	assert.Equal(t, 3, sel.Lower())
	assert.Equal(t, 7, sel.Upper())
	assert.Equal(t, 4, sel.Len())
	assert.Equal(t, snapshot.NewRange(3, 7), sel.Range())
	assert.Equal(t, NewCaret(3), sel.Collapse())
	assert.Equal(t, NewCaret(7), sel.CollapseToUpper())
	assert.Equal(t, NewSelection(5, 1), sel.MoveBy(-2).Clamp(5))
	assert.Equal(t, "Selection(7←3)", sel.String())
	assert.Equal(t, "Caret(2)", NewCaret(2).String())
}

func TestReconcileTypingIntoGroupedNumber(t *testing.T) {
	// "1,|234" -> type "5" -> proposal "1,5|234" -> rendered "15,234".
	proposal := text("1_,5234")
	rendered := text("15_,234")

	sel := Reconcile(proposal, rendered, NewCaret(3))
	sel = Snap(rendered, sel)

	assert.Equal(t, NewCaret(3), sel, "caret stays between the typed 5 and 234")
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name string
		prev string
		next string
		sel  Selection
		want Selection
	}{
		{"grouping appears", "12345", "12_,345", NewCaret(4), NewCaret(5)},
		{"delete leading digit", "_,234", "234", NewCaret(0), NewCaret(0)},
		{"backspace over grouping", "1234", "1_,234", NewCaret(1), NewCaret(2)},
		{"caret at end", "<$12", "<$12", NewCaret(3), NewCaret(3)},
		{"sign inserted", "-123", "-123", NewCaret(1), NewCaret(1)},
		{"sign removed", "--123", "123", NewCaret(2), NewCaret(0)},
		{"content mismatch", "12", "34", NewCaret(1), NewCaret(2)},
		{"selection kept", "1_,234", "1_,234", NewSelection(0, 5), NewSelection(0, 5)},
		{"backward selection", "1_,234", "12_,34", NewSelection(4, 1), NewSelection(4, 1)},
		{"out of range selection", "12", "12", NewCaret(9), NewCaret(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(text(tt.prev), text(tt.next), tt.sel)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcileEmptySnapshots(t *testing.T) {
	empty := snapshot.New()

	assert.Equal(t, NewCaret(0), Reconcile(empty, empty, NewCaret(0)))
	assert.Equal(t, NewCaret(1), Reconcile(empty, text("0"), NewCaret(0)),
		"an empty proposal lands after the rendered zero")
	assert.Equal(t, NewCaret(0), Reconcile(text("12"), empty, NewSelection(0, 2)),
		"a selection collapses when nothing is left")
}

func TestReconcileReplaceAll(t *testing.T) {
	// "$1,234" fully selected and replaced by "9": proposal "9|".
	sel := Reconcile(text("9"), text("<$9"), NewCaret(1))
	assert.Equal(t, NewCaret(2), Snap(text("<$9"), sel))

	// Everything deleted: proposal "|", rendered "$0".
	sel = Reconcile(snapshot.New(), text("<$0"), NewCaret(0))
	assert.Equal(t, NewCaret(2), Snap(text("<$0"), sel))
}

func TestSnap(t *testing.T) {
	priced := text("<$12> >U>S>D")

	tests := []struct {
		name string
		sel  Selection
		want Selection
	}{
		{"inside prefix", NewCaret(0), NewCaret(1)},
		{"inside suffix", NewCaret(6), NewCaret(3)},
		{"content kept", NewCaret(2), NewCaret(2)},
		{"selection clamped", NewSelection(0, 7), NewSelection(1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Snap(priced, tt.sel))
		})
	}
}

func TestSnapWithoutContent(t *testing.T) {
	placeholders := text("_(_#_#_)")
	placeholders.SetAnchor(1)
	assert.Equal(t, NewCaret(1), Snap(placeholders, NewCaret(4)), "anchor wins")

	labelled := text("<+_#_#")
	assert.Equal(t, NewCaret(1), Snap(labelled, NewSelection(0, 3)), "after the last prefix")

	assert.Equal(t, NewCaret(0), Snap(snapshot.New(), NewCaret(5)))
}
