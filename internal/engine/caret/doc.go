// Package caret reconciles selections across snapshot reformatting.
//
// The caret package handles:
//
//   - Selection values with an anchor/head model
//   - Re-threading a selection from an old snapshot onto a new one
//   - Snapping a selection so it never rests inside formatting
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The index where the selection started
//   - Head: The current caret index (where typing would occur)
//
// When Anchor == Head, the selection is a caret with no selected text.
//
// Reconciliation:
//
// After an edit the formatted text may gain or lose grouping separators,
// labels or placeholders. Reconcile aligns the old snapshot with the new one
// so the caret stays next to the characters the user was editing:
//
//	old := proposal            // "1,5|234" after typing 5
//	new := formatted           // "15,234"
//	sel := caret.Reconcile(old, new, caret.NewCaret(3))
//	sel = caret.Snap(new, sel) // "15,|234"
//
// Selection is an immutable value type and safe for concurrent use.
package caret
