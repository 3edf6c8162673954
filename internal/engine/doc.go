// Package engine provides the editing core behind as-you-type formatted
// text fields.
//
// The engine package connects styles, which know how to format and
// validate one kind of value, with a Field, which holds one editing
// session: the committed text, the selection and undo history.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - snapshot: Symbols tagged with editability attributes, and offsets in
//     character, scalar and UTF-16 units
//   - caret: Selection reconciliation across reformatting
//   - history: Undo/redo of field states
//
// # Styles
//
// A Style turns values into text and edits into values:
//
//   - Format renders a value for display while the field is idle
//   - Interpret turns a value into an editable Commit
//   - Merge validates a proposed edit and returns the resulting Commit
//
// Styles that hold expensive locale data implement Cacheable. The field
// owns their Cache and rebuilds it only when the style's identity changes.
//
// # Basic Usage
//
//	f := engine.NewField[decimal.Decimal](style, decimal.Zero,
//		engine.WithLogger(logger))
//	f.Focus()
//
//	// The platform widget reports edits in UTF-16 offsets.
//	if !f.ReplaceUTF16(0, 1, "5") {
//		// The edit was rejected and the field is unchanged.
//	}
//	offset, length := f.SelectionUTF16()
//
// # Telemetry
//
// The engine is silent by default. Rejected edits are logged at V(1) with
// the message "cancellation", silent repairs made by styles with the
// message "autocorrection".
//
// # Thread Safety
//
// A Field is one editing session and is not safe for concurrent use.
package engine
