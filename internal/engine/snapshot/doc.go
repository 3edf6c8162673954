// Package snapshot provides the attributed text model used by the editing
// engine.
//
// A Snapshot is an ordered sequence of symbols. Each symbol is one grapheme
// cluster tagged with an Attribute that tells whether the character belongs
// to the value being edited (Content) or is a formatting artifact such as a
// grouping separator or a currency label (Phantom, Prefix, Suffix).
//
// Coordinate Systems:
//
// Snapshot indices count symbols. Platform text widgets usually report
// caret and selection positions in UTF-16 code units, so the package also
// provides:
//
//   - Encoding: Character, UnicodeScalar or UTF16 unit systems
//   - Offset: a signed distance measured in one Encoding
//   - Position: either an absolute Index or an Offset from the start
//
// Moves expressed in UnicodeScalar or UTF16 units never land inside a
// symbol; they round down to the symbol's lower bound.
//
// Basic usage:
//
//	s := snapshot.FromString("1234", snapshot.Content)
//	s.Insert(1, snapshot.Symbol{Character: ",", Attribute: snapshot.Phantom})
//	s.Characters() // "1,234"
//	s.Content()    // "1234"
//
//	i := snapshot.UTF16.Index(s, 0, 2) // 2
//
// Snapshot values share nothing after a mutation: every mutating method
// reallocates its storage, so a copy taken before an edit is never changed
// by it.
package snapshot
