package snapshot

import "fmt"

// Attribute describes how a symbol takes part in editing.
type Attribute uint8

const (
	// Content symbols are part of the value and editable by the user.
	Content Attribute = iota
	// Phantom symbols are formatting artifacts inside the text, such as
	// grouping separators or unfilled pattern placeholders.
	Phantom
	// Prefix symbols decorate the start of the text. A caret landing on
	// them escapes forward.
	Prefix
	// Suffix symbols decorate the end of the text. A caret landing on
	// them escapes backward.
	Suffix
)

// Direction is the way a caret escapes from a non-editable symbol.
type Direction int8

const (
	None     Direction = 0
	Forward  Direction = 1
	Backward Direction = -1
)

// String returns a string representation of the attribute.
func (a Attribute) String() string {
	switch a {
	case Content:
		return "content"
	case Phantom:
		return "phantom"
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	default:
		return fmt.Sprintf("attribute(%d)", uint8(a))
	}
}

// Virtual reports whether the symbol is excluded from the value.
func (a Attribute) Virtual() bool {
	return a != Content
}

// Insertable reports whether the symbol may appear in a new snapshot
// without a counterpart in the old one.
func (a Attribute) Insertable() bool {
	return a != Content
}

// Removable reports whether the symbol may disappear from an old snapshot
// without a counterpart in the new one.
func (a Attribute) Removable() bool {
	return a != Content
}

// Escape returns the direction a caret resting on the symbol moves toward.
func (a Attribute) Escape() Direction {
	switch a {
	case Prefix:
		return Forward
	case Suffix:
		return Backward
	default:
		return None
	}
}

// Symbol is a single grapheme cluster and its attribute.
// Symbol is an immutable value type.
type Symbol struct {
	Character string
	Attribute Attribute
}

// NewSymbol creates a symbol.
func NewSymbol(character string, attribute Attribute) Symbol {
	return Symbol{Character: character, Attribute: attribute}
}

// String returns a debug representation of the symbol.
func (s Symbol) String() string {
	return fmt.Sprintf("%q:%s", s.Character, s.Attribute)
}
