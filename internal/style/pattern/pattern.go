// Package pattern implements a style for fixed-layout strings such as
// phone numbers, card numbers and dates.
//
// A pattern is a template of literal characters and placeholders. The value
// is the sequence of characters filling the placeholders; literals are
// rendered as phantom symbols and never become part of the value.
//
//	phone := pattern.New("+# (###) ###-##-##").Placeholder('#', unicode.IsDigit)
//	phone.Format("12345678900") // "+1 (234) 567-89-00"
package pattern

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/text/language"

	"github.com/dshills/difftext/internal/engine"
	"github.com/dshills/difftext/internal/engine/snapshot"
)

// Predicate reports whether r may fill a placeholder.
type Predicate func(r rune) bool

// cell is one grapheme of the pattern.
type cell struct {
	text        string
	placeholder bool
	accepts     Predicate
}

// Style renders string values into a pattern.
// Style is an immutable value type; builder methods return copies.
type Style struct {
	pattern      string
	placeholders map[rune]Predicate
	visible      bool
	logger       logr.Logger
}

var _ engine.Style[string] = Style{}

// New creates a style for pattern. Without placeholders every character is
// a literal; add them with Placeholder.
func New(pattern string) Style {
	return Style{pattern: pattern, logger: logr.Discard()}
}

// Placeholder returns the style treating every r in the pattern as a slot
// accepting the characters matched by accepts.
func (s Style) Placeholder(r rune, accepts Predicate) Style {
	placeholders := maps.Clone(s.placeholders)
	if placeholders == nil {
		placeholders = make(map[rune]Predicate)
	}
	placeholders[r] = accepts
	s.placeholders = placeholders
	return s
}

// Visible returns the style rendering the unfilled part of the pattern
// after the value.
func (s Style) Visible(visible bool) Style {
	s.visible = visible
	return s
}

// Logger returns the style reporting autocorrections to logger.
func (s Style) Logger(logger logr.Logger) Style {
	s.logger = logger
	return s
}

// Pattern returns the template.
func (s Style) Pattern() string { return s.pattern }

// Capacity returns the number of placeholders in the pattern.
func (s Style) Capacity() int {
	n := 0
	for _, c := range s.cells() {
		if c.placeholder {
			n++
		}
	}
	return n
}

// Locale implements engine.Style. Patterns do not depend on the locale.
func (s Style) Locale(language.Tag) engine.Style[string] {
	return s
}

// Equal reports whether other is a pattern style with the same template,
// visibility and placeholder characters. Predicates are not compared.
func (s Style) Equal(other engine.Style[string]) bool {
	o, ok := other.(Style)
	if !ok {
		return false
	}
	return s.pattern == o.pattern &&
		s.visible == o.visible &&
		slices.Equal(slices.Sorted(maps.Keys(s.placeholders)), slices.Sorted(maps.Keys(o.placeholders)))
}

func (s Style) cells() []cell {
	symbols := snapshot.Symbols(s.pattern, snapshot.Phantom)
	cells := make([]cell, len(symbols))
	for i, sym := range symbols {
		cells[i] = cell{text: sym.Character}
		r := []rune(sym.Character)
		if len(r) != 1 {
			continue
		}
		if accepts, ok := s.placeholders[r[0]]; ok {
			cells[i].placeholder = true
			cells[i].accepts = accepts
		}
	}
	return cells
}

// Format renders value for display. Characters that do not fit are
// dropped.
func (s Style) Format(value string) string {
	chars, _ := s.fit(value)
	return s.render(chars).Characters()
}

// Interpret renders value for editing. Characters rejected by their
// placeholder and characters beyond the last placeholder are dropped and
// reported as autocorrections.
func (s Style) Interpret(value string) engine.Commit[string] {
	chars, dropped := s.fit(value)
	if len(dropped) > 0 {
		engine.Autocorrection(s.logger, "characters dropped from pattern",
			"value", value, "dropped", strings.Join(dropped, ""))
	}
	return engine.Commit[string]{Value: strings.Join(chars, ""), Snapshot: s.render(chars)}
}

// Merge validates the content of the edited text against the placeholders
// in order. Too many characters or a rejected character fail the edit.
func (s Style) Merge(changes engine.Changes) (engine.Commit[string], error) {
	chars := graphemes(changes.Proposal().Content())
	slots := s.slots()
	if len(chars) > len(slots) {
		return engine.Commit[string]{}, fmt.Errorf("%w: %d characters, %d placeholders", ErrOverflow, len(chars), len(slots))
	}
	for i, g := range chars {
		if !matches(slots[i], g) {
			return engine.Commit[string]{}, fmt.Errorf("%w: %q at position %d", ErrMismatch, g, i)
		}
	}
	return engine.Commit[string]{Value: strings.Join(chars, ""), Snapshot: s.render(chars)}, nil
}

// slots returns the placeholders in order.
func (s Style) slots() []cell {
	var slots []cell
	for _, c := range s.cells() {
		if c.placeholder {
			slots = append(slots, c)
		}
	}
	return slots
}

// fit assigns the characters of value to placeholders, skipping those a
// placeholder rejects.
func (s Style) fit(value string) (chars, dropped []string) {
	slots := s.slots()
	for _, g := range graphemes(value) {
		if len(chars) < len(slots) && matches(slots[len(chars)], g) {
			chars = append(chars, g)
		} else {
			dropped = append(dropped, g)
		}
	}
	return chars, dropped
}

// render lays chars out in the pattern.
//
// Rendering rules:
//   - Filled placeholders are content, literals are phantom
//   - Literals are shown up to the last filled placeholder, or through the
//     end once every placeholder is filled
//   - A visible pattern also shows its unfilled tail as phantom symbols
//   - The anchor marks the first unfilled placeholder
func (s Style) render(chars []string) snapshot.Snapshot {
	var out snapshot.Snapshot
	var pending []snapshot.Symbol
	next, anchor := 0, -1

	for _, c := range s.cells() {
		if !c.placeholder {
			pending = append(pending, snapshot.NewSymbol(c.text, snapshot.Phantom))
			continue
		}
		if next < len(chars) {
			out.Append(pending...)
			pending = nil
			out.Append(snapshot.NewSymbol(chars[next], snapshot.Content))
			next++
			continue
		}
		if !s.visible {
			if anchor < 0 {
				anchor = out.Len()
			}
			pending = nil
			break
		}
		if anchor < 0 {
			anchor = out.Len() + len(pending)
		}
		out.Append(pending...)
		pending = nil
		out.Append(snapshot.NewSymbol(c.text, snapshot.Phantom))
	}
	out.Append(pending...)

	if anchor < 0 {
		anchor = out.Len()
	}
	out.SetAnchor(anchor)
	return out
}

func matches(slot cell, g string) bool {
	if slot.accepts == nil {
		return false
	}
	for _, r := range g {
		if !slot.accepts(r) {
			return false
		}
	}
	return g != ""
}

func graphemes(text string) []string {
	symbols := snapshot.Symbols(text, snapshot.Content)
	out := make([]string, len(symbols))
	for i, sym := range symbols {
		out[i] = sym.Character
	}
	return out
}
