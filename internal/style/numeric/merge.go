package numeric

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/difftext/internal/engine"
	"github.com/dshills/difftext/internal/number"
)

// Merge validates an edit and returns the resulting commit.
//
// Merge rules:
//   - A lone plus or minus is a command on the current number: minus
//     toggles the sign, plus makes it positive
//   - A lone separator glyph is read as the fraction separator
//   - Otherwise the content of the edited text is parsed as typed
//
// Sign, precision and bounds are validated strictly; any violation rejects
// the edit. A dangling separator that can take no more digits is dropped.
func (s Style[V]) Merge(changes engine.Changes) (engine.Commit[V], error) {
	c := s.resolve()
	lex := c.scheme.Lexicon

	if uniseg.GraphemeClusterCount(changes.Replacement) == 1 {
		if sign, ok := lex.IsSign(changes.Replacement); ok {
			n, err := number.Parse(lex.Unformat(changes.Snapshot.Content()))
			if err != nil {
				return engine.Commit[V]{}, err
			}
			if sign == number.Negative {
				n.Toggle()
			} else {
				n.Sign = number.Positive
			}
			return s.commit(c, n)
		}
		if lex.IsSeparator(changes.Replacement) {
			changes.Replacement = lex.Fraction()
		}
	}

	n, err := number.Parse(lex.Unformat(changes.Proposal().Content()))
	if err != nil {
		return engine.Commit[V]{}, err
	}
	return s.commit(c, n)
}

// commit validates n and renders it exactly as typed.
func (s Style[V]) commit(c *Cache, n number.Number) (engine.Commit[V], error) {
	if err := s.bounds.AutovalidateSign(n); err != nil {
		return engine.Commit[V]{}, err
	}
	changed, err := s.effectivePrecision(c).Autovalidate(&n)
	if err != nil {
		return engine.Commit[V]{}, err
	}
	if changed {
		engine.Autocorrection(s.logger, "separator dropped at precision limit", "number", n.String())
	}
	value, err := s.toValue(n)
	if err != nil {
		return engine.Commit[V]{}, err
	}
	_, changed, err = s.bounds.Autovalidate(value, &n)
	if err != nil {
		return engine.Commit[V]{}, err
	}
	if changed {
		engine.Autocorrection(s.logger, "separator dropped at bounds edge", "number", n.String())
	}
	return engine.Commit[V]{Value: value, Snapshot: c.formatter.Snapshot(n)}, nil
}
