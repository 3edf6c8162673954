package config

import (
	"github.com/google/uuid"

	"github.com/dshills/difftext/internal/engine"
)

// Editor is a field whose value type is chosen at run time by a preset.
// Offsets are UTF-16 code units, as delivered by platform text widgets.
type Editor interface {
	// Text returns the displayed text.
	Text() string
	// Value returns the committed value in its canonical text form.
	Value() string
	Session() uuid.UUID
	Active() bool
	Focus()
	Blur()
	// Replace replaces length units at offset with text.
	// It returns false if the edit was rejected.
	Replace(offset, length int, text string) bool
	// Select sets the selection.
	Select(offset, length int)
	// Selection returns the selection.
	Selection() (offset, length int)
	LastError() error
	Undo() error
	Redo() error
}

type editor[V any] struct {
	field  *engine.Field[V]
	format func(V) string
}

var _ Editor = (*editor[int])(nil)

func newEditor[V any](s engine.Style[V], value V, format func(V) string, opts []engine.Option) *editor[V] {
	return &editor[V]{field: engine.NewField(s, value, opts...), format: format}
}

func (e *editor[V]) Text() string { return e.field.Text() }

func (e *editor[V]) Value() string { return e.format(e.field.Value()) }

func (e *editor[V]) Session() uuid.UUID { return e.field.Session() }

func (e *editor[V]) Active() bool { return e.field.Active() }

func (e *editor[V]) Focus() { e.field.Focus() }

func (e *editor[V]) Blur() { e.field.Blur() }

func (e *editor[V]) Replace(offset, length int, text string) bool {
	return e.field.ReplaceUTF16(offset, length, text)
}

func (e *editor[V]) Select(offset, length int) { e.field.SelectUTF16(offset, length) }

func (e *editor[V]) Selection() (offset, length int) { return e.field.SelectionUTF16() }

func (e *editor[V]) LastError() error { return e.field.LastError() }

func (e *editor[V]) Undo() error { return e.field.Undo() }

func (e *editor[V]) Redo() error { return e.field.Redo() }
