package engine

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/dshills/difftext/internal/engine/caret"
	"github.com/dshills/difftext/internal/engine/history"
	"github.com/dshills/difftext/internal/engine/snapshot"
)

// Re-export commonly used types for convenience.
type (
	// Index is a symbol position in a snapshot.
	Index = snapshot.Index

	// Range represents a range of symbols.
	Range = snapshot.Range

	// Selection represents a caret or selected range.
	Selection = caret.Selection
)

// state is what undo and redo restore.
type state[V any] struct {
	commit    Commit[V]
	selection Selection
}

// Field is one editing session of a styled value. It is the boundary a
// platform text widget talks to: it receives edits and selection changes
// and hands back text and a selection.
//
// While idle the field displays the style's Format of its value. While
// active it displays the committed snapshot, which always reproduces the
// value exactly.
//
// Field is not safe for concurrent use.
type Field[V any] struct {
	style Style[V]
	cache Cache

	commit    Commit[V]
	selection Selection
	active    bool
	lastErr   error

	history *history.History[state[V]]
	logger  logr.Logger
	session uuid.UUID
}

// NewField creates an idle field holding value as interpreted by style.
func NewField[V any](style Style[V], value V, opts ...Option) *Field[V] {
	cfg := config{
		logger:         logr.Discard(),
		maxUndoEntries: DefaultMaxUndoEntries,
		session:        uuid.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Field[V]{
		style:   style,
		history: history.New[state[V]](cfg.maxUndoEntries),
		logger:  cfg.logger.WithValues("session", cfg.session.String()),
		session: cfg.session,
	}
	f.commit = f.resolved().Interpret(value)
	f.selection = caret.NewCaret(f.commit.Snapshot.Len())
	return f
}

// resolved returns the style with the field's cache attached, rebuilding
// the cache when the style identity changed.
func (f *Field[V]) resolved() Style[V] {
	cacheable, ok := f.style.(Cacheable[V])
	if !ok {
		return f.style
	}
	identity := cacheable.Identity()
	if f.cache == nil || f.cache.Identity() != identity {
		cache, err := cacheable.NewCache()
		if err != nil {
			f.logger.Error(err, "cache rebuild failed", "identity", fmt.Sprint(identity))
			f.cache = nil
			return f.style
		}
		f.cache = cache
	}
	return cacheable.WithCache(f.cache)
}

// Session returns the session id of the field.
func (f *Field[V]) Session() uuid.UUID {
	return f.session
}

// Style returns the field's style.
func (f *Field[V]) Style() Style[V] {
	return f.style
}

// Active returns true while the field has focus.
func (f *Field[V]) Active() bool {
	return f.active
}

// Focus activates the field. The value is re-interpreted and the caret is
// placed at the end of the content.
func (f *Field[V]) Focus() {
	if f.active {
		return
	}
	f.active = true
	f.commit = f.resolved().Interpret(f.commit.Value)
	f.selection = caret.Snap(f.commit.Snapshot, caret.NewCaret(f.commit.Snapshot.Len()))
}

// Blur deactivates the field. Undo history is discarded.
func (f *Field[V]) Blur() {
	f.active = false
	f.history.Clear()
}

// Value returns the committed value.
func (f *Field[V]) Value() V {
	return f.commit.Value
}

// Commit returns the current commit.
func (f *Field[V]) Commit() Commit[V] {
	return f.commit
}

// Text returns the displayed text.
func (f *Field[V]) Text() string {
	if !f.active {
		return f.resolved().Format(f.commit.Value)
	}
	return f.commit.Snapshot.Characters()
}

// Selection returns the selection in snapshot indices.
func (f *Field[V]) Selection() Selection {
	return f.selection
}

// SelectionUTF16 returns the selection as a UTF-16 offset and length.
func (f *Field[V]) SelectionUTF16() (offset, length int) {
	s := f.commit.Snapshot
	lower := snapshot.UTF16.Distance(s, 0, f.selection.Lower())
	upper := snapshot.UTF16.Distance(s, 0, f.selection.Upper())
	return lower, upper - lower
}

// LastError returns why the most recent rejected edit was rejected.
// It wraps ErrCancelled.
func (f *Field[V]) LastError() error {
	return f.lastErr
}

// Replace replaces the symbols in r with text. The edit is merged by the
// style; on success the commit and selection are updated and true is
// returned. A rejected edit leaves the field unchanged and returns false.
// An idle field is focused first.
func (f *Field[V]) Replace(r Range, text string) bool {
	f.Focus()
	if !r.IsValid() || r.Start < 0 || r.End > f.commit.Snapshot.Len() {
		return f.cancel(fmt.Errorf("%w: %s in %d symbols", ErrRangeInvalid, r, f.commit.Snapshot.Len()), r, text)
	}

	changes := Changes{Snapshot: f.commit.Snapshot, Range: r, Replacement: text}
	next, err := f.resolved().Merge(changes)
	if err != nil {
		return f.cancel(err, r, text)
	}

	sel := caret.Reconcile(changes.Proposal(), next.Snapshot, caret.NewCaret(changes.Caret()))
	f.history.Push("replace", state[V]{commit: f.commit, selection: f.selection})
	f.commit = next
	f.selection = caret.Snap(next.Snapshot, sel)
	f.lastErr = nil
	return true
}

// ReplaceUTF16 is like Replace with the range given as a UTF-16 offset and
// length. Offsets inside a grapheme round down to its start.
func (f *Field[V]) ReplaceUTF16(offset, length int, text string) bool {
	if offset < 0 || length < 0 {
		return f.cancel(fmt.Errorf("%w: utf16 offset %d length %d", ErrRangeInvalid, offset, length), Range{}, text)
	}
	return f.Replace(f.rangeUTF16(offset, length), text)
}

func (f *Field[V]) cancel(err error, r Range, text string) bool {
	f.lastErr = fmt.Errorf("%w: %w", ErrCancelled, err)
	Cancellation(f.logger, err, "range", r.String(), "replacement", text)
	return false
}

// Select sets the selection. Both ends are snapped out of leading and
// trailing formatting.
func (f *Field[V]) Select(r Range) {
	f.Focus()
	sel := caret.NewRangeSelection(r).Clamp(f.commit.Snapshot.Len())
	f.selection = caret.Snap(f.commit.Snapshot, sel)
}

// SelectUTF16 is like Select with the range given as a UTF-16 offset and
// length.
func (f *Field[V]) SelectUTF16(offset, length int) {
	f.Select(f.rangeUTF16(max(offset, 0), max(length, 0)))
}

func (f *Field[V]) rangeUTF16(offset, length int) Range {
	s := f.commit.Snapshot
	lower := snapshot.NewOffset(snapshot.UTF16, offset)
	upper := snapshot.NewOffset(snapshot.UTF16, offset+length)
	return snapshot.ResolveRange(s, lower, upper)
}

// SetValue replaces the value from outside the editing session. The value
// is interpreted by the style; an active field keeps its selection next to
// the same characters.
func (f *Field[V]) SetValue(v V) {
	f.recommit("set value", f.resolved().Interpret(v))
}

// SetStyle replaces the style. The value is re-interpreted unless the new
// style is equal to the current one.
func (f *Field[V]) SetStyle(style Style[V]) {
	if style.Equal(f.style) {
		return
	}
	f.style = style
	f.recommit("set style", f.resolved().Interpret(f.commit.Value))
}

func (f *Field[V]) recommit(description string, next Commit[V]) {
	if !f.active {
		f.commit = next
		f.selection = caret.NewCaret(next.Snapshot.Len())
		return
	}
	sel := caret.Reconcile(f.commit.Snapshot, next.Snapshot, f.selection)
	f.history.Push(description, state[V]{commit: f.commit, selection: f.selection})
	f.commit = next
	f.selection = caret.Snap(next.Snapshot, sel)
}

// Undo restores the state before the last change of this session.
func (f *Field[V]) Undo() error {
	prev, err := f.history.Undo(f.current())
	if errors.Is(err, history.ErrNothingToUndo) {
		return ErrNothingToUndo
	}
	f.restore(prev)
	return nil
}

// Redo restores the state undone by the last Undo.
func (f *Field[V]) Redo() error {
	next, err := f.history.Redo(f.current())
	if errors.Is(err, history.ErrNothingToRedo) {
		return ErrNothingToRedo
	}
	f.restore(next)
	return nil
}

// CanUndo returns true if undo is available.
func (f *Field[V]) CanUndo() bool {
	return f.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (f *Field[V]) CanRedo() bool {
	return f.history.CanRedo()
}

func (f *Field[V]) current() state[V] {
	return state[V]{commit: f.commit, selection: f.selection}
}

func (f *Field[V]) restore(s state[V]) {
	f.commit = s.commit
	f.selection = s.selection
}
