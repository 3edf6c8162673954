// Package script replays scripted edits against an editor and renders the
// result of each step with a caret line.
//
// A script is a YAML list of steps:
//
//	- focus: true
//	- select: [2, 0]
//	- replace: [2, 0]
//	  text: "5"
//	- undo: true
//
// Offsets and lengths are UTF-16 code units.
package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/dshills/difftext/internal/config"
	"github.com/dshills/difftext/internal/engine/snapshot"
)

// ErrInvalidStep indicates a step with no or several actions.
var ErrInvalidStep = errors.New("invalid step")

// Step is one scripted action.
type Step struct {
	Focus   bool   `yaml:"focus"`
	Blur    bool   `yaml:"blur"`
	Select  []int  `yaml:"select"`
	Replace []int  `yaml:"replace"`
	Text    string `yaml:"text"`
	Undo    bool   `yaml:"undo"`
	Redo    bool   `yaml:"redo"`
}

// String returns a human-readable representation of the step.
func (s Step) String() string {
	switch {
	case s.Focus:
		return "focus"
	case s.Blur:
		return "blur"
	case s.Select != nil:
		return fmt.Sprintf("select %v", s.Select)
	case s.Replace != nil:
		return fmt.Sprintf("replace %v %q", s.Replace, s.Text)
	case s.Undo:
		return "undo"
	case s.Redo:
		return "redo"
	default:
		return "empty"
	}
}

func (s Step) validate() error {
	actions := 0
	for _, set := range []bool{s.Focus, s.Blur, s.Select != nil, s.Replace != nil, s.Undo, s.Redo} {
		if set {
			actions++
		}
	}
	if actions != 1 {
		return fmt.Errorf("%w: %d actions", ErrInvalidStep, actions)
	}
	for _, pair := range [][]int{s.Select, s.Replace} {
		if pair != nil && len(pair) != 2 {
			return fmt.Errorf("%w: want [offset, length], got %v", ErrInvalidStep, pair)
		}
	}
	return nil
}

// Parse reads a script.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	if err := yaml.NewDecoder(r).Decode(&steps); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, s := range steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return steps, nil
}

// Run applies steps to e and renders the editor after each one.
// Rejected edits are reported in the output, not returned as errors.
func Run(e config.Editor, steps []Step, w io.Writer) error {
	if err := Render(w, e); err != nil {
		return err
	}
	for i, s := range steps {
		if _, err := fmt.Fprintf(w, "\n%d. %s\n", i+1, s); err != nil {
			return err
		}
		if note := apply(e, s); note != "" {
			if _, err := fmt.Fprintf(w, "   %s\n", note); err != nil {
				return err
			}
		}
		if err := Render(w, e); err != nil {
			return err
		}
	}
	return nil
}

// apply runs one step and returns a note when it had no effect.
func apply(e config.Editor, s Step) string {
	switch {
	case s.Focus:
		e.Focus()
	case s.Blur:
		e.Blur()
	case s.Select != nil:
		e.Select(s.Select[0], s.Select[1])
	case s.Replace != nil:
		if !e.Replace(s.Replace[0], s.Replace[1], s.Text) {
			return "rejected: " + e.LastError().Error()
		}
	case s.Undo:
		if err := e.Undo(); err != nil {
			return err.Error()
		}
	case s.Redo:
		if err := e.Redo(); err != nil {
			return err.Error()
		}
	}
	return ""
}

// Render writes the editor text and, while it is active, a line marking
// the selection: "|" for a caret and "^" under selected characters.
func Render(w io.Writer, e config.Editor) error {
	text := e.Text()
	if _, err := fmt.Fprintf(w, "   %s    = %s\n", text, e.Value()); err != nil {
		return err
	}
	if !e.Active() {
		return nil
	}
	offset, length := e.Selection()
	_, err := fmt.Fprintf(w, "   %s\n", marker(text, offset, length))
	return err
}

// marker aligns a selection marker under text by display width.
func marker(text string, offset, length int) string {
	lower := snapshot.UTF16.IndexString(text, 0, offset)
	upper := snapshot.UTF16.IndexString(text, lower, length)
	pad := strings.Repeat(" ", runewidth.StringWidth(text[:lower]))
	if upper == lower {
		return pad + "|"
	}
	return pad + strings.Repeat("^", max(runewidth.StringWidth(text[lower:upper]), 1))
}
