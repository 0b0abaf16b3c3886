// Package document tracks whether the edited curve differs from the last
// version loaded from or saved to disk. It performs no I/O.
package document

import (
	"path/filepath"
	"slices"

	"github.com/olivier-w/curvedit/internal/curve"
)

// Document is the save-state of the curve being edited.
type Document struct {
	path     string
	attached bool
	dirty    bool
	state    []curve.Vec
}

// New returns a detached document whose snapshot is state.
func New(state []curve.Vec) *Document {
	return &Document{state: slices.Clone(state)}
}

// Attach binds the document to path with state as the on-disk contents.
func (d *Document) Attach(path string, state []curve.Vec) {
	d.path = path
	d.attached = true
	d.MarkSaved(state)
}

// MarkSaved records state as the on-disk contents and clears the dirty flag.
func (d *Document) MarkSaved(state []curve.Vec) {
	d.state = slices.Clone(state)
	d.dirty = false
}

// Differs reports whether current differs from the snapshot, comparing
// committed positions index by index.
func (d *Document) Differs(current []curve.Vec) bool {
	return !slices.Equal(d.state, current)
}

// Track sets the dirty flag once current differs from the snapshot. The flag
// stays set until the next MarkSaved or Attach.
func (d *Document) Track(current []curve.Vec) bool {
	if !d.dirty && d.Differs(current) {
		d.dirty = true
	}
	return d.dirty
}

func (d *Document) Dirty() bool    { return d.dirty }
func (d *Document) Attached() bool { return d.attached }
func (d *Document) Path() string   { return d.path }

// Title returns the window title for the document.
func (d *Document) Title() string {
	if !d.attached {
		return "curvedit - unsaved"
	}
	title := "curvedit - " + filepath.Base(d.path)
	if d.dirty {
		title += "*"
	}
	return title
}
