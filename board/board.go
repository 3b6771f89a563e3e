// Package board owns the state behind one fretboard view: the selection, the
// chord library and the chords matched against them.
package board

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/selection"
)

type Board struct {
	selection selection.Selection
	library   *model.Library
	matches   []model.ChordMatch
}

// New accepts a nil library for boards whose library is still loading.
func New(lib *model.Library) *Board {
	return &Board{selection: selection.New(), library: lib}
}

// SetLibrary installs the library once it has loaded.
func (b *Board) SetLibrary(lib *model.Library) {
	b.library = lib
	b.recompute()
}

func (b *Board) Toggle(stringIndex int, fret int) {
	b.selection.Toggle(stringIndex, fret)
	b.recompute()
}

func (b *Board) Reset() {
	b.selection.Reset()
	b.matches = nil
}

func (b *Board) recompute() {
	b.matches = chord.Match(b.selection, b.library)
}

func (b *Board) Selection() selection.Selection {
	return b.selection
}

func (b *Board) Library() *model.Library {
	return b.library
}

func (b *Board) Matches() []model.ChordMatch {
	return b.matches
}
