package selection

import (
	"sort"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
)

// Selection holds at most one fret per string. Unselected strings hold
// model.Muted.
type Selection [constants.NumStrings]model.Fret

func New() Selection {
	var s Selection
	s.Reset()
	return s
}

// FromPattern builds a selection from a per-string pattern. Missing or
// off-board entries are left unselected.
func FromPattern(pattern []model.Fret) Selection {
	s := New()
	for i, f := range pattern {
		if i >= constants.NumStrings {
			break
		}
		if f != model.Muted && fretboard.InRange(i, int(f)) {
			s[i] = f
		}
	}
	return s
}

func (s *Selection) Toggle(stringIndex int, fret int) {
	f := model.Fret(fret)
	if s[stringIndex] == f {
		s[stringIndex] = model.Muted
		return
	}
	s[stringIndex] = f
}

func (s *Selection) Reset() {
	for i := range s {
		s[i] = model.Muted
	}
}

func (s Selection) IsSelected(stringIndex int, fret int) bool {
	return s[stringIndex] != model.Muted && s[stringIndex] == model.Fret(fret)
}

func (s Selection) Empty() bool {
	for _, f := range s {
		if f != model.Muted {
			return false
		}
	}
	return true
}

// Pattern is ordered by string, low to high.
func (s Selection) Pattern() []model.Fret {
	res := make([]model.Fret, constants.NumStrings)
	copy(res, s[:])
	return res
}

func (s Selection) Positions() []model.Position {
	var res []model.Position
	for i, f := range s {
		if f != model.Muted {
			res = append(res, model.Position{String: i, Fret: f})
		}
	}
	return res
}

// PitchClasses returns the distinct selected pitch classes, ascending.
func (s Selection) PitchClasses() []int {
	var seen [12]bool
	for _, p := range s.Positions() {
		seen[fretboard.PitchClass(p.String, int(p.Fret))] = true
	}
	var res []int
	for pc, ok := range seen {
		if ok {
			res = append(res, pc)
		}
	}
	sort.Ints(res)
	return res
}

// NoteNames gives the note name per string, "" for unselected strings.
func (s Selection) NoteNames() []string {
	res := make([]string, constants.NumStrings)
	for _, p := range s.Positions() {
		res[p.String] = fretboard.PitchName(p.String, int(p.Fret))
	}
	return res
}
