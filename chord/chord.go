package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/selection"
	"github.com/jsphweid/fretdex/util"
	"github.com/pkg/errors"
)

// Match runs the policy the library declares. It never fails: an empty
// selection, a missing library or an unknown kind all give no matches.
func Match(sel selection.Selection, lib *model.Library) []model.ChordMatch {
	if sel.Empty() || lib.Len() == 0 {
		return nil
	}

	switch lib.Kind {
	case model.KindPositions:
		return MatchPositions(sel, lib.Chords)
	case model.KindFormula:
		return MatchFormula(sel, lib.Chords)
	default:
		return nil
	}
}

// MatchPositions returns every entry whose per-string pattern is identical to
// the selection's, in library order.
func MatchPositions(sel selection.Selection, chords []model.ChordEntry) []model.ChordMatch {
	if sel.Empty() {
		return nil
	}

	pattern := sel.Pattern()
	var res []model.ChordMatch
	for _, c := range chords {
		if samePattern(pattern, c.Positions) {
			res = append(res, model.ChordMatch{Chord: c, Root: -1, Covered: len(pattern)})
		}
	}
	return res
}

func samePattern(a []model.Fret, b []model.Fret) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MatchFormula takes the lowest selected pitch class as root and keeps entries
// whose formula has at least min(3, len(formula)) of its notes selected. At
// most MaxFormulaMatches are returned, in library order.
func MatchFormula(sel selection.Selection, chords []model.ChordEntry) []model.ChordMatch {
	pcs := sel.PitchClasses()
	if len(pcs) == 0 {
		return nil
	}

	var selected [12]bool
	for _, pc := range pcs {
		selected[pc] = true
	}
	root := pcs[0]

	var res []model.ChordMatch
	for _, c := range chords {
		if len(c.Formula) == 0 {
			continue
		}

		var covered int
		for _, interval := range c.Formula {
			if selected[util.Mod(root+interval, 12)] {
				covered += 1
			}
		}

		if covered >= util.Min(constants.MinFormulaCoverage, len(c.Formula)) {
			res = append(res, model.ChordMatch{Chord: c, Root: root, Covered: covered})
			if len(res) == constants.MaxFormulaMatches {
				break
			}
		}
	}
	return res
}

// Describe is the display name of a match: the entry name, prefixed by the root
// note for formula matches.
func Describe(m model.ChordMatch) string {
	if m.Root < 0 {
		return m.Chord.Name
	}
	return fretboard.NoteName(m.Root) + " " + m.Chord.Name
}

// Shape renders an entry's pattern or formula for display.
func Shape(c model.ChordEntry) string {
	if len(c.Positions) > 0 {
		return PatternKey(c.Positions)
	}
	parts := make([]string, len(c.Formula))
	for i, v := range c.Formula {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "-")
}

func PatternKey(pattern []model.Fret) string {
	var res string
	for i, f := range pattern {
		res += f.String()
		if i < len(pattern)-1 {
			res += "-"
		}
	}
	return res
}

// ParsePattern accepts "x-3-2-0-1-0", "x,3,2,0,1,0", "x 3 2 0 1 0" or the compact
// single-digit form "x32010x".
func ParsePattern(s string) ([]model.Fret, error) {
	s = strings.TrimSpace(s)
	var parts []string
	if strings.ContainsAny(s, "-, ") {
		parts = strings.FieldsFunc(s, func(r rune) bool {
			return r == '-' || r == ',' || r == ' '
		})
	} else {
		for _, r := range s {
			parts = append(parts, string(r))
		}
	}

	if len(parts) != constants.NumStrings {
		return nil, errors.Errorf("pattern %q needs %v strings, got %v", s, constants.NumStrings, len(parts))
	}

	res := make([]model.Fret, 0, constants.NumStrings)
	for i, p := range parts {
		if p == "x" || p == "X" {
			res = append(res, model.Muted)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || !fretboard.InRange(i, n) {
			return nil, errors.Errorf("pattern %q has invalid fret %q on string %v", s, p, i)
		}
		res = append(res, model.Fret(n))
	}
	return res, nil
}

// ParseFormula parses dash or comma separated intervals, e.g. "0-4-7".
func ParseFormula(s string) ([]int, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == ',' || r == ' '
	})
	if len(parts) == 0 {
		return nil, errors.Errorf("empty formula")
	}
	res := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 11 {
			return nil, errors.Errorf("formula %q has invalid interval %q", s, p)
		}
		res = append(res, n)
	}
	return res, nil
}
