package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Fret is a position along a string. 0 is the open string, Muted means the
// string is not played.
type Fret int8

const Muted Fret = -1

func (f Fret) String() string {
	if f == Muted {
		return "x"
	}
	return strconv.Itoa(int(f))
}

func (f Fret) MarshalJSON() ([]byte, error) {
	if f == Muted {
		return []byte(`"x"`), nil
	}
	return []byte(strconv.Itoa(int(f))), nil
}

func (f *Fret) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case `"x"`, `"X"`, `null`:
		*f = Muted
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Errorf("invalid fret %s", data)
		}
		n, err = strconv.Atoi(s)
		if err != nil {
			return errors.Errorf("invalid fret %q", s)
		}
	}
	if n == int(Muted) {
		*f = Muted
		return nil
	}
	if n < 0 || n > 127 {
		return errors.Errorf("invalid fret %d", n)
	}
	*f = Fret(n)
	return nil
}

type Position struct {
	String int  `json:"string"`
	Fret   Fret `json:"fret"`
}

type LibraryKind string

const (
	// exact per-string fret pattern
	KindPositions LibraryKind = "positions"
	// interval formula relative to a root
	KindFormula LibraryKind = "formula"
)

type ChordEntry struct {
	Name      string `json:"chordName"`
	Positions []Fret `json:"positions,omitempty"`
	Formula   []int  `json:"formula,omitempty"`
}

type Library struct {
	Kind   LibraryKind  `json:"kind"`
	Chords []ChordEntry `json:"chords"`
}

func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Chords)
}

type ChordMatch struct {
	Chord ChordEntry `json:"chord"`

	// candidate root pitch class, -1 when matched by exact pattern
	Root    int `json:"root"`
	Covered int `json:"covered"`
}
