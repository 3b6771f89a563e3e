// Package fretboard maps (string, fret) cells of a standard-tuned 6×12 board to
// pitch classes.
package fretboard

import (
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/util"
	"github.com/pkg/errors"
)

// PitchClass assumes stringIndex in [0,5] and fret in [0,11].
func PitchClass(stringIndex int, fret int) int {
	return util.Mod(constants.OpenPitchClasses[stringIndex]+fret, 12)
}

func NoteName(pitchClass int) string {
	return constants.NoteNames[util.Mod(pitchClass, 12)]
}

var flats = map[string]string{"DB": "C#", "EB": "D#", "GB": "F#", "AB": "G#", "BB": "A#"}

// ParseNoteName reads a note name such as "C", "f#" or "Bb".
func ParseNoteName(name string) (int, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if sharp, ok := flats[n]; ok {
		n = sharp
	}
	for pc, candidate := range constants.NoteNames {
		if candidate == n {
			return pc, nil
		}
	}
	return 0, errors.Errorf("unknown note %q", name)
}

func PitchName(stringIndex int, fret int) string {
	return NoteName(PitchClass(stringIndex, fret))
}

func InRange(stringIndex int, fret int) bool {
	return stringIndex >= 0 && stringIndex < constants.NumStrings &&
		fret >= 0 && fret < constants.NumFrets
}

// MidiKey is the sounding MIDI key of a cell in standard tuning.
func MidiKey(stringIndex int, fret int) uint8 {
	return constants.OpenMidiKeys[stringIndex] + uint8(fret)
}

// FretForKey is the inverse of MidiKey. ok is false when the key isn't on the
// board for that string.
func FretForKey(stringIndex int, key uint8) (fret int, ok bool) {
	fret = int(key) - int(constants.OpenMidiKeys[stringIndex])
	return fret, InRange(stringIndex, fret)
}

func Grid() [constants.NumStrings][constants.NumFrets]int {
	var grid [constants.NumStrings][constants.NumFrets]int
	for s := 0; s < constants.NumStrings; s++ {
		for f := 0; f < constants.NumFrets; f++ {
			grid[s][f] = PitchClass(s, f)
		}
	}
	return grid
}
