package midi

import (
	"bytes"
	"io"
	"os"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	strumTicks      = 40
	velocity        = 90
	rootOctaveKey   = 48
)

// PositionForNote maps a note from a MIDI guitar in mono mode, where channels
// 0-5 carry the high E string down to the low E string. ok is false for
// other channels and for notes off the board.
func PositionForNote(channel uint8, key uint8) (pos model.Position, ok bool) {
	if channel >= constants.NumStrings {
		return pos, false
	}
	stringIndex := constants.NumStrings - 1 - int(channel)
	fret, ok := fretboard.FretForKey(stringIndex, key)
	if !ok {
		return pos, false
	}
	return model.Position{String: stringIndex, Fret: model.Fret(fret)}, true
}

// Voicing gives the MIDI keys of a chord, low to high. Patterns sound the
// fretted strings. Formulas are stacked on the given root in octave 3.
func Voicing(c model.ChordEntry, root int) []uint8 {
	var keys []uint8
	if len(c.Positions) > 0 {
		for s, f := range c.Positions {
			if f != model.Muted {
				keys = append(keys, fretboard.MidiKey(s, int(f)))
			}
		}
		return keys
	}
	if root < 0 {
		root = 0
	}
	for _, interval := range c.Formula {
		keys = append(keys, uint8(rootOctaveKey+root+interval))
	}
	return keys
}

// WriteChord writes keys as one strummed bar of 4/4.
func WriteChord(w io.Writer, keys []uint8) error {
	if len(keys) == 0 {
		return errors.New("chord has no notes to write")
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(90))

	var elapsed uint32
	for i, key := range keys {
		var delta uint32
		if i > 0 {
			delta = strumTicks
		}
		tr.Add(delta, gomidi.NoteOn(0, key, velocity))
		elapsed += delta
	}

	bar := uint32(ticksPerQuarter * 4)
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = bar - elapsed
		}
		tr.Add(delta, gomidi.NoteOff(0, key))
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return errors.Wrap(err, "could not add track")
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi")
	}
	return nil
}

func WriteChordFile(path string, keys []uint8) error {
	var buf bytes.Buffer
	if err := WriteChord(&buf, keys); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "could not write %v", path)
	}
	return nil
}

// VerifyChordFile checks that the file at path plays exactly keys.
func VerifyChordFile(path string, keys []uint8) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open %v", path)
	}
	defer f.Close()

	read, err := ReadChord(f)
	if err != nil {
		return errors.Wrapf(err, "could not read back %v", path)
	}
	if !bytes.Equal(read, keys) {
		return errors.Errorf("%v plays %v, expected %v", path, read, keys)
	}
	return nil
}

// ReadChord reads back the keys of every note-on in a file, in order.
func ReadChord(r io.Reader) (keys []uint8, e error) {
	// smf can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if p, ok := recover().(string); ok {
			e = errors.New(p)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}

	for _, track := range s.Tracks {
		for _, evt := range track {
			var ch, key, vel uint8
			if evt.Message.GetNoteOn(&ch, &key, &vel) {
				keys = append(keys, key)
			}
		}
	}
	return keys, nil
}
