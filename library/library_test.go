package library

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

func TestBuiltinLibrariesLoad(t *testing.T) {
	assert := assert.New(t)

	lib, err := Load(context.Background(), "")
	assert.NoError(err)
	assert.Equal(model.KindPositions, lib.Kind)
	assert.Equal("C", lib.Chords[0].Name)
	assert.Equal([]model.Fret{model.Muted, 3, 2, 0, 1, 0}, lib.Chords[0].Positions)

	lib, err = Load(context.Background(), SourceBuiltinFormula)
	assert.NoError(err)
	assert.Equal(model.KindFormula, lib.Kind)
	assert.Equal([]int{0, 4, 7}, lib.Chords[0].Formula)
}

func TestParseAcceptsBareArray(t *testing.T) {
	lib, err := Parse([]byte(`[{"chordName": "C", "positions": ["x", 3, 2, 0, 1, 0]}]`))
	assert.NoError(t, err)
	assert.Equal(t, model.KindPositions, lib.Kind)
	assert.Len(t, lib.Chords, 1)
}

func TestParseRejectsUnknownKind(t *testing.T) {
	_, err := Parse([]byte(`{"kind": "tabs", "chords": []}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"chords": []}`))
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.Error(t, err)

	_, err = Parse([]byte(``))
	assert.Error(t, err)
}

func TestParseDropsEntriesThatDontFitTheKind(t *testing.T) {
	lib, err := Parse([]byte(`{"kind": "positions", "chords": [
		{"chordName": "short", "positions": [0, 2, 2]},
		{"chordName": "too high", "positions": [0, 2, 2, 1, 0, 14]},
		{"chordName": "formula", "formula": [0, 4, 7]},
		{"chordName": "both", "positions": [0, 2, 2, 1, 0, 0], "formula": [0, 4, 7]},
		{"chordName": "E", "positions": [0, 2, 2, 1, 0, 0]}
	]}`))
	assert.NoError(t, err)
	assert.Len(t, lib.Chords, 1)
	assert.Equal(t, "E", lib.Chords[0].Name)

	lib, err = Parse([]byte(`{"kind": "formula", "chords": [
		{"chordName": "empty", "formula": []},
		{"chordName": "wide", "formula": [0, 4, 14]},
		{"chordName": "both", "formula": [0, 3, 7], "positions": ["x", 0, 2, 2, 1, 0]},
		{"chordName": "major", "formula": [0, 4, 7]}
	]}`))
	assert.NoError(t, err)
	assert.Len(t, lib.Chords, 1)
	assert.Equal(t, "major", lib.Chords[0].Name)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chords.json")
	err := os.WriteFile(path, []byte(`{"kind": "formula", "chords": [{"chordName": "minor", "formula": [0, 3, 7]}]}`), 0644)
	assert.NoError(t, err)

	lib, err := Load(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, "minor", lib.Chords[0].Name)
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/unified_chord_library.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"chordName": "Em", "positions": [0, 2, 2, 0, 0, 0]}]`))
	}))
	defer srv.Close()

	lib, err := Load(context.Background(), srv.URL+"/unified_chord_library.json")
	assert.NoError(t, err)
	assert.Equal(t, "Em", lib.Chords[0].Name)

	_, err = Load(context.Background(), srv.URL+"/missing.json")
	assert.Error(t, err)
}

func TestLoadOrEmptyDegrades(t *testing.T) {
	lib := LoadOrEmpty(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.NotNil(t, lib)
	assert.Equal(t, 0, lib.Len())
}
