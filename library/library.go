package library

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
)

const (
	SourceBuiltin        = "builtin"
	SourceBuiltinFormula = "builtin:formula"
)

const fetchTimeout = 10 * time.Second

//go:embed data/positions.json
var builtinPositions []byte

//go:embed data/formula.json
var builtinFormula []byte

func Empty() *model.Library {
	return &model.Library{Kind: model.KindPositions}
}

// Parse reads a library document. A bare array of entries is read as a
// positions library.
func Parse(data []byte) (*model.Library, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty chord library")
	}

	var lib model.Library
	if data[0] == '[' {
		lib.Kind = model.KindPositions
		if err := json.Unmarshal(data, &lib.Chords); err != nil {
			return nil, errors.Wrap(err, "could not decode chord library")
		}
	} else {
		if err := json.Unmarshal(data, &lib); err != nil {
			return nil, errors.Wrap(err, "could not decode chord library")
		}
	}

	return Validate(&lib)
}

// Validate rejects unknown kinds and drops entries that don't fit the
// library's kind.
func Validate(lib *model.Library) (*model.Library, error) {
	if lib.Kind != model.KindPositions && lib.Kind != model.KindFormula {
		return nil, errors.Errorf("unknown chord library kind %q", lib.Kind)
	}

	res := &model.Library{Kind: lib.Kind, Chords: make([]model.ChordEntry, 0, len(lib.Chords))}
	for i, c := range lib.Chords {
		if reason := invalidReason(lib.Kind, c); reason != "" {
			log.Warn("dropping chord entry", "index", i, "name", c.Name, "reason", reason)
			continue
		}
		res.Chords = append(res.Chords, c)
	}
	return res, nil
}

func invalidReason(kind model.LibraryKind, c model.ChordEntry) string {
	switch kind {
	case model.KindPositions:
		if len(c.Formula) > 0 {
			return "formula given in a positions library"
		}
		if len(c.Positions) != constants.NumStrings {
			return "positions must have one entry per string"
		}
		for s, f := range c.Positions {
			if f != model.Muted && !fretboard.InRange(s, int(f)) {
				return "fret out of range"
			}
		}
	case model.KindFormula:
		if len(c.Positions) > 0 {
			return "positions given in a formula library"
		}
		if len(c.Formula) == 0 {
			return "empty formula"
		}
		for _, interval := range c.Formula {
			if interval < 0 || interval > 11 {
				return "interval out of range"
			}
		}
	}
	return ""
}

// Load reads a library from source: "" or "builtin", "builtin:formula", an
// http(s) URL, a dynamodb://<table> URI or a file path.
func Load(ctx context.Context, source string) (*model.Library, error) {
	switch {
	case source == "" || source == SourceBuiltin:
		return Parse(builtinPositions)
	case source == SourceBuiltinFormula:
		return Parse(builtinFormula)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		data, err := fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		return Parse(data)
	case strings.HasPrefix(source, db.Scheme):
		lib, err := db.GetLibrary(ctx, db.Config{
			Table:    strings.TrimPrefix(source, db.Scheme),
			Endpoint: constants.GetDynamoEndpoint(),
			Region:   constants.GetDynamoRegion(),
		})
		if err != nil {
			return nil, err
		}
		return Validate(lib)
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read chord library %v", source)
		}
		return Parse(data)
	}
}

// LoadOrEmpty never fails. A library that can't be loaded is logged and
// replaced by an empty one, so nothing matches but the views keep working.
func LoadOrEmpty(ctx context.Context, source string) *model.Library {
	lib, err := Load(ctx, source)
	if err != nil {
		log.Error("chord library unavailable, no chords will be identified", "source", source, "err", err)
		return Empty()
	}
	log.Info("loaded chord library", "source", source, "kind", lib.Kind, "chords", len(lib.Chords))
	return lib
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "bad chord library url %v", url)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "could not fetch chord library %v", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetching chord library %v returned %v", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read chord library %v", url)
	}
	return data, nil
}
