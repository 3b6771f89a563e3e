package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

func testLoad(ctx context.Context) *model.Library {
	return &model.Library{
		Kind: model.KindPositions,
		Chords: []model.ChordEntry{
			{Name: "Em7", Positions: []model.Fret{0, 2, 0, 0, 0, 0}},
			{Name: "Em", Positions: []model.Fret{0, 2, 2, 0, 0, 0}},
		},
	}
}

func key(k string) tea.KeyMsg {
	switch k {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func send(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m
}

func loaded(t *testing.T) tea.Model {
	m := New(testLoad)
	msg := m.Init()()
	updated, _ := m.Update(msg)
	return updated
}

func TestInitLoadsLibrary(t *testing.T) {
	m := New(testLoad)
	assert.Contains(t, m.View(), "Loading chord library")

	updated := loaded(t)
	assert.Contains(t, updated.View(), "No chord matched yet.")
	assert.Equal(t, 2, updated.(Model).Board().Library().Len())
}

// strumEm selects every string of an open E minor. The cursor starts on the
// high E string at the open position.
func strumEm(m tea.Model) tea.Model {
	m = send(m, "space", "down", "space", "down", "space", "down")
	m = send(m, "right", "right", "space", "down", "space", "left", "left", "down", "space")
	return m
}

func TestTogglingCellsIdentifiesChord(t *testing.T) {
	assert := assert.New(t)

	m := strumEm(loaded(t))
	b := m.(Model).Board()
	assert.Equal([]model.Fret{0, 2, 2, 0, 0, 0}, b.Selection().Pattern())
	assert.Len(b.Matches(), 1)

	view := m.View()
	assert.Contains(view, "Em")
	assert.Contains(view, "0-2-2-0-0-0")
	assert.NotContains(view, "No chord matched yet.")
}

func TestToggleAgainDeselects(t *testing.T) {
	m := send(loaded(t), "space", "space")
	assert.True(t, m.(Model).Board().Selection().Empty())
}

func TestResetKey(t *testing.T) {
	m := send(strumEm(loaded(t)), "r")
	b := m.(Model).Board()
	assert.True(t, b.Selection().Empty())
	assert.Empty(t, b.Matches())
	assert.Contains(t, m.View(), "No chord matched yet.")
}

func TestCursorStaysOnBoard(t *testing.T) {
	m := send(loaded(t), "left", "up", "space")
	assert.Equal(t, model.Fret(0), m.(Model).Board().Selection().Pattern()[5])

	keys := []string{}
	for i := 0; i < 20; i++ {
		keys = append(keys, "right", "down")
	}
	m = send(m, append(keys, "space")...)
	assert.Equal(t, model.Fret(11), m.(Model).Board().Selection().Pattern()[0])
}

func TestSelectedCellShowsNoteName(t *testing.T) {
	// high E string, 2nd fret is F#
	m := loaded(t)
	assert.False(t, strings.Contains(m.View(), "F#"))
	m = send(m, "right", "right", "space", "left")
	assert.True(t, strings.Contains(m.View(), "F#"))
}

func TestQuit(t *testing.T) {
	_, cmd := loaded(t).Update(key("q"))
	assert.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHeaderLabelsStringColumnOpen(t *testing.T) {
	var header string
	for _, line := range strings.Split(loaded(t).View(), "\n") {
		if strings.Contains(line, "Open") {
			header = line
			break
		}
	}
	// "Open" sits over the string names and the fret 0 column has no label
	assert.True(t, strings.HasPrefix(header, "Open    "), header)
	assert.Contains(t, header, "1")
}
