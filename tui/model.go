// Package tui is the interactive terminal fretboard.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fretdex/board"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/util"
)

// LoadFunc loads the chord library. It should not fail; an unusable source
// yields an empty library.
type LoadFunc func(ctx context.Context) *model.Library

type libraryLoadedMsg struct {
	library *model.Library
}

type Model struct {
	board *board.Board
	load  LoadFunc

	// cursor, string 0 is drawn at the bottom
	stringIndex int
	fret        int

	loaded bool
}

func New(load LoadFunc) Model {
	return Model{
		board:       board.New(nil),
		load:        load,
		stringIndex: constants.NumStrings - 1,
	}
}

func (m Model) Board() *board.Board {
	return m.board
}

func (m Model) Init() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		return libraryLoadedMsg{library: load(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case libraryLoadedMsg:
		m.board.SetLibrary(msg.library)
		m.loaded = true
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.stringIndex = util.Clamp(m.stringIndex+1, 0, constants.NumStrings-1)
		case "down", "j":
			m.stringIndex = util.Clamp(m.stringIndex-1, 0, constants.NumStrings-1)
		case "left", "h":
			m.fret = util.Clamp(m.fret-1, 0, constants.NumFrets-1)
		case "right", "l":
			m.fret = util.Clamp(m.fret+1, 0, constants.NumFrets-1)
		case " ", "enter":
			m.board.Toggle(m.stringIndex, m.fret)
		case "r":
			m.board.Reset()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🎸 Guitar Chord Finder"))
	b.WriteString("\n")
	b.WriteString(m.fretboardView())
	b.WriteString("\n")
	b.WriteString(chordsStyle.Render(m.chordsView()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ fret • ↑/↓ string • space toggle • r reset • q quit"))
	return b.String()
}

func (m Model) fretboardView() string {
	sel := m.board.Selection()
	names := sel.NoteNames()

	header := []string{labelStyle.Render("Open")}
	for f := 0; f < constants.NumFrets; f++ {
		label := fmt.Sprint(f)
		if f == 0 {
			label = ""
		}
		header = append(header, labelStyle.Render(label))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	// high E on top, like tab
	for s := constants.NumStrings - 1; s >= 0; s-- {
		cells := []string{labelStyle.Render(constants.StringLabels[s])}
		for f := 0; f < constants.NumFrets; f++ {
			text := ""
			style := cellStyle
			if sel.IsSelected(s, f) {
				text = names[s]
				style = selectedCellStyle
			}
			if s == m.stringIndex && f == m.fret {
				text = "[" + text + "]"
				style = style.Underline(true)
			}
			cells = append(cells, style.Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) chordsView() string {
	var b strings.Builder
	b.WriteString("Identified Chords\n")

	if !m.loaded {
		b.WriteString("Loading chord library...")
		return b.String()
	}

	matches := m.board.Matches()
	if len(matches) == 0 {
		b.WriteString("No chord matched yet.")
		return b.String()
	}
	for i, match := range matches {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(chordNameStyle.Render(chord.Describe(match)))
		b.WriteString(" → ")
		b.WriteString(chord.Shape(match.Chord))
	}
	return b.String()
}
