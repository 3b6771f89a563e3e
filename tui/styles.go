package tui

import "github.com/charmbracelet/lipgloss"

const (
	accentColor   = "#60a5fa"
	selectedColor = "#2563eb"
	mutedColor    = "#94a3b8"
	cellColor     = "#334155"
)

const cellWidth = 4

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(accentColor)).
	Bold(true).
	MarginBottom(1)

var labelStyle = lipgloss.NewStyle().
	Width(cellWidth).
	Align(lipgloss.Center).
	Foreground(lipgloss.Color(mutedColor))

var cellStyle = lipgloss.NewStyle().
	Width(cellWidth).
	Align(lipgloss.Center).
	Background(lipgloss.Color(cellColor))

var selectedCellStyle = cellStyle.
	Background(lipgloss.Color(selectedColor)).
	Foreground(lipgloss.Color("#ffffff")).
	Bold(true)

var chordsStyle = lipgloss.NewStyle().
	Padding(0, 1).
	MarginTop(1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(accentColor))

var chordNameStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(accentColor)).
	Bold(true)

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(mutedColor)).
	MarginTop(1)
