package cmd

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/jsphweid/fretdex/tui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var tuiLogFile string

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs here while the fretboard is open")
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive fretboard",
	Long:  `Opens an interactive fretboard in the terminal. Toggle frets and watch matching chords.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTui()
	},
}

func runTui() error {
	// logging to the terminal would draw over the board
	var out io.Writer = io.Discard
	if tuiLogFile != "" {
		f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrapf(err, "could not open log file %v", tuiLogFile)
		}
		defer f.Close()
		out = f
	}
	log.SetOutput(out)
	defer log.SetOutput(os.Stderr)

	p := tea.NewProgram(tui.New(loadLibrary), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "fretboard exited")
	}
	return nil
}
