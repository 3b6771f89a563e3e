package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var inspectRoot string

func init() {
	inspectCmd.Flags().StringVar(&inspectRoot, "root", "C", "root note for formula chords")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chord name>",
	Short: "Shows the notes of a chord",
	Long:  `Shows the notes of a library chord, string by string for patterns or interval by interval for formulas.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := loadLibrary(cmd.Context())
		c, err := findChord(lib, args[0])
		if err != nil {
			return err
		}
		root, err := fretboard.ParseNoteName(inspectRoot)
		if err != nil {
			return err
		}
		inspect(cmd.OutOrStdout(), c, root)
		return nil
	},
}

func findChord(lib *model.Library, name string) (model.ChordEntry, error) {
	for _, c := range lib.Chords {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return model.ChordEntry{}, errors.Errorf("no chord named %q in the library", name)
}

func inspect(w io.Writer, c model.ChordEntry, root int) {
	if len(c.Positions) > 0 {
		fmt.Fprintf(w, "%v (%v)\n", c.Name, chord.PatternKey(c.Positions))
		for s := constants.NumStrings - 1; s >= 0; s-- {
			f := c.Positions[s]
			if f == model.Muted {
				fmt.Fprintf(w, "%v  x\n", constants.StringLabels[s])
				continue
			}
			fmt.Fprintf(w, "%v  fret %-2v %v\n", constants.StringLabels[s], f, fretboard.PitchName(s, int(f)))
		}
		return
	}

	fmt.Fprintf(w, "%v %v (%v)\n", fretboard.NoteName(root), c.Name, chord.Shape(c))
	for _, interval := range c.Formula {
		fmt.Fprintf(w, "+%-2v %v\n", interval, fretboard.NoteName(root+interval))
	}
}
