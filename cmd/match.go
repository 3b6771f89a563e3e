package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/selection"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match <pattern>",
	Short: "Identifies the chord for a fret pattern",
	Long: `Identifies the chord for a fret pattern, low E to high E, with x for
strings that aren't played. For example: fretdex match x32010`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := chord.ParsePattern(args[0])
		if err != nil {
			return err
		}
		lib := loadLibrary(cmd.Context())
		printMatches(cmd.OutOrStdout(), chord.Match(selection.FromPattern(pattern), lib))
		return nil
	},
}

func printMatches(w io.Writer, matches []model.ChordMatch) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No chord matched.")
		return
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%v → %v\n", chord.Describe(m), chord.Shape(m.Chord))
	}
}
