package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the chord library",
	Long:  `Lists the chord library`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		lib := loadLibrary(cmd.Context())
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%v chords (%v)\n", len(lib.Chords), lib.Kind)
		for _, c := range lib.Chords {
			fmt.Fprintf(w, "%-12v %v\n", c.Name, chord.Shape(c))
		}
	},
}
