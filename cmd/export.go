package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/midi"
	"github.com/spf13/cobra"
)

var (
	exportOut    string
	exportRoot   string
	exportVerify bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output .mid file (default <chord name>.mid)")
	exportCmd.Flags().StringVar(&exportRoot, "root", "C", "root note for formula chords")
	exportCmd.Flags().BoolVar(&exportVerify, "verify", true, "read the file back and check its notes")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <chord name>",
	Short: "Writes a chord as a MIDI file",
	Long:  `Writes one strummed bar of a library chord as a Standard MIDI File.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := loadLibrary(cmd.Context())
		c, err := findChord(lib, args[0])
		if err != nil {
			return err
		}
		root, err := fretboard.ParseNoteName(exportRoot)
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			path = fmt.Sprintf("%v.mid", c.Name)
		}
		keys := midi.Voicing(c, root)
		if err := midi.WriteChordFile(path, keys); err != nil {
			return err
		}
		if exportVerify {
			if err := midi.VerifyChordFile(path, keys); err != nil {
				return err
			}
		}
		log.Info("wrote chord", "chord", c.Name, "path", path, "notes", len(keys))
		return nil
	},
}
