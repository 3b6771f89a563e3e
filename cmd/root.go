package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/library"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	librarySource string
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Guitar fretboard chord finder",
	Long: `Select notes on a 6-string, 12-fret guitar board and see which chords
from a chord library match them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configureLogging(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&librarySource, "library", constants.GetLibrarySource(),
		`chord library: "builtin", "builtin:formula", a file path, an http(s) URL or dynamodb://<table>`)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func configureLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "bad log level %q", level)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	return nil
}

func loadLibrary(ctx context.Context) *model.Library {
	return library.LoadOrEmpty(ctx, librarySource)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
