package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/charmbracelet/log"
	"github.com/jsphweid/fretdex/board"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	listenPort   string
	listenSettle time.Duration
)

func init() {
	listenCmd.Flags().StringVar(&listenPort, "port", constants.GetMidiPort(), "MIDI in port name (default first port)")
	listenCmd.Flags().DurationVar(&listenSettle, "settle", 150*time.Millisecond, "wait this long after the last note before printing chords")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Identifies chords played on a MIDI guitar",
	Long: `Listens to a MIDI guitar in mono mode (channel 1 = high E ... channel 6 = low E)
and prints the chords matching the fretted notes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(cmd.Context())
	},
}

func openInPort() (drivers.In, error) {
	if listenPort != "" {
		return gomidi.FindInPort(listenPort)
	}
	return gomidi.InPort(0)
}

func listen(ctx context.Context) error {
	defer gomidi.CloseDriver()

	in, err := openInPort()
	if err != nil {
		return errors.Wrap(err, "could not find a MIDI in port")
	}

	b := board.New(loadLibrary(ctx))
	var mu sync.Mutex

	report := func() {
		mu.Lock()
		defer mu.Unlock()
		fmt.Printf("%v\n", chord.PatternKey(b.Selection().Pattern()))
		printMatches(os.Stdout, b.Matches())
	}
	debounced := debounce.New(listenSettle)

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			pos, ok := midi.PositionForNote(ch, key)
			if !ok {
				log.Debug("ignoring note off the board", "channel", ch, "key", key)
				return
			}
			mu.Lock()
			if !b.Selection().IsSelected(pos.String, int(pos.Fret)) {
				b.Toggle(pos.String, int(pos.Fret))
			}
			mu.Unlock()
			debounced(report)
		case msg.GetNoteEnd(&ch, &key):
			pos, ok := midi.PositionForNote(ch, key)
			if !ok {
				return
			}
			mu.Lock()
			if b.Selection().IsSelected(pos.String, int(pos.Fret)) {
				b.Toggle(pos.String, int(pos.Fret))
			}
			mu.Unlock()
			debounced(report)
		}
	})
	if err != nil {
		return errors.Wrap(err, "could not listen to MIDI in port")
	}
	defer stop()

	log.Info("listening", "port", in.String())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	waitForStop(ctx, sig)
	return nil
}

func waitForStop(ctx context.Context, sig <-chan os.Signal) {
	select {
	case <-sig:
	case <-ctx.Done():
	}
}
