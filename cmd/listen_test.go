package cmd

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func waitsFor(t *testing.T, fn func()) bool {
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(time.Second):
		return false
	}
}

func TestListenStopsWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sig := make(chan os.Signal)
	assert.True(t, waitsFor(t, func() { waitForStop(ctx, sig) }))
}

func TestListenStopsOnInterrupt(t *testing.T) {
	sig := make(chan os.Signal, 1)
	sig <- os.Interrupt
	assert.True(t, waitsFor(t, func() { waitForStop(context.Background(), sig) }))
}
