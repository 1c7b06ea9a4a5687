package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner(context.Background(), "Computing...")
	s.start()
	time.Sleep(100 * time.Millisecond)
	s.stop()
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, "Computing...")
	s.start()
	cancel()

	// Give the goroutine time to notice cancellation, then stop must
	// still return promptly.
	time.Sleep(100 * time.Millisecond)
	s.stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), "Computing...")
	s.start()
	s.stop()
	s.stop()
}
