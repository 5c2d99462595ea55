package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ticks atomic.Int32
	done := make(chan struct{})

	go func() {
		Ticker(ctx, time.Millisecond, func() { ticks.Add(1) })
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d ticks before deadline", ticks.Load())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Ticker did not return after cancel")
	}
	stopped := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	if ticks.Load() != stopped {
		t.Errorf("tick called after Ticker returned")
	}
}
