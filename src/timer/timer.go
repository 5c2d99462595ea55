package timer

import (
	"context"
	"log/slog"
	"time"
)

// Ticker calls tick once per period until ctx is cancelled. period must be positive.
func Ticker(ctx context.Context, period time.Duration, tick func()) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	slog.Info("Ticker started", "period", period)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Ticker stopped")
			return
		case <-ticker.C:
			tick()
		}
	}
}
