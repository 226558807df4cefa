package animate

import (
	"context"
	"time"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Loop calls tick once per frame with the seconds elapsed since start,
// until ctx is cancelled. The ticker is released on return.
func Loop(ctx context.Context, fps int, tick func(elapsed float64)) error {
	if fps <= 0 {
		fps = DefaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			tick(now.Sub(start).Seconds())
		}
	}
}
