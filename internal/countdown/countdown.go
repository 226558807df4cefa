package countdown

import (
	"context"
	"time"
)

// Parts is the remaining time split the way the coming-soon page shows it.
type Parts struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Done    bool `json:"done"`
}

// Total converts the parts back to a duration.
func (p Parts) Total() time.Duration {
	return time.Duration(p.Days)*24*time.Hour +
		time.Duration(p.Hours)*time.Hour +
		time.Duration(p.Minutes)*time.Minute +
		time.Duration(p.Seconds)*time.Second
}

// Remaining splits the whole seconds left until target. Past targets
// yield zero parts with Done set.
func Remaining(now, target time.Time) Parts {
	d := target.Sub(now)
	if d <= 0 {
		return Parts{Done: true}
	}
	secs := int64(d / time.Second)
	return Parts{
		Days:    int(secs / 86400),
		Hours:   int(secs % 86400 / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
		Done:    secs == 0,
	}
}

// Clock returns the current time.
type Clock func() time.Time

// Watch emits the remaining parts every interval until the target is reached
// or ctx is cancelled. Emitted values never increase, even if the clock
// steps backwards. The channel is closed when the watch ends.
func Watch(ctx context.Context, now Clock, target time.Time, interval time.Duration) <-chan Parts {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = time.Second
	}

	out := make(chan Parts, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := Remaining(now(), target)
		for {
			select {
			case out <- last:
			case <-ctx.Done():
				return
			}
			if last.Done {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			next := Remaining(now(), target)
			if next.Total() > last.Total() {
				next = last
			}
			last = next
		}
	}()
	return out
}
