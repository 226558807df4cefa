package countdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   Parts
	}{
		{"days", now.Add(50*time.Hour + 3*time.Minute + 4*time.Second), Parts{Days: 2, Hours: 2, Minutes: 3, Seconds: 4}},
		{"sub-second drops", now.Add(1500 * time.Millisecond), Parts{Seconds: 1}},
		{"reached", now, Parts{Done: true}},
		{"past", now.Add(-time.Hour), Parts{Done: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remaining(now, tt.target))
		})
	}
}

func TestRemainingIsMonotonic(t *testing.T) {
	target := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	now := target.Add(-72 * time.Hour)

	prev := Remaining(now, target)
	for now.Before(target.Add(2 * time.Second)) {
		now = now.Add(997 * time.Millisecond)
		cur := Remaining(now, target)
		require.LessOrEqual(t, cur.Total(), prev.Total(), "at %s", now)
		prev = cur
	}
	assert.True(t, prev.Done)
}

// fakeClock steps forward by a fixed amount but jumps back once.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	calls int
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.calls == 3 {
		c.now = c.now.Add(-10 * time.Second)
	} else {
		c.now = c.now.Add(time.Second)
	}
	return c.now
}

func TestWatchNeverIncreases(t *testing.T) {
	start := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: start}
	target := start.Add(8 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var seen []Parts
	for p := range Watch(ctx, clock.Now, target, time.Millisecond) {
		seen = append(seen, p)
	}

	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		assert.LessOrEqual(t, seen[i].Total(), seen[i-1].Total())
	}
	assert.True(t, seen[len(seen)-1].Done)
}

func TestWatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := Watch(ctx, nil, time.Now().Add(time.Hour), time.Millisecond)
	<-ch
	cancel()

	for range ch {
	}
}
