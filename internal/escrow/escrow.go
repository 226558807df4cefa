// Package escrow sequences the four-step peer-to-peer transfer illustration:
// buyer to escrow, escrow to seller, seller to buyer, reset.
package escrow

import (
	"context"
	"sync"
	"time"
)

type Step int

const (
	BuyerToEscrow Step = iota
	EscrowToSeller
	SellerToBuyer
	Reset
)

// StepCount is the number of steps in one pass.
const StepCount = 4

var stepNames = [...]string{"buyer-to-escrow", "escrow-to-seller", "seller-to-buyer", "reset"}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// Policy decides what happens after the reset step.
type Policy int

const (
	// Repeat wraps back to the first step and keeps cycling.
	Repeat Policy = iota
	// OneShot returns to idle after a single pass.
	OneShot
)

func ParsePolicy(s string) Policy {
	if s == "one-shot" || s == "oneshot" {
		return OneShot
	}
	return Repeat
}

// State is a point-in-time view of the sequencer.
type State struct {
	Step     Step    `json:"step"`
	Progress float64 `json:"progress"` // [0, 1) within the current step
	Active   bool    `json:"active"`
	Passes   int     `json:"passes"` // Completed full cycles
}

type Config struct {
	Policy    Policy
	Interval  time.Duration // Timer period
	Increment float64       // Progress added per tick
}

// DefaultConfig moves through a step in two seconds.
func DefaultConfig() Config {
	return Config{Policy: Repeat, Interval: 100 * time.Millisecond, Increment: 0.05}
}

// Sequencer is the escrow state machine. It starts idle at step 0.
type Sequencer struct {
	cfg Config

	mu       sync.Mutex
	state    State
	onChange func(State)

	// run serializes Start and Stop so only one timer goroutine exists.
	run    sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(cfg Config) *Sequencer {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Increment <= 0 {
		cfg.Increment = def.Increment
	}
	return &Sequencer{cfg: cfg}
}

// OnChange registers a callback invoked after every tick and on stop.
// It runs on the timer goroutine and must not call back into the sequencer.
func (s *Sequencer) OnChange(fn func(State)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Activate marks the sequence active at step 0 without starting a timer.
// Start calls it; tests and callers with their own clock use it with Tick.
func (s *Sequencer) Activate() {
	s.mu.Lock()
	s.state = State{Active: true}
	s.mu.Unlock()
}

// Tick advances progress by one increment. Progress reaching 1 moves to
// the next step; after Reset the policy decides between wrapping and idling.
// Ticks on an idle sequencer are ignored.
func (s *Sequencer) Tick() State {
	s.mu.Lock()
	if !s.state.Active {
		st := s.state
		s.mu.Unlock()
		return st
	}

	s.state.Progress += s.cfg.Increment
	if s.state.Progress >= 1 {
		s.state.Progress = 0
		if s.state.Step == Reset {
			s.state.Passes++
			s.state.Step = BuyerToEscrow
			if s.cfg.Policy == OneShot {
				s.state.Active = false
			}
		} else {
			s.state.Step++
		}
	}
	st, fn := s.state, s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(st)
	}
	return st
}

// Start activates the sequence and runs the timer until Stop, ctx
// cancellation, or the end of a one-shot pass. Starting a running
// sequencer restarts it from step 0. Cancelling ctx leaves the sequencer idle.
func (s *Sequencer) Start(parent context.Context) {
	s.run.Lock()
	defer s.run.Unlock()

	s.stop()
	s.Activate()

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	s.mu.Lock()
	s.cancel, s.done = cancel, done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				if parent.Err() != nil {
					s.idle()
				}
				return
			case <-ticker.C:
				if st := s.Tick(); !st.Active {
					return
				}
			}
		}
	}()
}

// Stop cancels the timer, waits for it to exit, and returns to idle.
// It is safe to call on a sequencer that never started.
func (s *Sequencer) Stop() {
	s.run.Lock()
	defer s.run.Unlock()
	s.stop()
}

func (s *Sequencer) stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.idle()
}

// idle clears Active and notifies the change callback.
func (s *Sequencer) idle() {
	s.mu.Lock()
	s.state.Active = false
	st, fn := s.state, s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}

// Done is closed when the running timer exits. It is nil when idle.
func (s *Sequencer) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Simulate reports the state a freshly started sequencer reaches after
// elapsed time, without running a timer.
func Simulate(cfg Config, elapsed time.Duration) State {
	s := New(cfg)
	s.Activate()
	st := s.State()
	for n := int(elapsed / s.cfg.Interval); n > 0 && st.Active; n-- {
		st = s.Tick()
	}
	return st
}
