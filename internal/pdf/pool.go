package pdf

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var (
	ErrPoolClosed     = errors.New("browser pool closed")
	ErrAcquireTimeout = errors.New("timed out waiting for a browser")
	ErrLowMemory      = errors.New("not enough free memory to launch a browser")
)

// PoolConfig bounds the pool.
type PoolConfig struct {
	Size           int
	AcquireTimeout time.Duration
	IdleTTL        time.Duration
	MinFreeMemMB   uint64
}

// MemFunc reports free memory in megabytes.
type MemFunc func(ctx context.Context) (uint64, error)

type idleBrowser struct {
	b        Browser
	lastUsed time.Time
}

// Pool hands out at most Size browsers at a time. Browsers are launched
// lazily, reused after a clean checkin and discarded after a failure.
type Pool struct {
	cfg     PoolConfig
	launch  Launcher
	memFree MemFunc
	log     *zap.Logger
	metrics *Metrics
	now     func() time.Time

	sem *semaphore.Weighted

	mu     sync.Mutex
	idle   []idleBrowser
	inUse  int
	closed bool

	cron *cron.Cron
}

// NewPool creates a pool. memFree may be nil to disable the memory guard.
func NewPool(cfg PoolConfig, launch Launcher, memFree MemFunc, log *zap.Logger, m *Metrics) *Pool {
	if cfg.Size < 1 {
		cfg.Size = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pool{
		cfg:     cfg,
		launch:  launch,
		memFree: memFree,
		log:     log.Named("pdf.pool"),
		metrics: m,
		now:     time.Now,
		sem:     semaphore.NewWeighted(int64(cfg.Size)),
	}
}

// StartReaper closes idle browsers on a schedule.
func (p *Pool) StartReaper() error {
	if p.cfg.IdleTTL <= 0 {
		return nil
	}
	every := p.cfg.IdleTTL / 2
	if every < time.Second {
		every = time.Second
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", every), func() { p.Reap() }); err != nil {
		return fmt.Errorf("schedule reaper: %w", err)
	}
	c.Start()

	p.mu.Lock()
	p.cron = c
	p.mu.Unlock()
	return nil
}

// Acquire checks out a browser. It waits at most AcquireTimeout for a free slot.
func (p *Pool) Acquire(ctx context.Context) (Browser, error) {
	if p.isClosed() {
		return nil, ErrPoolClosed
	}

	wait := ctx
	if p.cfg.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		wait, cancel = context.WithTimeout(ctx, p.cfg.AcquireTimeout)
		defer cancel()
	}
	if err := p.sem.Acquire(wait, 1); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrAcquireTimeout
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.sem.Release(1)
		return nil, ErrPoolClosed
	}
	if n := len(p.idle); n > 0 {
		b := p.idle[n-1].b
		p.idle = p.idle[:n-1]
		p.inUse++
		p.mu.Unlock()
		p.metrics.setInUse(p.InUse())
		return b, nil
	}
	p.mu.Unlock()

	b, err := p.start(ctx)
	if err != nil {
		p.sem.Release(1)
		return nil, err
	}

	p.mu.Lock()
	p.inUse++
	p.mu.Unlock()
	p.metrics.setInUse(p.InUse())
	return b, nil
}

func (p *Pool) start(ctx context.Context) (Browser, error) {
	if p.memFree != nil && p.cfg.MinFreeMemMB > 0 {
		free, err := p.memFree(ctx)
		if err != nil {
			p.log.Warn("memory check failed", zap.Error(err))
		} else if free < p.cfg.MinFreeMemMB {
			p.log.Warn("refusing browser launch",
				zap.Uint64("free_mb", free),
				zap.Uint64("min_free_mb", p.cfg.MinFreeMemMB))
			return nil, ErrLowMemory
		}
	}

	started := p.now()
	b, err := p.launch(ctx)
	if err != nil {
		return nil, err
	}
	p.metrics.launched()
	p.log.Debug("browser launched", zap.Duration("took", p.now().Sub(started)))
	return b, nil
}

// Release checks b back in. Unhealthy browsers are closed instead of reused.
func (p *Pool) Release(b Browser, healthy bool) {
	p.mu.Lock()
	p.inUse--
	keep := healthy && !p.closed
	if keep {
		p.idle = append(p.idle, idleBrowser{b: b, lastUsed: p.now()})
	}
	p.mu.Unlock()

	if !keep {
		p.closeBrowser(b)
	}
	p.sem.Release(1)
	p.metrics.setInUse(p.InUse())
}

// Do runs fn with a pooled browser. The browser is discarded if fn fails.
func (p *Pool) Do(ctx context.Context, fn func(Browser) error) error {
	b, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	err = fn(b)
	p.Release(b, err == nil)
	return err
}

// Reap closes browsers idle for longer than IdleTTL and reports how many.
func (p *Pool) Reap() int {
	if p.cfg.IdleTTL <= 0 {
		return 0
	}
	cutoff := p.now().Add(-p.cfg.IdleTTL)

	p.mu.Lock()
	var stale []Browser
	fresh := p.idle[:0]
	for _, ib := range p.idle {
		if ib.lastUsed.Before(cutoff) {
			stale = append(stale, ib.b)
		} else {
			fresh = append(fresh, ib)
		}
	}
	p.idle = fresh
	p.mu.Unlock()

	for _, b := range stale {
		p.closeBrowser(b)
	}
	if len(stale) > 0 {
		p.log.Info("reaped idle browsers", zap.Int("count", len(stale)))
	}
	return len(stale)
}

func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inUse
}

func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle)
}

func (p *Pool) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Close stops the reaper and closes idle browsers. Checked-out browsers are
// closed when they are released.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	idle := p.idle
	p.idle = nil
	c := p.cron
	p.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
	for _, ib := range idle {
		p.closeBrowser(ib.b)
	}
	return nil
}

func (p *Pool) closeBrowser(b Browser) {
	if err := b.Close(); err != nil {
		p.log.Warn("browser close failed", zap.Error(err))
	}
}
