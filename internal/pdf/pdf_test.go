package pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/megapayer/site/internal/whitepaper"
)

type fakeBrowser struct {
	fail   error
	closed atomic.Bool
	html   []byte
}

func (f *fakeBrowser) PrintPDF(ctx context.Context, html []byte, opts Options) ([]byte, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.html = html
	return []byte("%PDF-1.7 fake"), nil
}

func (f *fakeBrowser) Close() error {
	f.closed.Store(true)
	return nil
}

type fakeLauncher struct {
	mu       sync.Mutex
	launched []*fakeBrowser
	fail     error
	printErr error
}

func (l *fakeLauncher) launch(ctx context.Context) (Browser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fail != nil {
		return nil, l.fail
	}
	b := &fakeBrowser{fail: l.printErr}
	l.launched = append(l.launched, b)
	return b, nil
}

func (l *fakeLauncher) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.launched)
}

func newPool(t *testing.T, cfg PoolConfig, l *fakeLauncher, m *Metrics) *Pool {
	t.Helper()
	p := NewPool(cfg, l.launch, nil, zaptest.NewLogger(t), m)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestPoolReusesBrowsers(t *testing.T) {
	l := &fakeLauncher{}
	p := newPool(t, PoolConfig{Size: 2, AcquireTimeout: time.Second}, l, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Do(context.Background(), func(Browser) error { return nil }))
	}
	assert.Equal(t, 1, l.count())
	assert.Equal(t, 1, p.Idle())
	assert.Equal(t, 0, p.InUse())
}

func TestPoolDiscardsOnFailure(t *testing.T) {
	l := &fakeLauncher{}
	p := newPool(t, PoolConfig{Size: 1, AcquireTimeout: time.Second}, l, nil)

	boom := errors.New("navigation timeout")
	err := p.Do(context.Background(), func(Browser) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, p.Idle())
	assert.True(t, l.launched[0].closed.Load())

	require.NoError(t, p.Do(context.Background(), func(Browser) error { return nil }))
	assert.Equal(t, 2, l.count())
}

func TestPoolAcquireTimeout(t *testing.T) {
	l := &fakeLauncher{}
	p := newPool(t, PoolConfig{Size: 1, AcquireTimeout: 20 * time.Millisecond}, l, nil)

	b, err := p.Acquire(context.Background())
	require.NoError(t, err)

	_, err = p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrAcquireTimeout)

	p.Release(b, true)
	b, err = p.Acquire(context.Background())
	require.NoError(t, err)
	p.Release(b, true)
}

func TestPoolAcquireHonorsCallerCancel(t *testing.T) {
	l := &fakeLauncher{}
	p := newPool(t, PoolConfig{Size: 1, AcquireTimeout: time.Second}, l, nil)

	b, err := p.Acquire(context.Background())
	require.NoError(t, err)
	defer p.Release(b, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Acquire(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPoolBoundsConcurrency(t *testing.T) {
	l := &fakeLauncher{}
	p := newPool(t, PoolConfig{Size: 2, AcquireTimeout: 5 * time.Second}, l, nil)

	var peak, cur atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Do(context.Background(), func(Browser) error {
				n := cur.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				cur.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.LessOrEqual(t, l.count(), 2)
}

func TestPoolLaunchFailureFreesSlot(t *testing.T) {
	l := &fakeLauncher{fail: errors.New("no chromium")}
	p := newPool(t, PoolConfig{Size: 1, AcquireTimeout: 20 * time.Millisecond}, l, nil)

	_, err := p.Acquire(context.Background())
	assert.EqualError(t, err, "no chromium")
	_, err = p.Acquire(context.Background())
	assert.EqualError(t, err, "no chromium")
}

func TestPoolMemoryGuard(t *testing.T) {
	l := &fakeLauncher{}
	free := uint64(100)
	mem := func(context.Context) (uint64, error) { return free, nil }
	p := NewPool(PoolConfig{Size: 1, MinFreeMemMB: 256}, l.launch, mem, zaptest.NewLogger(t), nil)
	defer p.Close()

	_, err := p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrLowMemory)
	assert.Equal(t, 0, l.count())

	free = 1024
	b, err := p.Acquire(context.Background())
	require.NoError(t, err)
	p.Release(b, true)
}

func TestPoolReap(t *testing.T) {
	l := &fakeLauncher{}
	p := newPool(t, PoolConfig{Size: 2, IdleTTL: time.Minute}, l, nil)
	now := time.Now()
	p.now = func() time.Time { return now }

	require.NoError(t, p.Do(context.Background(), func(Browser) error { return nil }))
	assert.Equal(t, 0, p.Reap())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, p.Reap())
	assert.Equal(t, 0, p.Idle())
	assert.True(t, l.launched[0].closed.Load())
}

func TestPoolClose(t *testing.T) {
	l := &fakeLauncher{}
	p := NewPool(PoolConfig{Size: 2, IdleTTL: time.Minute}, l.launch, nil, zaptest.NewLogger(t), nil)
	require.NoError(t, p.StartReaper())

	held, err := p.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, p.Do(context.Background(), func(Browser) error { return nil }))

	require.NoError(t, p.Close())
	assert.True(t, l.launched[1].closed.Load())
	assert.False(t, l.launched[0].closed.Load())

	p.Release(held, true)
	assert.True(t, l.launched[0].closed.Load())

	_, err = p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrPoolClosed)
	assert.NoError(t, p.Close())
}

func newExporter(t *testing.T, l *fakeLauncher, m *Metrics) *Exporter {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blockchain-whitepaper-excerpt.md"), []byte("# Chain\n\nBlocks."), 0644))

	return &Exporter{
		Excerpts:      whitepaper.NewStore(dir),
		Pool:          newPool(t, PoolConfig{Size: 1, AcquireTimeout: time.Second}, l, m),
		BaseURL:       "https://megapayer.io",
		Options:       DefaultOptions(),
		RenderTimeout: time.Second,
		Metrics:       m,
		Log:           zaptest.NewLogger(t),
	}
}

func TestExport(t *testing.T) {
	l := &fakeLauncher{}
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	e := newExporter(t, l, m)

	out, err := e.Export(context.Background(), "blockchain", "Chain Paper")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 fake", string(out))
	assert.Contains(t, string(l.launched[0].html), "Chain Paper")
	assert.Contains(t, string(l.launched[0].html), "<p>Blocks.</p>")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.renders.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.launches))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inUse))
}

func TestExportNotFound(t *testing.T) {
	l := &fakeLauncher{}
	m := NewMetrics(nil)
	e := newExporter(t, l, m)

	_, err := e.Export(context.Background(), "nonexistent-id", "")
	assert.ErrorIs(t, err, whitepaper.ErrNotFound)
	assert.Equal(t, 0, l.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.renders.WithLabelValues("not_found")))
}

func TestExportRenderFailure(t *testing.T) {
	l := &fakeLauncher{printErr: errors.New("target crashed")}
	e := newExporter(t, l, nil)

	_, err := e.Export(context.Background(), "blockchain", "")
	assert.EqualError(t, err, "target crashed")
	assert.Equal(t, 0, e.Pool.Idle())
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "dex-whitepaper.pdf", Filename("dex"))
}
