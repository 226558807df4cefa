package animate

import (
	"context"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megapayer/site/internal/scene"
)

func TestTrackAt(t *testing.T) {
	track := Track{
		{Time: 0, Value: 1.0},
		{Time: 2, Value: 1.5},
		{Time: 4, Value: 2.0},
	}

	tests := []struct {
		time float64
		want float64
	}{
		{-1, 1.0},
		{0, 1.0},
		{1, 1.25},
		{2, 1.5},
		{3, 1.75},
		{4, 2.0},
		{5, 2.0},
	}

	for _, tt := range tests {
		got := track.At(tt.time)
		// Easing bends the curve but midpoints stay on the line.
		assert.InDelta(t, tt.want, got, 1e-9, "t=%.1f", tt.time)
	}

	assert.Equal(t, 0.0, Track{}.At(3))
}

func TestEaseInOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 1.0, EaseInOutCubic(1))
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-9)
	assert.Less(t, EaseInOutCubic(0.25), 0.25)
}

func TestPulseFormula(t *testing.T) {
	p := scene.Primitive{Speed: 2, Phase: 0.3}
	for _, tm := range []float64{0, 0.5, 1.7, 10} {
		tr := Chain{Pulse(0.1)}.Apply(p, tm)
		assert.InDelta(t, 1+math.Sin(tm*2+0.3)*0.1, tr.Scale, 1e-12)
	}
}

func TestOrbitKeepsRadius(t *testing.T) {
	p := scene.Primitive{Position: scene.V(3, 0.5, 0), Speed: 0.7}
	for _, tm := range []float64{0, 1, 2.5, 100} {
		tr := Chain{Orbit()}.Apply(p, tm)
		assert.InDelta(t, 3, math.Hypot(tr.Position.X, tr.Position.Z), 1e-9)
		assert.Equal(t, 0.5, tr.Position.Y)
	}
}

func TestFadeInStaggers(t *testing.T) {
	fade := Chain{FadeIn(1, 0.5)}
	first := scene.Primitive{Index: 0}
	third := scene.Primitive{Index: 2}

	assert.Equal(t, 1.0, fade.Apply(first, 1).Opacity)
	assert.Equal(t, 0.0, fade.Apply(third, 1).Opacity)
	assert.Equal(t, 1.0, fade.Apply(third, 2).Opacity)
}

func TestAdvanceParticleWraps(t *testing.T) {
	anchors := []scene.Vec3{scene.V(0, 0, 0), scene.V(1, 0, 0), scene.V(0, 1, 0)}
	r := scene.NewRand(1)

	p := scene.Particle{Progress: 0.995, Speed: 0.01}
	wrapped := AdvanceParticle(&p, r, anchors)
	assert.True(t, wrapped)
	assert.Equal(t, 0.0, p.Progress)
	assert.NotEqual(t, p.Source, p.Dest)

	// Starting anywhere in [0,1), the value seen after a crossing is below the step.
	for _, p0 := range []float64{0, 0.1, 0.5, 0.93, 0.999} {
		for _, s := range []float64{0.003, 0.01, 0.05} {
			p := scene.Particle{Progress: p0, Speed: s}
			prev := p.Progress
			for i := 0; i < 1000; i++ {
				AdvanceParticle(&p, r, anchors)
				if p.Progress < prev {
					assert.GreaterOrEqual(t, p.Progress, 0.0)
					assert.Less(t, p.Progress, s)
				}
				assert.Less(t, p.Progress, 1.0)
				prev = p.Progress
			}
		}
	}
}

type recorder struct {
	calls int
	last  Transform
}

func (r *recorder) SetTransform(t Transform) {
	r.calls++
	r.last = t
}

func TestAnimatorUpdatesAttachedTargets(t *testing.T) {
	s, err := scene.Build("blockchain", 4, nil)
	require.NoError(t, err)

	a := New(s, scene.NewRand(4))
	rec := &recorder{}
	require.True(t, a.Attach("block-3", rec))
	assert.False(t, a.Attach("block-99", rec))

	a.Update(0.5)
	a.Update(1.0)
	assert.Equal(t, 2, rec.calls)

	base, _ := s.Lookup("block-3")
	want := ChainFor("blockchain").Apply(base, 1.0)
	assert.Equal(t, want, rec.last)

	got, ok := a.Transform("block-3")
	require.True(t, ok)
	assert.Equal(t, want, got)

	a.Detach("block-3")
	a.Update(1.5)
	assert.Equal(t, 2, rec.calls)
}

func TestAnimatorLeavesBaseUntouched(t *testing.T) {
	s, err := scene.Build("wallet", 8, nil)
	require.NoError(t, err)
	before := append([]scene.Primitive(nil), s.Primitives...)

	a := New(s, scene.NewRand(8))
	for i := 0; i < 120; i++ {
		a.Update(float64(i) / 60)
	}
	assert.Equal(t, before, s.Primitives)
}

func TestAnimatorWithoutTargets(t *testing.T) {
	for _, kind := range scene.Kinds() {
		s, err := scene.Build(kind, 2, nil)
		require.NoError(t, err)
		a := New(s, scene.NewRand(2))
		assert.NotPanics(t, func() {
			for i := 0; i < 10; i++ {
				a.Update(float64(i))
			}
		}, kind)
	}
}

func TestParticleTargets(t *testing.T) {
	s, err := scene.Build("dex", 3, nil)
	require.NoError(t, err)

	a := New(s, scene.NewRand(3))
	var got Transform
	require.True(t, a.Attach("tx-0", TargetFunc(func(tr Transform) { got = tr })))
	a.Update(0)
	assert.Equal(t, s.Particles[0].Position(), got.Position)
}

func TestReplayIsDeterministic(t *testing.T) {
	frame := func() Frame {
		s, err := scene.Build("p2p-exchange", 21, nil)
		require.NoError(t, err)
		return New(s, scene.NewRand(21)).Replay(3.5, 30)
	}
	a, b := frame(), frame()
	assert.Equal(t, a, b)
	assert.Len(t, a.Transforms, 6)
	assert.Len(t, a.Particles, 12)
	assert.Equal(t, 3.5, a.Elapsed)
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var ticks atomic.Int32
	var last float64
	err := Loop(ctx, 100, func(elapsed float64) {
		assert.GreaterOrEqual(t, elapsed, last)
		last = elapsed
		ticks.Add(1)
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, ticks.Load())
}
