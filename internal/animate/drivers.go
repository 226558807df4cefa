package animate

import (
	"math"

	"github.com/megapayer/site/internal/scene"
)

// Effect adjusts a transform as a closed-form function of elapsed seconds.
type Effect func(tr *Transform, p scene.Primitive, t float64)

// Chain applies effects in order on top of the rest transform.
type Chain []Effect

// Apply computes the transform of p at time t. It only reads p.
func (c Chain) Apply(p scene.Primitive, t float64) Transform {
	tr := Rest(p)
	for _, e := range c {
		e(&tr, p, t)
	}
	return tr
}

func wave(p scene.Primitive, t float64) float64 {
	return math.Sin(t*p.Speed + p.Phase)
}

// Pulse breathes the scale: 1 + sin(t*speed + phase) * amp.
func Pulse(amp float64) Effect {
	return func(tr *Transform, p scene.Primitive, t float64) {
		tr.Scale *= 1 + wave(p, t)*amp
	}
}

// Spin turns the primitive around its own Y axis.
func Spin() Effect {
	return func(tr *Transform, p scene.Primitive, t float64) {
		tr.Rotation.Y += t * p.Speed
	}
}

// Tumble turns around X and Y at different rates.
func Tumble() Effect {
	return func(tr *Transform, p scene.Primitive, t float64) {
		tr.Rotation.X += t*p.Speed + p.Phase
		tr.Rotation.Y += t * p.Speed * 0.5
	}
}

// Orbit carries the position around the scene's Y axis.
func Orbit() Effect {
	return func(tr *Transform, p scene.Primitive, t float64) {
		a := t * p.Speed
		sin, cos := math.Sincos(a)
		x, z := tr.Position.X, tr.Position.Z
		tr.Position.X = x*cos - z*sin
		tr.Position.Z = x*sin + z*cos
	}
}

// Bob floats the primitive up and down by amp.
func Bob(amp float64) Effect {
	return func(tr *Transform, p scene.Primitive, t float64) {
		tr.Position.Y += wave(p, t) * amp
	}
}

// Glow oscillates opacity between floor and 1.
func Glow(floor float64) Effect {
	return func(tr *Transform, p scene.Primitive, t float64) {
		tr.Opacity *= floor + (1-floor)*(0.5+0.5*wave(p, t))
	}
}

// FadeIn ramps opacity from 0 over d seconds, staggered by primitive index.
func FadeIn(d, stagger float64) Effect {
	return func(tr *Transform, p scene.Primitive, t float64) {
		start := float64(p.Index) * stagger
		tr.Opacity *= Track{{Time: start, Value: 0}, {Time: start + d, Value: 1}}.At(t)
	}
}

var chains = map[string]Chain{
	"blockchain":       {Spin(), Pulse(0.1)},
	"validators":       {Pulse(0.2), Glow(0.5)},
	"p2p-exchange":     {Bob(0.2)},
	"dex":              {Pulse(0.15), Spin()},
	"wallet":           {Orbit(), Spin()},
	"stablecoin":       {Orbit(), Glow(0.6)},
	"social-media":     {Bob(0.1), Pulse(0.1)},
	"digital-identity": {Tumble()},
}

// ChainFor returns the effect chain used for a scene kind. Unknown kinds
// stay at rest.
func ChainFor(kind string) Chain {
	return chains[kind]
}
