package animate

import "github.com/megapayer/site/internal/scene"

// Transform is the time-dependent render state of one primitive.
type Transform struct {
	Position scene.Vec3 `json:"position"`
	Rotation scene.Vec3 `json:"rotation"` // Euler angles in radians
	Scale    float64    `json:"scale"`
	Opacity  float64    `json:"opacity"`
}

// Rest is the transform of a primitive that is not animated.
func Rest(p scene.Primitive) Transform {
	return Transform{Position: p.Position, Scale: 1, Opacity: 1}
}

// Target receives transforms for a rendered object.
type Target interface {
	SetTransform(Transform)
}

// TargetFunc adapts a function to Target.
type TargetFunc func(Transform)

func (f TargetFunc) SetTransform(t Transform) { f(t) }
