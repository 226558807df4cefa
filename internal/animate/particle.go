package animate

import "github.com/megapayer/site/internal/scene"

// AdvanceParticle moves p one tick along its path. Reaching the end resets
// progress to 0 and picks a fresh source/destination pair from anchors.
// It reports whether the particle wrapped.
func AdvanceParticle(p *scene.Particle, r scene.Rand, anchors []scene.Vec3) bool {
	p.Progress += p.Speed
	if p.Progress < 1 {
		return false
	}
	p.Progress = 0
	p.Source, p.Dest = scene.RandomPair(r, anchors)
	return true
}
