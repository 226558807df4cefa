package scene

import (
	"fmt"
	"math"
)

func buildBlockchain(r Rand, p Params) *Scene {
	s := &Scene{Primitives: make([]Primitive, p.Count)}
	for i := range s.Primitives {
		s.Primitives[i] = Primitive{
			ID:       fmt.Sprintf("block-%d", i),
			Index:    i,
			Kind:     "block",
			Position: Circle(i, p.Count, p.Radius),
			Size:     V(1, 1, 1),
			Color:    Pick(r, Palette),
			Phase:    float64(i) / float64(p.Count) * 2 * math.Pi,
			Speed:    Between(r, p.SpeedMin, p.SpeedMax),
		}
	}
	for i := 1; i < len(s.Primitives); i++ {
		s.Connections = append(s.Connections, link(s.Primitives[i-1], s.Primitives[i]))
	}
	return s
}

func buildValidators(r Rand, p Params) *Scene {
	s := &Scene{Primitives: make([]Primitive, p.Count)}
	for i := range s.Primitives {
		s.Primitives[i] = Primitive{
			ID:       fmt.Sprintf("validator-%d", i),
			Index:    i,
			Kind:     "validator",
			Position: Jitter(r, Circle(i, p.Count, p.Radius), p.Jitter),
			Radius:   Between(r, 0.3, 0.6),
			Color:    Pick(r, Palette),
			Phase:    r.Float64() * 2 * math.Pi,
			Speed:    Between(r, p.SpeedMin, p.SpeedMax),
		}
	}
	n := len(s.Primitives)
	for i := 0; i < n && n > 1; i++ {
		s.Connections = append(s.Connections, link(s.Primitives[i], s.Primitives[(i+1)%n]))
		if i < n/2 && n > 3 {
			s.Connections = append(s.Connections, link(s.Primitives[i], s.Primitives[i+n/2]))
		}
	}
	return s
}

func buildExchange(r Rand, p Params) *Scene {
	s := &Scene{Primitives: make([]Primitive, p.Count)}
	anchors := make([]Vec3, p.Count)
	for i := range s.Primitives {
		pos := Circle(i, p.Count, p.Radius)
		anchors[i] = pos
		s.Primitives[i] = Primitive{
			ID:       fmt.Sprintf("peer-%d", i),
			Index:    i,
			Kind:     "peer",
			Position: pos,
			Radius:   0.5,
			Color:    Pick(r, Palette),
			Phase:    r.Float64() * 2 * math.Pi,
			Speed:    Between(r, 0.5, 1.5),
		}
	}
	s.Particles = particles(r, p, anchors)
	return s
}

func buildDEX(r Rand, p Params) *Scene {
	s := &Scene{Primitives: make([]Primitive, p.Count)}
	anchors := make([]Vec3, p.Count)
	for i := range s.Primitives {
		pos := Grid(i, p.Count, p.Columns, p.Spacing)
		anchors[i] = pos
		depth := Between(r, 0.5, 2)
		s.Primitives[i] = Primitive{
			ID:       fmt.Sprintf("pool-%d", i),
			Index:    i,
			Kind:     "pool",
			Position: pos,
			Size:     V(1, depth, 1),
			Color:    Pick(r, Palette),
			Phase:    r.Float64() * 2 * math.Pi,
			Speed:    Between(r, 0.5, 1.5),
		}
	}
	s.Particles = particles(r, p, anchors)
	return s
}

func buildWallet(r Rand, p Params) *Scene {
	s := &Scene{Primitives: make([]Primitive, p.Count)}
	for i := range s.Primitives {
		pos := FlatCircle(i, p.Count, p.Radius)
		pos.Y = (r.Float64()*2 - 1) * p.Jitter
		s.Primitives[i] = Primitive{
			ID:       fmt.Sprintf("coin-%d", i),
			Index:    i,
			Kind:     "coin",
			Position: pos,
			Size:     V(0.6, 0.1, 0.6),
			Radius:   0.3,
			Color:    Pick(r, Palette),
			Phase:    float64(i) / float64(p.Count) * 2 * math.Pi,
			Speed:    Between(r, p.SpeedMin, p.SpeedMax),
		}
	}
	return s
}

// buildStablecoin splits tokens across an inner and an outer ring and
// pegs each inner token to its outer partner.
func buildStablecoin(r Rand, p Params) *Scene {
	s := &Scene{Primitives: make([]Primitive, p.Count)}
	inner := p.Count / 2
	outer := p.Count - inner
	for i := range s.Primitives {
		var pos Vec3
		if i < inner {
			pos = Circle(i, inner, p.Radius)
		} else {
			pos = Circle(i-inner, outer, p.Radius*2)
		}
		s.Primitives[i] = Primitive{
			ID:       fmt.Sprintf("token-%d", i),
			Index:    i,
			Kind:     "token",
			Position: pos,
			Radius:   0.25,
			Color:    Pick(r, Palette),
			Phase:    r.Float64() * 2 * math.Pi,
			Speed:    Between(r, p.SpeedMin, p.SpeedMax),
		}
	}
	for i := 0; i < inner && inner+i < len(s.Primitives); i++ {
		s.Connections = append(s.Connections, link(s.Primitives[i], s.Primitives[inner+i]))
	}
	return s
}

func buildSocial(r Rand, p Params) *Scene {
	s := &Scene{Primitives: make([]Primitive, p.Count)}
	for i := range s.Primitives {
		s.Primitives[i] = Primitive{
			ID:       fmt.Sprintf("user-%d", i),
			Index:    i,
			Kind:     "user",
			Position: Jitter(r, Grid(i, p.Count, p.Columns, p.Spacing), p.Jitter),
			Radius:   Between(r, 0.15, 0.35),
			Color:    Pick(r, Palette),
			Phase:    r.Float64() * 2 * math.Pi,
			Speed:    Between(r, p.SpeedMin, p.SpeedMax),
		}
	}
	// Self links are possible with one user and are left in place.
	for i, u := range s.Primitives {
		j := r.Intn(len(s.Primitives))
		if j == i && len(s.Primitives) > 1 {
			j = (j + 1) % len(s.Primitives)
		}
		s.Connections = append(s.Connections, link(u, s.Primitives[j]))
	}
	return s
}

func buildIdentity(r Rand, p Params) *Scene {
	s := &Scene{Primitives: make([]Primitive, p.Count)}
	for i := range s.Primitives {
		radius := float64(i+1) * p.Radius
		s.Primitives[i] = Primitive{
			ID:     fmt.Sprintf("ring-%d", i),
			Index:  i,
			Kind:   "ring",
			Size:   V(radius*2, radius*2, 0.05),
			Radius: radius,
			Color:  Pick(r, Palette),
			Phase:  float64(i) * 0.5,
			Speed:  Between(r, p.SpeedMin, p.SpeedMax),
		}
	}
	return s
}
