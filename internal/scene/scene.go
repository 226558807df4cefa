package scene

// Scene is the full descriptor set for one animation mount
type Scene struct {
	Kind        string       `yaml:"kind" json:"kind"`
	Seed        int64        `yaml:"seed" json:"seed"`
	Primitives  []Primitive  `yaml:"primitives" json:"primitives"`
	Connections []Connection `yaml:"connections,omitempty" json:"connections,omitempty"`
	Particles   []Particle   `yaml:"particles,omitempty" json:"particles,omitempty"`
}

// Primitive is a rendered shape. Its base values never change after
// generation; animation derives transforms from them.
type Primitive struct {
	ID       string  `yaml:"id" json:"id"`
	Index    int     `yaml:"index" json:"index"`
	Kind     string  `yaml:"kind" json:"kind"` // "block", "validator", "pool", "coin", ...
	Position Vec3    `yaml:"position" json:"position"`
	Size     Vec3    `yaml:"size" json:"size"`
	Radius   float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
	Color    string  `yaml:"color" json:"color"`
	Phase    float64 `yaml:"phase" json:"phase"` // Radians
	Speed    float64 `yaml:"speed" json:"speed"` // Multiplier on elapsed seconds
}

// Connection is a line between two primitives. Endpoints are copied at
// generation time, so a connection does not follow its primitives around.
type Connection struct {
	ID    string `yaml:"id" json:"id"`
	From  string `yaml:"from" json:"from"`
	To    string `yaml:"to" json:"to"`
	Start Vec3   `yaml:"start" json:"start"`
	End   Vec3   `yaml:"end" json:"end"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// Particle is a transaction in flight between two points.
type Particle struct {
	ID       string  `yaml:"id" json:"id"`
	Progress float64 `yaml:"progress" json:"progress"` // [0, 1]
	Source   Vec3    `yaml:"source" json:"source"`
	Dest     Vec3    `yaml:"dest" json:"dest"`
	Speed    float64 `yaml:"speed" json:"speed"` // Progress per tick
	Color    string  `yaml:"color,omitempty" json:"color,omitempty"`
}

// Position returns where the particle currently sits on its path.
func (p Particle) Position() Vec3 {
	return p.Source.Lerp(p.Dest, p.Progress)
}

// Lookup returns the primitive with the given id.
func (s *Scene) Lookup(id string) (Primitive, bool) {
	for _, p := range s.Primitives {
		if p.ID == id {
			return p, true
		}
	}
	return Primitive{}, false
}

// Anchors returns the positions particles travel between. Scenes without
// particles return nil.
func (s *Scene) Anchors() []Vec3 {
	if len(s.Particles) == 0 {
		return nil
	}
	out := make([]Vec3, 0, len(s.Primitives))
	for _, p := range s.Primitives {
		out = append(out, p.Position)
	}
	return out
}
